package rsakeygen

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Generate domain.ToolActionType = "generate"
	ToolActionType_Inspect  domain.ToolActionType = "inspect"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_RSAKeyGenerator,
		Name:        "RSA Key Generator",
		Description: "Generate RSA key pairs as PEM, optionally encrypting the private key",
		Category:    domain.Category_Crypto,
		Keywords:    []string{"rsa", "key", "pair", "pem", "pkcs8", "public", "private", "keygen"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Generate),
				Name:        "Generate",
				ActionType:  ToolActionType_Generate,
				Description: "Generates a key pair: SPKI public key and PKCS#8 private key",
				IsRandom:    true,
				Properties: []domain.ToolProperty{
					{
						Key:         "bits",
						Name:        "Key Size",
						Description: "Modulus length in bits",
						Type:        domain.ToolPropertyType_Select,
						Default:     2048,
						Options: []domain.ToolPropertyOption{
							{Label: "1024 bits", Value: 1024},
							{Label: "2048 bits", Value: 2048},
							{Label: "4096 bits", Value: 4096},
						},
					},
					{
						Key:         "passphrase",
						Name:        "Passphrase",
						Description: "Encrypts the private key with PBKDF2 and AES-256 when set",
						Type:        domain.ToolPropertyType_String,
					},
				},
			},
			{
				ID:          string(ToolActionType_Inspect),
				Name:        "Inspect",
				ActionType:  ToolActionType_Inspect,
				Description: "Reads a PEM private key and derives its public key",
				Properties: []domain.ToolProperty{
					{
						Key:         "private_key",
						Name:        "Private Key",
						Description: "PEM encoded RSA private key",
						Required:    true,
						Type:        domain.ToolPropertyType_Text,
					},
					{
						Key:         "passphrase",
						Name:        "Passphrase",
						Description: "Passphrase of an encrypted private key",
						Type:        domain.ToolPropertyType_String,
					},
				},
			},
		},
	}
)
