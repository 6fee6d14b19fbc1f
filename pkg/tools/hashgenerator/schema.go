package hashgenerator

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Hash domain.ToolActionType = "hash"
	ToolActionType_HMAC domain.ToolActionType = "hmac"
)

var algorithmProperty = domain.ToolProperty{
	Key:         "algorithm",
	Name:        "Algorithm",
	Description: "Digest algorithm",
	Type:        domain.ToolPropertyType_Select,
	Default:     "SHA-256",
	Options: []domain.ToolPropertyOption{
		{Label: "SHA-1", Value: "SHA-1"},
		{Label: "SHA-256", Value: "SHA-256"},
		{Label: "SHA-384", Value: "SHA-384"},
		{Label: "SHA-512", Value: "SHA-512"},
		{Label: "SHA3-256", Value: "SHA3-256"},
		{Label: "SHA3-512", Value: "SHA3-512"},
		{Label: "MD5", Value: "MD5"},
	},
}

var encodingProperty = domain.ToolProperty{
	Key:         "encoding",
	Name:        "Encoding",
	Description: "How the digest bytes are printed",
	Type:        domain.ToolPropertyType_Select,
	Default:     "hex",
	Options: []domain.ToolPropertyOption{
		{Label: "Hex", Value: "hex"},
		{Label: "Base64", Value: "base64"},
	},
}

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_HashGenerator,
		Name:        "Hash Generator",
		Description: "Compute SHA digests and HMACs of text",
		Category:    domain.Category_Crypto,
		Keywords:    []string{"hash", "digest", "sha1", "sha256", "sha512", "sha3", "hmac", "checksum"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Hash),
				Name:        "Hash",
				ActionType:  ToolActionType_Hash,
				Description: "Computes the digest of the UTF-8 encoded text",
				Properties: []domain.ToolProperty{
					{
						Key:         "text",
						Name:        "Text",
						Description: "Text to hash",
						Type:        domain.ToolPropertyType_Text,
						Default:     "",
					},
					algorithmProperty,
					encodingProperty,
				},
			},
			{
				ID:          string(ToolActionType_HMAC),
				Name:        "HMAC",
				ActionType:  ToolActionType_HMAC,
				Description: "Computes a keyed HMAC of the text",
				Properties: []domain.ToolProperty{
					{
						Key:         "text",
						Name:        "Text",
						Description: "Message to authenticate",
						Type:        domain.ToolPropertyType_Text,
						Default:     "",
					},
					{
						Key:         "key",
						Name:        "Key",
						Description: "Secret key",
						Required:    true,
						Type:        domain.ToolPropertyType_String,
					},
					algorithmProperty,
					encodingProperty,
				},
			},
		},
	}
)
