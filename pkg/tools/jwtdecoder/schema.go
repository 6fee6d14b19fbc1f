package jwtdecoder

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Decode domain.ToolActionType = "decode"
	ToolActionType_Sign   domain.ToolActionType = "sign"
	ToolActionType_Verify domain.ToolActionType = "verify"
)

var tokenProperty = domain.ToolProperty{
	Key:         "token",
	Name:        "Token",
	Description: "The encoded JWT (header.payload.signature)",
	Required:    true,
	Type:        domain.ToolPropertyType_Text,
}

var secretProperty = domain.ToolProperty{
	Key:         "secret",
	Name:        "Secret",
	Description: "The HMAC secret, or a PEM encoded key for RSA and ECDSA algorithms",
	Required:    true,
	Type:        domain.ToolPropertyType_Text,
}

var algorithmOptions = []domain.ToolPropertyOption{
	{Label: "HS256 (HMAC with SHA-256)", Value: "HS256"},
	{Label: "HS384 (HMAC with SHA-384)", Value: "HS384"},
	{Label: "HS512 (HMAC with SHA-512)", Value: "HS512"},
	{Label: "RS256 (RSA with SHA-256)", Value: "RS256"},
	{Label: "RS384 (RSA with SHA-384)", Value: "RS384"},
	{Label: "RS512 (RSA with SHA-512)", Value: "RS512"},
	{Label: "ES256 (ECDSA with SHA-256)", Value: "ES256"},
	{Label: "ES384 (ECDSA with SHA-384)", Value: "ES384"},
	{Label: "ES512 (ECDSA with SHA-512)", Value: "ES512"},
}

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_JWTDecoder,
		Name:        "JWT Decoder",
		Description: "Decode JSON Web Tokens, and sign or verify them with a local secret",
		Category:    domain.Category_Encoding,
		Keywords:    []string{"jwt", "json web token", "decode", "token", "claims", "sign", "verify", "hs256"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Decode),
				Name:        "Decode",
				ActionType:  ToolActionType_Decode,
				Description: "Shows the header and payload of a token without checking its signature",
				Properties:  []domain.ToolProperty{tokenProperty},
			},
			{
				ID:          string(ToolActionType_Sign),
				Name:        "Sign",
				ActionType:  ToolActionType_Sign,
				Description: "Creates a signed token from a JSON payload",
				Properties: []domain.ToolProperty{
					{
						Key:         "payload",
						Name:        "Payload",
						Description: "The claims as a JSON object",
						Required:    true,
						Type:        domain.ToolPropertyType_Text,
						Placeholder: `{"sub": "1234567890", "name": "John Doe"}`,
					},
					secretProperty,
					{
						Key:         "algorithm",
						Name:        "Algorithm",
						Description: "The signing algorithm",
						Type:        domain.ToolPropertyType_Select,
						Default:     "HS256",
						Options:     algorithmOptions,
					},
					{
						Key:         "expire_seconds",
						Name:        "Expire Seconds",
						Description: "Seconds until the token expires; 0 leaves exp unset",
						Type:        domain.ToolPropertyType_Integer,
						Default:     0,
						NumberOpts:  &domain.NumberPropertyOptions{Min: 0, Max: 315360000},
					},
					{
						Key:         "issued_at",
						Name:        "Add Issued At",
						Description: "Set the iat claim to the current time",
						Type:        domain.ToolPropertyType_Boolean,
						Default:     true,
					},
				},
			},
			{
				ID:          string(ToolActionType_Verify),
				Name:        "Verify",
				ActionType:  ToolActionType_Verify,
				Description: "Checks the signature and the time based claims of a token",
				Properties: []domain.ToolProperty{
					tokenProperty,
					{
						Key:         "secret",
						Name:        "Secret",
						Description: "The HMAC secret, or a PEM encoded public key for RSA and ECDSA algorithms",
						Required:    true,
						Type:        domain.ToolPropertyType_Text,
					},
				},
			},
		},
	}
)
