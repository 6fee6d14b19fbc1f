package keygenerator

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Generate domain.ToolActionType = "generate"
)

const (
	AlphabetUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	AlphabetLowercase = "abcdefghijklmnopqrstuvwxyz"
	AlphabetDigits    = "0123456789"
	AlphabetSymbols   = "!@#$%^&*()-_=+[]{};:,.<>?"

	AlphabetAlphanumeric = AlphabetUppercase + AlphabetLowercase + AlphabetDigits
)

var countProperty = domain.ToolProperty{
	Key:         "count",
	Name:        "Count",
	Description: "How many values to generate",
	Type:        domain.ToolPropertyType_Integer,
	Default:     1,
	NumberOpts:  &domain.NumberPropertyOptions{Min: 1, Max: 100},
}

func classProperty(key, name, description string) domain.ToolProperty {
	return domain.ToolProperty{
		Key:         key,
		Name:        name,
		Description: description,
		Type:        domain.ToolPropertyType_Boolean,
		Default:     true,
	}
}

var (
	APIKeySchema = domain.Tool{
		ID:          domain.ToolType_APIKeyGenerator,
		Name:        "API Key Generator",
		Description: "Generate random alphanumeric API keys with an optional prefix",
		Category:    domain.Category_Generators,
		Keywords:    []string{"api", "key", "token", "secret", "random", "alphanumeric"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Generate),
				Name:        "Generate",
				ActionType:  ToolActionType_Generate,
				Description: "Generates API keys",
				IsRandom:    true,
				Properties: []domain.ToolProperty{
					{
						Key:         "length",
						Name:        "Length",
						Description: "Number of random characters after the prefix",
						Type:        domain.ToolPropertyType_Integer,
						Default:     32,
						NumberOpts:  &domain.NumberPropertyOptions{Min: 8, Max: 256},
					},
					{
						Key:         "prefix",
						Name:        "Prefix",
						Description: "Text placed in front of every key, such as sk_live_",
						Type:        domain.ToolPropertyType_String,
						Placeholder: "sk_live_",
					},
					countProperty,
				},
			},
		},
	}

	PasswordSchema = domain.Tool{
		ID:          domain.ToolType_PasswordGenerator,
		Name:        "Password Generator",
		Description: "Generate strong random passwords from selected character classes",
		Category:    domain.Category_Generators,
		Keywords:    []string{"password", "passphrase", "random", "secure", "strong"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Generate),
				Name:        "Generate",
				ActionType:  ToolActionType_Generate,
				Description: "Generates passwords containing at least one character of every selected class",
				IsRandom:    true,
				Properties: []domain.ToolProperty{
					{
						Key:         "length",
						Name:        "Length",
						Description: "Password length",
						Type:        domain.ToolPropertyType_Integer,
						Default:     16,
						NumberOpts:  &domain.NumberPropertyOptions{Min: 4, Max: 256},
					},
					classProperty("uppercase", "Uppercase", "Include A-Z"),
					classProperty("lowercase", "Lowercase", "Include a-z"),
					classProperty("digits", "Digits", "Include 0-9"),
					classProperty("symbols", "Symbols", "Include punctuation such as !@#$"),
					countProperty,
				},
			},
		},
	}
)
