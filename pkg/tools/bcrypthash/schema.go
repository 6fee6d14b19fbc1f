package bcrypthash

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	ToolActionType_Hash   domain.ToolActionType = "hash"
	ToolActionType_Verify domain.ToolActionType = "verify"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_Bcrypt,
		Name:        "Bcrypt",
		Description: "Hash passwords with bcrypt and check passwords against bcrypt hashes",
		Category:    domain.Category_Crypto,
		Keywords:    []string{"bcrypt", "password", "hash", "verify", "salt", "blowfish"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Hash),
				Name:        "Hash",
				ActionType:  ToolActionType_Hash,
				Description: "Hashes a password with a random salt",
				IsRandom:    true,
				Properties: []domain.ToolProperty{
					{
						Key:         "password",
						Name:        "Password",
						Description: "Password to hash, at most 72 bytes",
						Required:    true,
						Type:        domain.ToolPropertyType_String,
					},
					{
						Key:         "cost",
						Name:        "Cost",
						Description: "Work factor; every step doubles the time to hash",
						Type:        domain.ToolPropertyType_Integer,
						Default:     bcrypt.DefaultCost,
						NumberOpts:  &domain.NumberPropertyOptions{Min: float64(bcrypt.MinCost), Max: float64(bcrypt.MaxCost)},
					},
				},
			},
			{
				ID:          string(ToolActionType_Verify),
				Name:        "Verify",
				ActionType:  ToolActionType_Verify,
				Description: "Checks whether a password matches a bcrypt hash",
				Properties: []domain.ToolProperty{
					{
						Key:         "password",
						Name:        "Password",
						Description: "Password to check",
						Required:    true,
						Type:        domain.ToolPropertyType_String,
					},
					{
						Key:         "hash",
						Name:        "Hash",
						Description: "bcrypt hash such as $2a$10$...",
						Required:    true,
						Type:        domain.ToolPropertyType_String,
					},
				},
			},
		},
	}
)
