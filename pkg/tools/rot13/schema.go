package rot13

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Apply  domain.ToolActionType = "apply"
	ToolActionType_Caesar domain.ToolActionType = "caesar"
)

var textProperty = domain.ToolProperty{
	Key:         "text",
	Name:        "Text",
	Description: "The text to transform; only ASCII letters are rotated",
	Required:    true,
	Type:        domain.ToolPropertyType_Text,
}

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_ROT13,
		Name:        "ROT13 / Caesar Cipher",
		Description: "Rotate letters by 13 places, or by any shift with the Caesar cipher",
		Category:    domain.Category_Encoding,
		Keywords:    []string{"rot13", "caesar", "cipher", "rotate", "obfuscate"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Apply),
				Name:        "ROT13",
				ActionType:  ToolActionType_Apply,
				Description: "Rotates every letter by 13; applying it twice restores the text",
				Properties:  []domain.ToolProperty{textProperty},
			},
			{
				ID:          string(ToolActionType_Caesar),
				Name:        "Caesar Cipher",
				ActionType:  ToolActionType_Caesar,
				Description: "Rotates every letter by the given shift; a negative shift decodes",
				Properties: []domain.ToolProperty{
					textProperty,
					{
						Key:         "shift",
						Name:        "Shift",
						Description: "Number of places to rotate",
						Type:        domain.ToolPropertyType_Integer,
						Default:     3,
						NumberOpts:  &domain.NumberPropertyOptions{Min: -25, Max: 25},
					},
				},
			},
		},
	}
)
