package htmlentities

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Encode domain.ToolActionType = "encode"
	ToolActionType_Decode domain.ToolActionType = "decode"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_HTMLEntities,
		Name:        "HTML Entity Encoder/Decoder",
		Description: "Escape text for HTML or turn HTML entities back into characters",
		Category:    domain.Category_Encoding,
		Keywords:    []string{"html", "entities", "escape", "unescape", "encode", "decode", "xss"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Encode),
				Name:        "Encode",
				ActionType:  ToolActionType_Encode,
				Description: "Escapes < > & ' and \" as HTML entities",
				Properties: []domain.ToolProperty{
					{
						Key:         "text",
						Name:        "Text",
						Description: "The text to escape",
						Required:    true,
						Type:        domain.ToolPropertyType_Text,
					},
					{
						Key:         "encode_non_ascii",
						Name:        "Encode Non-ASCII",
						Description: "Also write every non-ASCII character as a numeric entity",
						Type:        domain.ToolPropertyType_Boolean,
						Default:     false,
					},
				},
			},
			{
				ID:          string(ToolActionType_Decode),
				Name:        "Decode",
				ActionType:  ToolActionType_Decode,
				Description: "Replaces named and numeric entities with the characters they stand for",
				Properties: []domain.ToolProperty{
					{
						Key:         "text",
						Name:        "HTML",
						Description: "Text containing HTML entities",
						Required:    true,
						Type:        domain.ToolPropertyType_Text,
						Placeholder: "&lt;p&gt;caf&eacute;&lt;/p&gt;",
					},
				},
			},
		},
	}
)
