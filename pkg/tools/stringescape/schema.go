package stringescape

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Escape   domain.ToolActionType = "escape"
	ToolActionType_Unescape domain.ToolActionType = "unescape"
)

var formatProperty = domain.ToolProperty{
	Key:         "format",
	Name:        "Format",
	Description: "String literal syntax",
	Type:        domain.ToolPropertyType_Select,
	Default:     "json",
	Options: []domain.ToolPropertyOption{
		{Label: "JSON / JavaScript", Value: "json"},
		{Label: "Go", Value: "go"},
		{Label: "SQL", Value: "sql"},
	},
}

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_StringEscape,
		Name:        "String Escape/Unescape",
		Description: "Escape text for use inside JSON, Go or SQL string literals, or unescape it again",
		Category:    domain.Category_Text,
		Keywords:    []string{"escape", "unescape", "string", "literal", "quote", "json", "backslash"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Escape),
				Name:        "Escape",
				ActionType:  ToolActionType_Escape,
				Description: "Escapes quotes, backslashes and control characters",
				Properties: []domain.ToolProperty{
					{
						Key:         "text",
						Name:        "Text",
						Description: "The raw text",
						Type:        domain.ToolPropertyType_Text,
						Default:     "",
					},
					formatProperty,
					{
						Key:         "quotes",
						Name:        "Include Quotes",
						Description: "Wrap the result in the format's quote characters",
						Type:        domain.ToolPropertyType_Boolean,
						Default:     false,
					},
				},
			},
			{
				ID:          string(ToolActionType_Unescape),
				Name:        "Unescape",
				ActionType:  ToolActionType_Unescape,
				Description: "Turns escape sequences back into the characters they stand for",
				Properties: []domain.ToolProperty{
					{
						Key:         "text",
						Name:        "Escaped Text",
						Description: "The string literal, with or without surrounding quotes",
						Type:        domain.ToolPropertyType_Text,
						Default:     "",
					},
					formatProperty,
				},
			},
		},
	}
)
