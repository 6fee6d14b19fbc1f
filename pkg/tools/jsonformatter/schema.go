package jsonformatter

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Beautify domain.ToolActionType = "beautify"
	ToolActionType_Minify   domain.ToolActionType = "minify"
	ToolActionType_Validate domain.ToolActionType = "validate"
)

var jsonProperty = domain.ToolProperty{
	Key:         "json",
	Name:        "JSON",
	Description: "The JSON document to process",
	Required:    true,
	Type:        domain.ToolPropertyType_Text,
	Placeholder: `{"name": "devtoolbox"}`,
}

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_JSONFormatter,
		Name:        "JSON Formatter",
		Description: "Format, minify and validate JSON documents",
		Category:    domain.Category_JSON,
		Keywords:    []string{"json", "format", "beautify", "prettify", "minify", "validate", "indent"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Beautify),
				Name:        "Beautify",
				ActionType:  ToolActionType_Beautify,
				Description: "Indents the document with one element per line",
				Properties: []domain.ToolProperty{
					jsonProperty,
					{
						Key:         "indent",
						Name:        "Indentation",
						Description: "Indentation used for nested values",
						Type:        domain.ToolPropertyType_Select,
						Default:     "2",
						Options: []domain.ToolPropertyOption{
							{Label: "2 spaces", Value: "2"},
							{Label: "4 spaces", Value: "4"},
							{Label: "Tab", Value: "tab"},
						},
					},
					{
						Key:         "sort_keys",
						Name:        "Sort Keys",
						Description: "Sort object keys alphabetically",
						Type:        domain.ToolPropertyType_Boolean,
						Default:     false,
					},
				},
			},
			{
				ID:          string(ToolActionType_Minify),
				Name:        "Minify",
				ActionType:  ToolActionType_Minify,
				Description: "Removes all insignificant whitespace",
				Properties:  []domain.ToolProperty{jsonProperty},
			},
			{
				ID:          string(ToolActionType_Validate),
				Name:        "Validate",
				ActionType:  ToolActionType_Validate,
				Description: "Checks that the document is well-formed JSON",
				Properties:  []domain.ToolProperty{jsonProperty},
			},
		},
	}
)
