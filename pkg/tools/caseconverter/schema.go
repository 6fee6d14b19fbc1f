package caseconverter

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Convert domain.ToolActionType = "convert"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_CaseConverter,
		Name:        "Case Converter",
		Description: "Convert text between camelCase, PascalCase, snake_case, kebab-case and more",
		Category:    domain.Category_Text,
		Keywords:    []string{"case", "camel", "pascal", "snake", "kebab", "constant", "title", "upper", "lower"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Convert),
				Name:        "Convert",
				ActionType:  ToolActionType_Convert,
				Description: "Splits the text into words and joins them in every supported case",
				Properties: []domain.ToolProperty{
					{
						Key:         "text",
						Name:        "Text",
						Description: "Words separated by spaces, punctuation or case changes",
						Required:    true,
						Type:        domain.ToolPropertyType_Text,
						Placeholder: "hello world",
					},
					{
						Key:         "to",
						Name:        "Target Case",
						Description: "Show a single case instead of all of them",
						Type:        domain.ToolPropertyType_Select,
						Default:     "all",
						Options: []domain.ToolPropertyOption{
							{Label: "All", Value: "all"},
							{Label: "camelCase", Value: "camel"},
							{Label: "PascalCase", Value: "pascal"},
							{Label: "snake_case", Value: "snake"},
							{Label: "kebab-case", Value: "kebab"},
							{Label: "CONSTANT_CASE", Value: "constant"},
							{Label: "Title Case", Value: "title"},
							{Label: "lower case", Value: "lower"},
							{Label: "UPPER CASE", Value: "upper"},
						},
					},
				},
			},
		},
	}
)
