package schemavalidator

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Validate domain.ToolActionType = "validate"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_JSONSchemaValidator,
		Name:        "JSON Schema Validator",
		Description: "Validate a JSON document against a JSON Schema",
		Category:    domain.Category_JSON,
		Keywords:    []string{"json", "schema", "validate", "validator", "draft", "2020-12"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Validate),
				Name:        "Validate",
				ActionType:  ToolActionType_Validate,
				Description: "Lists every location where the document breaks the schema",
				Properties: []domain.ToolProperty{
					{
						Key:         "json",
						Name:        "JSON",
						Description: "The JSON document to validate",
						Required:    true,
						Type:        domain.ToolPropertyType_Text,
					},
					{
						Key:         "schema",
						Name:        "Schema",
						Description: "The JSON Schema; $schema selects the draft when present",
						Required:    true,
						Type:        domain.ToolPropertyType_Text,
						Placeholder: `{"type": "object", "required": ["name"]}`,
					},
					{
						Key:         "draft",
						Name:        "Default Draft",
						Description: "Draft used when the schema has no $schema keyword",
						Type:        domain.ToolPropertyType_Select,
						Default:     "2020-12",
						Options: []domain.ToolPropertyOption{
							{Label: "2020-12", Value: "2020-12"},
							{Label: "2019-09", Value: "2019-09"},
							{Label: "Draft 7", Value: "7"},
							{Label: "Draft 6", Value: "6"},
							{Label: "Draft 4", Value: "4"},
						},
					},
					{
						Key:         "assert_format",
						Name:        "Assert Formats",
						Description: "Treat the format keyword as an assertion instead of an annotation",
						Type:        domain.ToolPropertyType_Boolean,
						Default:     false,
					},
				},
			},
		},
	}
)
