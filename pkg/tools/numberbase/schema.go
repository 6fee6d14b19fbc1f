package numberbase

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Convert domain.ToolActionType = "convert"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_NumberBase,
		Name:        "Number Base Converter",
		Description: "Convert integers of any size between binary, octal, decimal, hexadecimal and other bases",
		Category:    domain.Category_Converters,
		Keywords:    []string{"number", "base", "radix", "binary", "octal", "decimal", "hex", "hexadecimal"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Convert),
				Name:        "Convert",
				ActionType:  ToolActionType_Convert,
				Description: "Converts an integer from one base into the common bases",
				Properties: []domain.ToolProperty{
					{
						Key:         "value",
						Name:        "Value",
						Description: "Integer to convert; 0x, 0o and 0b prefixes and _ separators are accepted",
						Required:    true,
						Type:        domain.ToolPropertyType_String,
					},
					{
						Key:         "from",
						Name:        "From Base",
						Description: "Base of the value",
						Type:        domain.ToolPropertyType_Integer,
						Default:     10,
						NumberOpts:  &domain.NumberPropertyOptions{Min: 2, Max: 36},
					},
					{
						Key:         "to",
						Name:        "Custom Base",
						Description: "Additional base to convert to; 0 for none",
						Type:        domain.ToolPropertyType_Integer,
						Default:     0,
						NumberOpts:  &domain.NumberPropertyOptions{Min: 0, Max: 36},
					},
				},
			},
		},
	}
)
