package colorconverter

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Convert domain.ToolActionType = "convert"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_ColorConverter,
		Name:        "Color Converter",
		Description: "Convert colors between HEX, RGB, HSL and HSV and check their contrast",
		Category:    domain.Category_Converters,
		Keywords:    []string{"color", "colour", "hex", "rgb", "hsl", "hsv", "css", "contrast"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Convert),
				Name:        "Convert",
				ActionType:  ToolActionType_Convert,
				Description: "Reads a color in any supported notation and writes it in all of them",
				Properties: []domain.ToolProperty{
					{
						Key:         "color",
						Name:        "Color",
						Description: "A color such as #ff0080, rgb(255, 0, 128), hsl(330, 100%, 50%) or hsv(330, 100%, 100%)",
						Required:    true,
						Type:        domain.ToolPropertyType_String,
						Placeholder: "#ff0080",
					},
				},
			},
		},
	}
)
