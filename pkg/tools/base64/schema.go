package base64

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Encode domain.ToolActionType = "encode"
	ToolActionType_Decode domain.ToolActionType = "decode"
)

var urlSafeProperty = domain.ToolProperty{
	Key:         "url_safe",
	Name:        "URL Safe",
	Description: "Use the URL and filename safe alphabet (- and _ instead of + and /)",
	Type:        domain.ToolPropertyType_Boolean,
	Default:     false,
}

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_Base64,
		Name:        "Base64 Encoder/Decoder",
		Description: "Encode text to Base64 or decode Base64 to text",
		Category:    domain.Category_Encoding,
		Keywords:    []string{"base64", "encode", "decode", "btoa", "atob"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Encode),
				Name:        "Encode",
				ActionType:  ToolActionType_Encode,
				Description: "Encodes the UTF-8 bytes of the text to Base64",
				Properties: []domain.ToolProperty{
					{
						Key:         "text",
						Name:        "Text",
						Description: "The text to encode",
						Required:    true,
						Type:        domain.ToolPropertyType_Text,
					},
					urlSafeProperty,
				},
			},
			{
				ID:          string(ToolActionType_Decode),
				Name:        "Decode",
				ActionType:  ToolActionType_Decode,
				Description: "Decodes Base64 back to text",
				Properties: []domain.ToolProperty{
					{
						Key:         "text",
						Name:        "Base64 Text",
						Description: "The Base64 encoded text to decode; whitespace is ignored",
						Required:    true,
						Type:        domain.ToolPropertyType_Text,
					},
					urlSafeProperty,
				},
			},
		},
	}
)
