package imagebase64

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
		ID:          domain.ToolType_ImageBase64,
		Name:        "Image to Base64",
		Description: "Convert images to Base64 data URIs and inspect existing data URIs",
		Category:    domain.Category_Encoding,
		Keywords:    []string{"image", "base64", "data uri", "png", "jpeg", "embed", "inline"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Encode),
				Name:        "Encode",
				ActionType:  ToolActionType_Encode,
				Description: "Builds a data URI with the detected MIME type",
				Properties: []domain.ToolProperty{
					{
						Key:         "file",
						Name:        "Image",
						Description: "The image file",
						Required:    true,
						Type:        domain.ToolPropertyType_File,
					},
				},
			},
			{
				ID:          string(ToolActionType_Decode),
				Name:        "Decode",
				ActionType:  ToolActionType_Decode,
				Description: "Reports the MIME type, size and dimensions of an image data URI",
				Properties: []domain.ToolProperty{
					{
						Key:         "data_uri",
						Name:        "Data URI",
						Description: "A data URI such as data:image/png;base64,...",
						Required:    true,
						Type:        domain.ToolPropertyType_Text,
					},
				},
			},
		},
	}
)
