package imageresizer

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Resize domain.ToolActionType = "resize"
)

const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_ImageResizer,
		Name:        "Image Resizer",
		Description: "Resize images and convert them to PNG or JPEG",
		Category:    domain.Category_Image,
		Keywords:    []string{"image", "resize", "scale", "thumbnail", "png", "jpeg", "jpg"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Resize),
				Name:        "Resize",
				ActionType:  ToolActionType_Resize,
				Description: "Scales the image, keeping the aspect ratio when width or height is 0",
				Properties: []domain.ToolProperty{
					{
						Key:         "file",
						Name:        "Image",
						Description: "The image as base64 or a data URI",
						Required:    true,
						Type:        domain.ToolPropertyType_File,
					},
					{
						Key:        "width",
						Name:       "Width",
						Type:       domain.ToolPropertyType_Integer,
						Default:    0,
						NumberOpts: &domain.NumberPropertyOptions{Min: 0, Max: 8192},
					},
					{
						Key:        "height",
						Name:       "Height",
						Type:       domain.ToolPropertyType_Integer,
						Default:    0,
						NumberOpts: &domain.NumberPropertyOptions{Min: 0, Max: 8192},
					},
					{
						Key:     "format",
						Name:    "Format",
						Type:    domain.ToolPropertyType_Select,
						Default: FormatPNG,
						Options: []domain.ToolPropertyOption{
							{Label: "PNG", Value: FormatPNG},
							{Label: "JPEG", Value: FormatJPEG},
						},
					},
					{
						Key:         "quality",
						Name:        "JPEG Quality",
						Description: "Only used for JPEG output",
						Type:        domain.ToolPropertyType_Integer,
						Default:     90,
						NumberOpts:  &domain.NumberPropertyOptions{Min: 1, Max: 100},
					},
				},
			},
		},
	}
)
