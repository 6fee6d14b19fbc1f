package qrcode

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Generate domain.ToolActionType = "generate"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_QRCodeGenerator,
		Name:        "QR Code Generator",
		Description: "Render text or URLs as a QR code",
		Category:    domain.Category_Web,
		Keywords:    []string{"qr", "qrcode", "barcode", "url", "share"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Generate),
				Name:        "Generate",
				ActionType:  ToolActionType_Generate,
				Description: "Draws the QR code with block characters",
				Properties: []domain.ToolProperty{
					{
						Key:         "text",
						Name:        "Text",
						Description: "Content to encode",
						Required:    true,
						Type:        domain.ToolPropertyType_Text,
						Placeholder: "https://example.com",
					},
					{
						Key:         "level",
						Name:        "Error Correction",
						Description: "Higher levels survive more damage but hold less data",
						Type:        domain.ToolPropertyType_Select,
						Default:     "M",
						Options: []domain.ToolPropertyOption{
							{Label: "Low (7%)", Value: "L"},
							{Label: "Medium (15%)", Value: "M"},
							{Label: "High (30%)", Value: "H"},
						},
					},
				},
			},
		},
	}
)
