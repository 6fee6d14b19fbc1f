package urlencoder

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Encode domain.ToolActionType = "encode"
	ToolActionType_Decode domain.ToolActionType = "decode"
	ToolActionType_Parse  domain.ToolActionType = "parse"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_URLEncoder,
		Name:        "URL Encoder/Decoder",
		Description: "Percent-encode and decode URL components, and break URLs into their parts",
		Category:    domain.Category_Encoding,
		Keywords:    []string{"url", "uri", "encode", "decode", "percent", "query", "escape", "parse"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Encode),
				Name:        "Encode",
				ActionType:  ToolActionType_Encode,
				Description: "Percent-encodes everything except A-Z a-z 0-9 - _ . ! ~ * ' ( )",
				Properties: []domain.ToolProperty{
					{
						Key:         "text",
						Name:        "Text",
						Description: "The text to encode",
						Required:    true,
						Type:        domain.ToolPropertyType_Text,
					},
				},
			},
			{
				ID:          string(ToolActionType_Decode),
				Name:        "Decode",
				ActionType:  ToolActionType_Decode,
				Description: "Decodes percent-encoded UTF-8 sequences",
				Properties: []domain.ToolProperty{
					{
						Key:         "text",
						Name:        "Encoded Text",
						Description: "The percent-encoded text to decode",
						Required:    true,
						Type:        domain.ToolPropertyType_Text,
					},
				},
			},
			{
				ID:          string(ToolActionType_Parse),
				Name:        "Parse URL",
				ActionType:  ToolActionType_Parse,
				Description: "Splits an absolute URL into protocol, host, path, query parameters and fragment",
				Properties: []domain.ToolProperty{
					{
						Key:         "url",
						Name:        "URL",
						Description: "An absolute URL",
						Required:    true,
						Type:        domain.ToolPropertyType_String,
						Placeholder: "https://example.com/path?q=1#top",
					},
				},
			},
		},
	}
)
