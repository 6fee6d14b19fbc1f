package htmlmarkdown

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_ToMarkdown domain.ToolActionType = "to_markdown"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_HTMLToMarkdown,
		Name:        "HTML to Markdown",
		Description: "Convert HTML markup into clean Markdown",
		Category:    domain.Category_Converters,
		Keywords:    []string{"html", "markdown", "md", "convert"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_ToMarkdown),
				Name:        "To Markdown",
				ActionType:  ToolActionType_ToMarkdown,
				Description: "Converts an HTML document or fragment to Markdown",
				Properties: []domain.ToolProperty{
					{
						Key:         "html",
						Name:        "HTML",
						Description: "The HTML to convert",
						Required:    true,
						Type:        domain.ToolPropertyType_Text,
						Placeholder: "<h1>Title</h1><p>Hello <strong>world</strong></p>",
					},
					{
						Key:         "domain",
						Name:        "Base URL",
						Description: "Resolves relative links and images against this URL",
						Type:        domain.ToolPropertyType_String,
						Placeholder: "https://example.com",
					},
				},
			},
		},
	}
)
