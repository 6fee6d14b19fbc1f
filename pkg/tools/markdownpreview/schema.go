package markdownpreview

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_ToHTML domain.ToolActionType = "to_html"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_MarkdownHTML,
		Name:        "Markdown Preview",
		Description: "Render GitHub flavored Markdown to HTML",
		Category:    domain.Category_Converters,
		Keywords:    []string{"markdown", "md", "html", "gfm", "preview", "render"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_ToHTML),
				Name:        "To HTML",
				ActionType:  ToolActionType_ToHTML,
				Description: "Renders Markdown with tables, task lists, strikethrough and autolinks",
				Properties: []domain.ToolProperty{
					{
						Key:         "markdown",
						Name:        "Markdown",
						Description: "The Markdown document to render",
						Required:    true,
						Type:        domain.ToolPropertyType_Text,
						Placeholder: "# Hello\n\nSome **bold** text",
					},
					{
						Key:         "allow_html",
						Name:        "Allow Raw HTML",
						Description: "Pass raw HTML blocks through instead of omitting them",
						Type:        domain.ToolPropertyType_Boolean,
						Default:     false,
					},
					{
						Key:         "hard_wraps",
						Name:        "Hard Wraps",
						Description: "Render single newlines as line breaks",
						Type:        domain.ToolPropertyType_Boolean,
						Default:     false,
					},
				},
			},
		},
	}
)
