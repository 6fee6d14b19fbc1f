package textdiff

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Diff domain.ToolActionType = "diff"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_TextDiff,
		Name:        "Text Diff",
		Description: "Compare two texts line by line",
		Category:    domain.Category_Developer,
		Keywords:    []string{"diff", "compare", "difference", "patch", "changes"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Diff),
				Name:        "Compare",
				ActionType:  ToolActionType_Diff,
				Description: "Marks removed lines with - and added lines with +",
				Properties: []domain.ToolProperty{
					{
						Key:         "original",
						Name:        "Original",
						Description: "The original text",
						Type:        domain.ToolPropertyType_Text,
						Default:     "",
					},
					{
						Key:         "modified",
						Name:        "Modified",
						Description: "The changed text",
						Type:        domain.ToolPropertyType_Text,
						Default:     "",
					},
					{
						Key:         "ignore_trailing_whitespace",
						Name:        "Ignore Trailing Whitespace",
						Description: "Strip whitespace at the end of each line before comparing",
						Type:        domain.ToolPropertyType_Boolean,
						Default:     false,
					},
				},
			},
		},
	}
)
