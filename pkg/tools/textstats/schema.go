package textstats

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Analyze domain.ToolActionType = "analyze"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_TextStats,
		Name:        "Word Counter",
		Description: "Count characters, words, sentences, lines and paragraphs, and estimate reading time",
		Category:    domain.Category_Text,
		Keywords:    []string{"word", "count", "counter", "characters", "sentences", "reading time", "statistics"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Analyze),
				Name:        "Analyze",
				ActionType:  ToolActionType_Analyze,
				Description: "Computes text statistics",
				Properties: []domain.ToolProperty{
					{
						Key:         "text",
						Name:        "Text",
						Description: "The text to analyze",
						Type:        domain.ToolPropertyType_Text,
						Default:     "",
					},
					{
						Key:         "words_per_minute",
						Name:        "Reading Speed",
						Description: "Words read per minute",
						Type:        domain.ToolPropertyType_Integer,
						Default:     200,
						NumberOpts:  &domain.NumberPropertyOptions{Min: 50, Max: 1000},
					},
				},
			},
		},
	}
)
