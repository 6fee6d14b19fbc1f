package loremipsum

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Generate domain.ToolActionType = "generate"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_LoremIpsum,
		Name:        "Lorem Ipsum Generator",
		Description: "Generate placeholder text by words, sentences or paragraphs",
		Category:    domain.Category_Text,
		Keywords:    []string{"lorem", "ipsum", "placeholder", "dummy", "text", "filler"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Generate),
				Name:        "Generate",
				ActionType:  ToolActionType_Generate,
				Description: "Generates the requested amount of placeholder text",
				IsRandom:    true,
				Properties: []domain.ToolProperty{
					{
						Key:         "unit",
						Name:        "Unit",
						Description: "What the count refers to",
						Type:        domain.ToolPropertyType_Select,
						Default:     "paragraphs",
						Options: []domain.ToolPropertyOption{
							{Label: "Words", Value: "words"},
							{Label: "Sentences", Value: "sentences"},
							{Label: "Paragraphs", Value: "paragraphs"},
						},
					},
					{
						Key:         "count",
						Name:        "Count",
						Description: "How many units to generate",
						Type:        domain.ToolPropertyType_Integer,
						Default:     3,
						NumberOpts:  &domain.NumberPropertyOptions{Min: 1, Max: 100},
					},
					{
						Key:         "start_with_lorem",
						Name:        "Start with Lorem ipsum",
						Description: "Begin with the classic \"Lorem ipsum dolor sit amet\"",
						Type:        domain.ToolPropertyType_Boolean,
						Default:     true,
					},
				},
			},
		},
	}
)
