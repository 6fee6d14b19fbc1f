package slugify

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Slugify domain.ToolActionType = "slugify"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_Slugify,
		Name:        "Slugify",
		Description: "Turn titles into URL friendly slugs",
		Category:    domain.Category_Text,
		Keywords:    []string{"slug", "slugify", "url", "permalink", "seo", "transliterate"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Slugify),
				Name:        "Slugify",
				ActionType:  ToolActionType_Slugify,
				Description: "Transliterates to ASCII, lower-cases and joins words with a separator",
				Properties: []domain.ToolProperty{
					{
						Key:         "text",
						Name:        "Text",
						Description: "The title or phrase to slugify",
						Required:    true,
						Type:        domain.ToolPropertyType_String,
						Placeholder: "Hello World & Café",
					},
					{
						Key:         "language",
						Name:        "Language",
						Description: "Language used for letter and symbol substitutions",
						Type:        domain.ToolPropertyType_Select,
						Default:     "en",
						Options: []domain.ToolPropertyOption{
							{Label: "English", Value: "en"},
							{Label: "German", Value: "de"},
							{Label: "French", Value: "fr"},
							{Label: "Spanish", Value: "es"},
							{Label: "Italian", Value: "it"},
							{Label: "Dutch", Value: "nl"},
							{Label: "Polish", Value: "pl"},
							{Label: "Portuguese", Value: "pt"},
							{Label: "Swedish", Value: "sv"},
							{Label: "Turkish", Value: "tr"},
							{Label: "Greek", Value: "el"},
							{Label: "Czech", Value: "cs"},
						},
					},
					{
						Key:         "separator",
						Name:        "Separator",
						Description: "Character placed between words",
						Type:        domain.ToolPropertyType_Select,
						Default:     "-",
						Options: []domain.ToolPropertyOption{
							{Label: "Dash (-)", Value: "-"},
							{Label: "Underscore (_)", Value: "_"},
						},
					},
					{
						Key:         "max_length",
						Name:        "Max Length",
						Description: "Truncate at a word boundary; 0 keeps the full slug",
						Type:        domain.ToolPropertyType_Integer,
						Default:     0,
						NumberOpts:  &domain.NumberPropertyOptions{Min: 0, Max: 2048},
					},
				},
			},
		},
	}
)
