package regextester

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Test    domain.ToolActionType = "test"
	ToolActionType_Replace domain.ToolActionType = "replace"
)

var patternProperty = domain.ToolProperty{
	Key:         "pattern",
	Name:        "Pattern",
	Description: "A JavaScript regular expression without the surrounding slashes",
	Required:    true,
	Type:        domain.ToolPropertyType_String,
	Placeholder: `(\w+)@(\w+)\.com`,
}

var flagsProperty = domain.ToolProperty{
	Key:         "flags",
	Name:        "Flags",
	Description: "Any of g (global), i (ignore case), m (multiline) and s (dot matches newline)",
	Type:        domain.ToolPropertyType_String,
	Default:     "g",
}

var textProperty = domain.ToolProperty{
	Key:         "text",
	Name:        "Test String",
	Description: "The text to search",
	Type:        domain.ToolPropertyType_Text,
	Default:     "",
}

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_RegexTester,
		Name:        "Regex Tester",
		Description: "Test JavaScript regular expressions and inspect matches and capture groups",
		Category:    domain.Category_Developer,
		Keywords:    []string{"regex", "regexp", "regular expression", "match", "pattern", "replace", "capture"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Test),
				Name:        "Test",
				ActionType:  ToolActionType_Test,
				Description: "Lists every match with its position and capture groups",
				Properties:  []domain.ToolProperty{patternProperty, flagsProperty, textProperty},
			},
			{
				ID:          string(ToolActionType_Replace),
				Name:        "Replace",
				ActionType:  ToolActionType_Replace,
				Description: "Replaces matches; $1 and $<name> refer to capture groups",
				Properties: []domain.ToolProperty{
					patternProperty,
					flagsProperty,
					textProperty,
					{
						Key:         "replacement",
						Name:        "Replacement",
						Description: "The replacement text",
						Type:        domain.ToolPropertyType_String,
						Default:     "",
					},
				},
			},
		},
	}
)
