package jq

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Query domain.ToolActionType = "query"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_JQ,
		Name:        "jq Playground",
		Description: "Run simple jq path filters such as .items[0].name against JSON",
		Category:    domain.Category_JSON,
		Keywords:    []string{"jq", "json", "filter", "query", "path"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Query),
				Name:        "Run Filter",
				ActionType:  ToolActionType_Query,
				Description: "Applies identity, field and index filters, optionally joined with pipes",
				Properties: []domain.ToolProperty{
					{
						Key:         "json",
						Name:        "JSON",
						Description: "The JSON input",
						Required:    true,
						Type:        domain.ToolPropertyType_Text,
					},
					{
						Key:         "filter",
						Name:        "Filter",
						Description: `A jq path filter: ., .field, ."quoted key", .[n] and chains of those`,
						Type:        domain.ToolPropertyType_String,
						Default:     ".",
						Placeholder: ".items[0].name",
					},
				},
			},
		},
	}
)
