package jsonpath

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Query domain.ToolActionType = "query"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_JSONPath,
		Name:        "JSON Path Evaluator",
		Description: "Extract a value from a JSON document with a dot path such as $.items[0].name",
		Category:    domain.Category_JSON,
		Keywords:    []string{"json", "path", "jsonpath", "query", "extract", "select"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Query),
				Name:        "Query",
				ActionType:  ToolActionType_Query,
				Description: "Evaluates dot segments and bracket indexes against the document",
				Properties: []domain.ToolProperty{
					{
						Key:         "json",
						Name:        "JSON",
						Description: "The JSON document to query",
						Required:    true,
						Type:        domain.ToolPropertyType_Text,
					},
					{
						Key:         "path",
						Name:        "Path",
						Description: "Dot path with optional bracket indexes, e.g. $.store.books[0].title",
						Required:    true,
						Type:        domain.ToolPropertyType_String,
						Placeholder: "$.items[0].name",
					},
				},
			},
		},
	}
)
