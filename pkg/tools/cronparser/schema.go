package cronparser

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Explain  domain.ToolActionType = "explain"
	ToolActionType_NextRuns domain.ToolActionType = "next_runs"
)

var expressionProperty = domain.ToolProperty{
	Key:         "expression",
	Name:        "Cron Expression",
	Description: "Five fields: minute hour day month weekday",
	Required:    true,
	Type:        domain.ToolPropertyType_String,
	Placeholder: "*/15 9-17 * * MON-FRI",
}

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_CronParser,
		Name:        "Cron Parser",
		Description: "Explain cron expressions in plain English and list upcoming runs",
		Category:    domain.Category_DateTime,
		Keywords:    []string{"cron", "crontab", "schedule", "job", "explain"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Explain),
				Name:        "Explain",
				ActionType:  ToolActionType_Explain,
				Description: "Describes what each field of the expression means",
				Properties:  []domain.ToolProperty{expressionProperty},
			},
			{
				ID:          string(ToolActionType_NextRuns),
				Name:        "Next Runs",
				ActionType:  ToolActionType_NextRuns,
				Description: "Lists the next times the expression fires",
				Properties: []domain.ToolProperty{
					expressionProperty,
					{
						Key:        "count",
						Name:       "Count",
						Type:       domain.ToolPropertyType_Integer,
						Default:    5,
						NumberOpts: &domain.NumberPropertyOptions{Min: 1, Max: 50},
					},
					{
						Key:         "from",
						Name:        "From",
						Description: "RFC 3339 start time, defaults to now",
						Type:        domain.ToolPropertyType_String,
						Placeholder: "2024-01-01T00:00:00Z",
					},
					{
						Key:         "timezone",
						Name:        "Timezone",
						Description: "IANA timezone the schedule runs in",
						Type:        domain.ToolPropertyType_String,
						Default:     "UTC",
					},
				},
			},
		},
	}
)
