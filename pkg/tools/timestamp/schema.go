package timestamp

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Convert domain.ToolActionType = "convert"
)

var (
	Schema = schema

	schema domain.Tool = domain.Tool{
		ID:          domain.ToolType_TimestampConverter,
		Name:        "Timestamp Converter",
		Description: "Convert between Unix timestamps and human readable dates",
		Category:    domain.Category_DateTime,
		Keywords:    []string{"timestamp", "unix", "epoch", "date", "time", "rfc3339", "iso8601"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Convert),
				Name:        "Convert",
				ActionType:  ToolActionType_Convert,
				Description: "Reads a Unix timestamp or a date string and shows it in every common form",
				Properties: []domain.ToolProperty{
					{
						Key:         "value",
						Name:        "Value",
						Description: "Unix seconds or milliseconds, \"now\", or a date such as 2024-01-15 10:30:00",
						Required:    true,
						Type:        domain.ToolPropertyType_String,
						Placeholder: "1700000000",
					},
					{
						Key:         "timezone",
						Name:        "Timezone",
						Description: "IANA timezone for local output and for dates without an offset",
						Type:        domain.ToolPropertyType_String,
						Default:     "UTC",
					},
				},
			},
		},
	}
)
