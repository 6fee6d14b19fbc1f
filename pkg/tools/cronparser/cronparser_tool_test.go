package cronparser

import (
	"context"
	"testing"
	"time"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, actionType domain.ToolActionType, item domain.Item) (domain.Item, error) {
	t.Helper()

	tool := NewCronParserTool(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})
	tool.(*CronParserTool).now = func() time.Time {
		return time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)
	}

	output, err := tool.Execute(context.Background(), domain.ToolInput{
		ToolID:     Schema.ID,
		ActionType: actionType,
		Items:      []domain.Item{item},
	})
	if err != nil {
		return nil, err
	}

	return output.First(), nil
}

func TestExplain_Descriptions(t *testing.T) {
	tests := []struct {
		expression string
		expected   string
	}{
		{expression: "* * * * *", expected: "Every minute"},
		{expression: "*/15 * * * *", expected: "Every 15 minutes"},
		{expression: "0 9 * * *", expected: "At 09:00"},
		{expression: "30 */2 * * *", expected: "At minute 30, every 2 hours"},
		{expression: "0 0 1 * *", expected: "At 00:00, on day 1 of the month"},
		{expression: "0 9 * * 1-5", expected: "At 09:00, every day of the week from Monday through Friday"},
		{expression: "0 12 * JAN,jul SUN", expected: "At 12:00, in January and July, on Sunday"},
		{expression: "0,15,30,45 * * * *", expected: "At minutes 0, 15, 30 and 45"},
		{expression: "5-10/2 * * * *", expected: "Every 2 minutes from 5 through 10"},
		{expression: "  0   9 * * *  ", expected: "At 09:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			result, err := run(t, ToolActionType_Explain, domain.Item{"expression": tt.expression})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result["output"])
		})
	}
}

func TestExplain_Fields(t *testing.T) {
	explanation, err := Explain("*/5 9-17 ? * MON")
	require.NoError(t, err)

	assert.Equal(t, []FieldExplanation{
		{Field: "minute", Value: "*/5", Description: "every 5 minutes"},
		{Field: "hour", Value: "9-17", Description: "every hour from 9 through 17"},
		{Field: "day", Value: "?", Description: "every day"},
		{Field: "month", Value: "*", Description: "every month"},
		{Field: "weekday", Value: "MON", Description: "on Monday"},
	}, explanation.Fields)
}

func TestExplain_FieldCount(t *testing.T) {
	for _, expression := range []string{"* * * *", "* * * * * *", "0"} {
		_, err := run(t, ToolActionType_Explain, domain.Item{"expression": expression})
		assert.EqualError(t, err, "Invalid cron expression. Expected 5 fields: minute hour day month weekday")
	}
}

func TestExplain_InvalidFields(t *testing.T) {
	tests := []struct {
		expression string
		expected   string
	}{
		{expression: "60 * * * *", expected: "Invalid cron expression: minute value 60 is out of range 0-59"},
		{expression: "* * * 13 *", expected: "Invalid cron expression: month value 13 is out of range 1-12"},
		{expression: "*/0 * * * *", expected: `Invalid cron expression: step "0" in the minute field must be a positive number`},
		{expression: "* 5-2 * * *", expected: "Invalid cron expression: range 5-2 in the hour field is reversed"},
		{expression: "* * * * FOO", expected: `Invalid cron expression: "FOO" is not a valid weekday value`},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			_, err := run(t, ToolActionType_Explain, domain.Item{"expression": tt.expression})
			assert.EqualError(t, err, tt.expected)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestNextRuns(t *testing.T) {
	result, err := run(t, ToolActionType_NextRuns, domain.Item{"expression": "0 9 * * 1-5", "count": 3})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"2024-01-01T09:00:00Z",
		"2024-01-02T09:00:00Z",
		"2024-01-03T09:00:00Z",
	}, result["runs"])
	assert.Equal(t, "UTC", result["timezone"])
}

func TestNextRuns_FromAndTimezone(t *testing.T) {
	result, err := run(t, ToolActionType_NextRuns, domain.Item{
		"expression": "@daily",
		"count":      2,
		"from":       "2024-03-10T12:00:00Z",
		"timezone":   "Europe/Berlin",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-03-11T00:00:00+01:00", "2024-03-12T00:00:00+01:00"}, result["runs"])
}

func TestNextRuns_Invalid(t *testing.T) {
	_, err := run(t, ToolActionType_NextRuns, domain.Item{"expression": "* * *"})
	assert.EqualError(t, err, "Invalid cron expression. Expected 5 fields: minute hour day month weekday")

	_, err = run(t, ToolActionType_NextRuns, domain.Item{"expression": "* * * * *", "timezone": "Mars/Olympus"})
	assert.EqualError(t, err, `Unknown timezone "Mars/Olympus"`)
}
