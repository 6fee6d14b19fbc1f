package jq

import (
	"context"
	"testing"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const input = `{"user": {"name": "ada", "first name": "Ada", "langs": ["go", "rust", "zig"]}, "count": 3}`

func runFilter(t *testing.T, filter string) (domain.Item, error) {
	t.Helper()

	tool := NewJQTool(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

	output, err := tool.Execute(context.Background(), domain.ToolInput{
		ToolID:     Schema.ID,
		ActionType: ToolActionType_Query,
		Items:      []domain.Item{{"json": input, "filter": filter}},
	})
	if err != nil {
		return nil, err
	}

	return output.First(), nil
}

func TestJQ_PathFilters(t *testing.T) {
	tests := []struct {
		filter   string
		expected string
	}{
		{filter: ".count", expected: "3"},
		{filter: ".user.name", expected: `"ada"`},
		{filter: `."user"."first name"`, expected: `"Ada"`},
		{filter: `.["user"]["name"]`, expected: `"ada"`},
		{filter: ".user.langs[0]", expected: `"go"`},
		{filter: ".user.langs[-1]", expected: `"zig"`},
		{filter: ".user | .langs | .[1]", expected: `"rust"`},
		{filter: ".user.langs", expected: "[\n  \"go\",\n  \"rust\",\n  \"zig\"\n]"},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			result, err := runFilter(t, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result["output"])
		})
	}
}

func TestJQ_IdentityIsDefault(t *testing.T) {
	tool := NewJQTool(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

	output, err := tool.Execute(context.Background(), domain.ToolInput{
		ActionType: ToolActionType_Query,
		Items:      []domain.Item{{"json": `[1]`}},
	})
	require.NoError(t, err)
	assert.Equal(t, "[\n  1\n]", output.First()["output"])
}

func TestJQ_DuplicateKeys(t *testing.T) {
	tests := []struct {
		json     string
		filter   string
		expected string
	}{
		{json: `{"a": 1, "a": 2}`, filter: ".a", expected: `2`},
		{json: `{"a": {"b": 1}, "a": {"b": 3}}`, filter: ".a.b", expected: `3`},
		{json: `{"xs": [1], "xs": [5, 6]}`, filter: ".xs[-1]", expected: `6`},
	}

	tool := NewJQTool(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			output, err := tool.Execute(context.Background(), domain.ToolInput{
				ActionType: ToolActionType_Query,
				Items:      []domain.Item{{"json": tt.json, "filter": tt.filter}},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, output.First()["output"])
		})
	}
}

func TestJQ_Errors(t *testing.T) {
	tests := []struct {
		filter string
		errMsg string
	}{
		{filter: ".user.langs[]", errMsg: unsupportedFilterMessage},
		{filter: ".user.langs[0:2]", errMsg: unsupportedFilterMessage},
		{filter: "map(.name)", errMsg: unsupportedFilterMessage},
		{filter: ".count + 1", errMsg: unsupportedFilterMessage},
		{filter: ".user.name?", errMsg: unsupportedFilterMessage},
		{filter: "..", errMsg: unsupportedFilterMessage},
		{filter: ".missing", errMsg: "Path not found"},
		{filter: ".user.langs[3]", errMsg: "Path not found"},
		{filter: ".count.value", errMsg: "Path not found"},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			_, err := runFilter(t, tt.filter)
			require.Error(t, err)
			assert.Equal(t, tt.errMsg, err.Error())
		})
	}

	_, err := runFilter(t, ".user[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid filter: ")
}
