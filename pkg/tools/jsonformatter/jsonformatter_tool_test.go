package jsonformatter

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, actionType domain.ToolActionType, item domain.Item) (domain.Item, error) {
	t.Helper()

	tool := NewJSONFormatterTool(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

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

func canonical(t *testing.T, s string) string {
	t.Helper()

	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))

	b, err := json.Marshal(v)
	require.NoError(t, err)

	return string(b)
}

func TestJSONFormatter_Beautify(t *testing.T) {
	tests := []struct {
		name     string
		item     domain.Item
		expected string
	}{
		{
			name:     "two spaces",
			item:     domain.Item{"json": `{"b":1,"a":[1,2]}`},
			expected: "{\n  \"b\": 1,\n  \"a\": [\n    1,\n    2\n  ]\n}",
		},
		{
			name:     "tab and sorted keys",
			item:     domain.Item{"json": `{"b":1,"a":true}`, "indent": "tab", "sort_keys": true},
			expected: "{\n\t\"a\": true,\n\t\"b\": 1\n}",
		},
		{
			name:     "scalar",
			item:     domain.Item{"json": ` "text" `},
			expected: `"text"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := run(t, ToolActionType_Beautify, tt.item)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result["output"])
		})
	}
}

func TestJSONFormatter_MinifyPreservesContent(t *testing.T) {
	inputs := []string{
		`{"name": "devtoolbox", "tags": ["a", "b"], "nested": {"n": 1.5e3, "s": "with \"quotes\" and  spaces"}}`,
		`[1, 2, {"x": null}]`,
		`  true `,
		"{\n\t\"unicode\": \"héllo\"\n}",
	}

	for _, input := range inputs {
		minified, err := run(t, ToolActionType_Minify, domain.Item{"json": input})
		require.NoError(t, err)

		beautified, err := run(t, ToolActionType_Beautify, domain.Item{"json": minified["output"]})
		require.NoError(t, err)

		assert.Equal(t, canonical(t, input), canonical(t, minified["output"].(string)))
		assert.Equal(t, canonical(t, input), canonical(t, beautified["output"].(string)))
		assert.NotContains(t, strings.TrimSpace(minified["output"].(string)), "\n")
	}
}

func TestJSONFormatter_InvalidJSON(t *testing.T) {
	for _, actionType := range []domain.ToolActionType{ToolActionType_Beautify, ToolActionType_Minify, ToolActionType_Validate} {
		_, err := run(t, actionType, domain.Item{"json": `{"a": }`})
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "Invalid JSON: "), err.Error())
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	_, err := run(t, ToolActionType_Minify, domain.Item{})
	assert.EqualError(t, err, "JSON is required")
}

func TestJSONFormatter_Validate(t *testing.T) {
	result, err := run(t, ToolActionType_Validate, domain.Item{"json": `[1]`})
	require.NoError(t, err)
	assert.Equal(t, true, result["valid"])
	assert.Equal(t, "array", result["type"])
}
