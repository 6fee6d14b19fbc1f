package rot13

import (
	"context"
	"testing"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, actionType domain.ToolActionType, item domain.Item) (domain.Item, error) {
	t.Helper()

	tool := NewROT13Tool(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

	output, err := tool.Execute(context.Background(), domain.ToolInput{
		ActionType: actionType,
		Items:      []domain.Item{item},
	})
	if err != nil {
		return nil, err
	}

	return output.First(), nil
}

func TestROT13(t *testing.T) {
	result, err := run(t, ToolActionType_Apply, domain.Item{"text": "Hello, World! 123"})
	require.NoError(t, err)
	assert.Equal(t, "Uryyb, Jbeyq! 123", result["output"])
}

func TestROT13_Involution(t *testing.T) {
	for _, input := range []string{"Hello, World!", "abcdefghijklmnopqrstuvwxyz", "ÄÖÜ stays ß", ""} {
		assert.Equal(t, input, Rotate(Rotate(input, 13), 13))
	}
}

func TestCaesar(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		shift    any
		expected string
	}{
		{name: "default shift", text: "xyz ABC", expected: "abc DEF"},
		{name: "negative shift", text: "abc", shift: -1, expected: "zab"},
		{name: "string shift", text: "abc", shift: "25", expected: "zab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := domain.Item{"text": tt.text}
			if tt.shift != nil {
				item["shift"] = tt.shift
			}

			result, err := run(t, ToolActionType_Caesar, item)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result["output"])
		})
	}

	_, err := run(t, ToolActionType_Caesar, domain.Item{"text": "abc", "shift": 40})
	assert.EqualError(t, err, "Shift must be between -25 and 25")
}
