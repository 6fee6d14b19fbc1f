package stringescape

import (
	"context"
	"testing"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, actionType domain.ToolActionType, item domain.Item) (domain.Item, error) {
	t.Helper()

	tool := NewStringEscapeTool(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

	output, err := tool.Execute(context.Background(), domain.ToolInput{
		ActionType: actionType,
		Items:      []domain.Item{item},
	})
	if err != nil {
		return nil, err
	}

	return output.First(), nil
}

func TestStringEscape_Escape(t *testing.T) {
	tests := []struct {
		name     string
		item     domain.Item
		expected string
	}{
		{name: "json", item: domain.Item{"text": "say \"hi\"\n\t<b>\\"}, expected: `say \"hi\"\n\t<b>\\`},
		{name: "json quoted", item: domain.Item{"text": "x", "quotes": true}, expected: `"x"`},
		{name: "go", item: domain.Item{"text": "tab\there\x00", "format": "go"}, expected: `tab\there\x00`},
		{name: "sql", item: domain.Item{"text": "O'Brien", "format": "sql", "quotes": true}, expected: `'O''Brien'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := run(t, ToolActionType_Escape, tt.item)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result["output"])
		})
	}
}

func TestStringEscape_RoundTrip(t *testing.T) {
	inputs := []string{"plain", "quotes \" and ' mixed", "multi\nline\r\n", "unicode ✓ é", "back\\slash"}

	for _, format := range []string{"json", "go", "sql"} {
		for _, input := range inputs {
			escaped, err := run(t, ToolActionType_Escape, domain.Item{"text": input, "format": format})
			require.NoError(t, err)

			unescaped, err := run(t, ToolActionType_Unescape, domain.Item{"text": escaped["output"], "format": format})
			require.NoError(t, err)

			assert.Equal(t, input, unescaped["output"], "%s: %q", format, input)
		}
	}
}

func TestStringEscape_UnescapeInvalid(t *testing.T) {
	_, err := run(t, ToolActionType_Unescape, domain.Item{"text": `bad \q escape`})
	assert.EqualError(t, err, "Invalid escape sequence")

	_, err = run(t, ToolActionType_Unescape, domain.Item{"text": `bad \q escape`, "format": "go"})
	assert.EqualError(t, err, "Invalid escape sequence")
}
