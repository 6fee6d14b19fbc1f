package textstats

import (
	"context"
	"strings"
	"testing"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Stats
	}{
		{
			name:     "empty",
			text:     "",
			expected: Stats{},
		},
		{
			name: "two paragraphs",
			text: "Hello world. How are you?\n\nFine, thanks!",
			expected: Stats{
				Characters:             40,
				CharactersWithoutSpace: 33,
				Bytes:                  40,
				Words:                  7,
				Sentences:              3,
				Lines:                  3,
				Paragraphs:             2,
				ReadingTimeMinutes:     1,
			},
		},
		{
			name: "graphemes",
			text: "café 👍🏽",
			expected: Stats{
				Characters:             6,
				CharactersWithoutSpace: 5,
				Bytes:                  len("café 👍🏽"),
				Words:                  2,
				Sentences:              1,
				Lines:                  1,
				Paragraphs:             1,
				ReadingTimeMinutes:     1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compute(tt.text, 200))
		})
	}
}

func TestTextStats_ReadingTime(t *testing.T) {
	tool := NewTextStatsTool(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

	text := strings.Repeat("word ", 401)

	output, err := tool.Execute(context.Background(), domain.ToolInput{
		ActionType: ToolActionType_Analyze,
		Items:      []domain.Item{{"text": text}},
	})
	require.NoError(t, err)

	result := output.First()
	assert.Equal(t, 401, result["words"])
	assert.Equal(t, 3, result["reading_time_minutes"])
	assert.Contains(t, result["output"], "Words: 401")
}
