package caseconverter

import (
	"context"
	"testing"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, item domain.Item) domain.Item {
	t.Helper()

	tool := NewCaseConverterTool(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

	output, err := tool.Execute(context.Background(), domain.ToolInput{
		ActionType: ToolActionType_Convert,
		Items:      []domain.Item{item},
	})
	require.NoError(t, err)

	return output.First()
}

func TestCaseConverter_HelloWorld(t *testing.T) {
	result := run(t, domain.Item{"text": "hello world"})

	assert.Equal(t, "helloWorld", result["camel"])
	assert.Equal(t, "HelloWorld", result["pascal"])
	assert.Equal(t, "hello_world", result["snake"])
	assert.Equal(t, "hello-world", result["kebab"])
	assert.Equal(t, "HELLO_WORLD", result["constant"])
	assert.Equal(t, "Hello World", result["title"])
	assert.Equal(t, "hello world", result["lower"])
	assert.Equal(t, "HELLO WORLD", result["upper"])
	assert.Contains(t, result["output"], "camelCase: helloWorld\n")
}

func TestCaseConverter_SingleTarget(t *testing.T) {
	tests := []struct {
		text     string
		to       string
		expected string
	}{
		{text: "parseHTTPResponse", to: "snake", expected: "parse_http_response"},
		{text: "user_id", to: "pascal", expected: "UserId"},
		{text: "Some Title-Text", to: "kebab", expected: "some-title-text"},
		{text: "max retries", to: "constant", expected: "MAX_RETRIES"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, run(t, domain.Item{"text": tt.text, "to": tt.to})["output"])
		})
	}
}
