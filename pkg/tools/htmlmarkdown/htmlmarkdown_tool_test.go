package htmlmarkdown

import (
	"context"
	"testing"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func convert(t *testing.T, item domain.Item) (string, error) {
	t.Helper()

	tool := NewHTMLMarkdownTool(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

	output, err := tool.Execute(context.Background(), domain.ToolInput{
		ToolID:     Schema.ID,
		ActionType: ToolActionType_ToMarkdown,
		Items:      []domain.Item{item},
	})
	if err != nil {
		return "", err
	}

	return output.First()["output"].(string), nil
}

func TestHTMLMarkdown_Convert(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{name: "heading and emphasis", html: "<h1>Title</h1><p>Hello <strong>world</strong></p>", expected: "# Title\n\nHello **world**"},
		{name: "list", html: "<ul><li>one</li><li>two</li></ul>", expected: "- one\n- two"},
		{name: "link", html: `<a href="https://example.com">site</a>`, expected: "[site](https://example.com)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := convert(t, domain.Item{"html": tt.html})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestHTMLMarkdown_Domain(t *testing.T) {
	out, err := convert(t, domain.Item{"html": `<a href="/docs">docs</a>`, "domain": "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, "[docs](https://example.com/docs)", out)
}

func TestHTMLMarkdown_Required(t *testing.T) {
	_, err := convert(t, domain.Item{"html": ""})
	assert.EqualError(t, err, "HTML is required")
}
