package markdownpreview

import (
	"context"
	"testing"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, item domain.Item) (string, error) {
	t.Helper()

	tool := NewMarkdownPreviewTool(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

	output, err := tool.Execute(context.Background(), domain.ToolInput{
		ToolID:     Schema.ID,
		ActionType: ToolActionType_ToHTML,
		Items:      []domain.Item{item},
	})
	if err != nil {
		return "", err
	}

	return output.First()["output"].(string), nil
}

func TestMarkdownPreview_Basic(t *testing.T) {
	out, err := render(t, domain.Item{"markdown": "# Hello\n\nSome **bold** text"})
	require.NoError(t, err)
	assert.Equal(t, "<h1 id=\"hello\">Hello</h1>\n<p>Some <strong>bold</strong> text</p>", out)
}

func TestMarkdownPreview_GFM(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		contains string
	}{
		{name: "table", markdown: "| a | b |\n|---|---|\n| 1 | 2 |", contains: "<table>"},
		{name: "strikethrough", markdown: "~~gone~~", contains: "<del>gone</del>"},
		{name: "task list", markdown: "- [x] done", contains: `type="checkbox"`},
		{name: "autolink", markdown: "see https://example.com", contains: `<a href="https://example.com">`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := render(t, domain.Item{"markdown": tt.markdown})
			require.NoError(t, err)
			assert.Contains(t, out, tt.contains)
		})
	}
}

func TestMarkdownPreview_RawHTML(t *testing.T) {
	out, err := render(t, domain.Item{"markdown": "<div>raw</div>"})
	require.NoError(t, err)
	assert.NotContains(t, out, "<div>")

	out, err = render(t, domain.Item{"markdown": "<div>raw</div>", "allow_html": true})
	require.NoError(t, err)
	assert.Equal(t, "<div>raw</div>", out)
}

func TestMarkdownPreview_HardWraps(t *testing.T) {
	out, err := render(t, domain.Item{"markdown": "one\ntwo", "hard_wraps": true})
	require.NoError(t, err)
	assert.Contains(t, out, "<br>")
}

func TestMarkdownPreview_Required(t *testing.T) {
	_, err := render(t, domain.Item{})
	assert.EqualError(t, err, "Markdown is required")
}
