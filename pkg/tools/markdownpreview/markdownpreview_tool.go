package markdownpreview

import (
	"bytes"
	"context"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

type MarkdownPreviewTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewMarkdownPreviewTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &MarkdownPreviewTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_ToHTML, tool.ToHTML)

	return tool
}

func (t *MarkdownPreviewTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type ToHTMLParams struct {
	Markdown  string `json:"markdown"`
	AllowHTML bool   `json:"allow_html"`
	HardWraps bool   `json:"hard_wraps"`
}

func (t *MarkdownPreviewTool) ToHTML(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := ToHTMLParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_ToHTML))
	if err != nil {
		return nil, err
	}

	out, err := Render(p.Markdown, p.AllowHTML, p.HardWraps)
	if err != nil {
		return nil, err
	}

	return domain.Item{
		"output": out,
	}, nil
}

// Render converts GitHub flavored Markdown to HTML. Headings get generated
// ids so the output can be linked into.
func Render(markdown string, allowHTML, hardWraps bool) (string, error) {
	var rendererOptions []renderer.Option
	if allowHTML {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}
	if hardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOptions...),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", domain.NewComputationError(err, "Failed to render Markdown: %s", err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}
