package htmlmarkdown

import (
	"context"
	"strings"

	htmltomd "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

type HTMLMarkdownTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewHTMLMarkdownTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &HTMLMarkdownTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_ToMarkdown, tool.ToMarkdown)

	return tool
}

func (t *HTMLMarkdownTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type ToMarkdownParams struct {
	HTML   string `json:"html"`
	Domain string `json:"domain"`
}

func (t *HTMLMarkdownTool) ToMarkdown(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := ToMarkdownParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_ToMarkdown))
	if err != nil {
		return nil, err
	}

	var opts []converter.ConvertOptionFunc
	if d := strings.TrimSpace(p.Domain); d != "" {
		opts = append(opts, converter.WithDomain(d))
	}

	markdown, err := htmltomd.ConvertString(p.HTML, opts...)
	if err != nil {
		return nil, domain.WrapInvalidInput(err, "Invalid HTML: "+err.Error())
	}

	return domain.Item{
		"output": strings.TrimSpace(markdown),
	}, nil
}
