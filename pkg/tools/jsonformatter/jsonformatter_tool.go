package jsonformatter

import (
	"context"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"
	"github.com/tidwall/pretty"
)

type JSONFormatterTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewJSONFormatterTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &JSONFormatterTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Beautify, tool.Beautify).
		AddPerItem(ToolActionType_Minify, tool.Minify).
		AddPerItem(ToolActionType_Validate, tool.Validate)

	return tool
}

func (t *JSONFormatterTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type BeautifyParams struct {
	JSON     string `json:"json"`
	Indent   string `json:"indent"`
	SortKeys bool   `json:"sort_keys"`
}

type JSONParams struct {
	JSON string `json:"json"`
}

var indents = map[string]string{
	"2":   "  ",
	"4":   "    ",
	"tab": "\t",
}

func (t *JSONFormatterTool) Beautify(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := BeautifyParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Beautify))
	if err != nil {
		return nil, err
	}

	document, err := toolkit.ParseJSON(p.JSON)
	if err != nil {
		return nil, err
	}

	indent, ok := indents[p.Indent]
	if !ok {
		indent = indents["2"]
	}

	return domain.Item{
		"output": toolkit.IndentJSON([]byte(document.Raw), indent, p.SortKeys),
	}, nil
}

func (t *JSONFormatterTool) Minify(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := JSONParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Minify))
	if err != nil {
		return nil, err
	}

	document, err := toolkit.ParseJSON(p.JSON)
	if err != nil {
		return nil, err
	}

	minified := string(pretty.Ugly([]byte(document.Raw)))

	return domain.Item{
		"output":        minified,
		"original_size": len(p.JSON),
		"minified_size": len(minified),
	}, nil
}

func (t *JSONFormatterTool) Validate(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := JSONParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Validate))
	if err != nil {
		return nil, err
	}

	document, err := toolkit.ParseJSON(p.JSON)
	if err != nil {
		return nil, err
	}

	return domain.Item{
		"output": "Valid JSON",
		"valid":  true,
		"type":   toolkit.JSONTypeName(document),
	}, nil
}
