package jsonpath

import (
	"context"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"
)

type JSONPathTool struct {
	binder        domain.ToolParameterBinder
	parser        *FieldPathParser
	actionManager *domain.ToolActionManager
}

func NewJSONPathTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &JSONPathTool{
		binder: deps.ParameterBinder,
		parser: NewFieldPathParser(),
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Query, tool.Query)

	return tool
}

func (t *JSONPathTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type QueryParams struct {
	JSON string `json:"json"`
	Path string `json:"path"`
}

func (t *JSONPathTool) Query(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := QueryParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Query))
	if err != nil {
		return nil, err
	}

	document, err := toolkit.ParseJSON(p.JSON)
	if err != nil {
		return nil, err
	}

	value, found, err := t.parser.GetValue(document, p.Path)
	if err != nil {
		return nil, domain.WrapInvalidInput(err, "Invalid path syntax")
	}

	if !found {
		return nil, domain.NewInvalidInputError("Path not found")
	}

	return domain.Item{
		"output": toolkit.PrettyJSON([]byte(value.Raw)),
		"type":   toolkit.JSONTypeName(value),
	}, nil
}
