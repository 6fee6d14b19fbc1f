package jq

import (
	"context"
	"errors"
	"fmt"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"
)

const unsupportedFilterMessage = "Unsupported filter: only dot paths and bracket indexes are supported"

type JQTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewJQTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &JQTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Query, tool.Query)

	return tool
}

func (t *JQTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type QueryParams struct {
	JSON   string `json:"json"`
	Filter string `json:"filter"`
}

func (t *JQTool) Query(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := QueryParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Query))
	if err != nil {
		return nil, err
	}

	document, err := toolkit.ParseJSON(p.JSON)
	if err != nil {
		return nil, err
	}

	steps, err := CompileFilter(p.Filter)
	if err != nil {
		if errors.Is(err, ErrUnsupportedFilter) {
			return nil, domain.WrapInvalidInput(err, unsupportedFilterMessage)
		}

		return nil, domain.WrapInvalidInput(err, fmt.Sprintf("Invalid filter: %s", err))
	}

	value, found := Apply(document, steps)
	if !found {
		return nil, domain.NewInvalidInputError("Path not found")
	}

	return domain.Item{
		"output": toolkit.PrettyJSON([]byte(value.Raw)),
		"type":   toolkit.JSONTypeName(value),
	}, nil
}
