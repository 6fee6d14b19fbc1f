package keygenerator

import (
	"context"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type APIKeyTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewAPIKeyTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &APIKeyTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Generate, tool.Generate)

	return tool
}

func (t *APIKeyTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type APIKeyParams struct {
	Length int    `json:"length"`
	Prefix string `json:"prefix"`
	Count  int    `json:"count"`
}

func (t *APIKeyTool) Generate(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := APIKeyParams{}

	err := t.binder.BindToStruct(ctx, item, &p, APIKeySchema.Properties(ToolActionType_Generate))
	if err != nil {
		return nil, err
	}

	return generateItems(p.Count, func() (string, error) {
		body, err := gonanoid.Generate(AlphabetAlphanumeric, p.Length)
		if err != nil {
			return "", err
		}

		return p.Prefix + body, nil
	})
}
