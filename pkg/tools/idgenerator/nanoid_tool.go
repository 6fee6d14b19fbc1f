package idgenerator

import (
	"context"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type NanoIDTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewNanoIDTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &NanoIDTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Generate, tool.Generate)

	return tool
}

func (t *NanoIDTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type NanoIDParams struct {
	Size     int    `json:"size"`
	Alphabet string `json:"alphabet"`
	Count    int    `json:"count"`
}

func (t *NanoIDTool) Generate(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := NanoIDParams{}

	err := t.binder.BindToStruct(ctx, item, &p, NanoIDSchema.Properties(ToolActionType_Generate))
	if err != nil {
		return nil, err
	}

	if p.Alphabet == "" {
		p.Alphabet = DefaultNanoIDAlphabet
	}

	if len(p.Alphabet) > 255 {
		return nil, domain.NewInvalidInputError("Alphabet must not be longer than 255 bytes")
	}

	result, err := generateItems(p.Count, func() (string, error) {
		return gonanoid.Generate(p.Alphabet, p.Size)
	})
	if err != nil {
		return nil, err
	}

	result["size"] = p.Size

	return result, nil
}
