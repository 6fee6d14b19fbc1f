package idgenerator

import (
	"context"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/oklog/ulid/v2"
)

type ULIDTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewULIDTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &ULIDTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Generate, tool.Generate).
		AddPerItem(ToolActionType_Inspect, tool.Inspect)

	return tool
}

func (t *ULIDTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

func (t *ULIDTool) Generate(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := CountParams{}

	err := t.binder.BindToStruct(ctx, item, &p, ULIDSchema.Properties(ToolActionType_Generate))
	if err != nil {
		return nil, err
	}

	// ulid.Make is monotonic within a millisecond, so a batch sorts in generation order.
	return generateItems(p.Count, func() (string, error) {
		return ulid.Make().String(), nil
	})
}

func (t *ULIDTool) Inspect(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := InspectParams{}

	err := t.binder.BindToStruct(ctx, item, &p, ULIDSchema.Properties(ToolActionType_Inspect))
	if err != nil {
		return nil, err
	}

	id, err := ulid.ParseStrict(strings.ToUpper(strings.TrimSpace(p.ID)))
	if err != nil {
		return nil, domain.WrapInvalidInput(err, "Invalid ULID")
	}

	return domain.Item{
		"output":       id.String(),
		"valid":        true,
		"timestamp":    formatTime(id.Timestamp()),
		"timestamp_ms": id.Time(),
	}, nil
}
