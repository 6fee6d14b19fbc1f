package idgenerator

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/rs/xid"
)

type XIDTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewXIDTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &XIDTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Generate, tool.Generate).
		AddPerItem(ToolActionType_Inspect, tool.Inspect)

	return tool
}

func (t *XIDTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

func (t *XIDTool) Generate(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := CountParams{}

	err := t.binder.BindToStruct(ctx, item, &p, XIDSchema.Properties(ToolActionType_Generate))
	if err != nil {
		return nil, err
	}

	return generateItems(p.Count, func() (string, error) {
		return xid.New().String(), nil
	})
}

func (t *XIDTool) Inspect(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := InspectParams{}

	err := t.binder.BindToStruct(ctx, item, &p, XIDSchema.Properties(ToolActionType_Inspect))
	if err != nil {
		return nil, err
	}

	id, err := xid.FromString(strings.ToLower(strings.TrimSpace(p.ID)))
	if err != nil {
		return nil, domain.WrapInvalidInput(err, "Invalid XID")
	}

	return domain.Item{
		"output":    id.String(),
		"valid":     true,
		"timestamp": formatTime(id.Time()),
		"machine":   hex.EncodeToString(id.Machine()),
		"pid":       int(id.Pid()),
		"counter":   int(id.Counter()),
	}, nil
}
