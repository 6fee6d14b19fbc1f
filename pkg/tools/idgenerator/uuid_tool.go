package idgenerator

import (
	"context"
	"strings"
	"time"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/google/uuid"
)

type UUIDTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewUUIDTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &UUIDTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Generate, tool.Generate).
		AddPerItem(ToolActionType_Inspect, tool.Inspect)

	return tool
}

func (t *UUIDTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type UUIDParams struct {
	Version   string `json:"version"`
	Count     int    `json:"count"`
	Uppercase bool   `json:"uppercase"`
	Hyphens   bool   `json:"hyphens"`
}

func (t *UUIDTool) Generate(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := UUIDParams{}

	err := t.binder.BindToStruct(ctx, item, &p, UUIDSchema.Properties(ToolActionType_Generate))
	if err != nil {
		return nil, err
	}

	newUUID := uuid.NewRandom
	if p.Version == "7" {
		newUUID = uuid.NewV7
	}

	result, err := generateItems(p.Count, func() (string, error) {
		id, err := newUUID()
		if err != nil {
			return "", err
		}

		return FormatUUID(id, p.Uppercase, p.Hyphens), nil
	})
	if err != nil {
		return nil, err
	}

	result["version"] = p.Version

	return result, nil
}

func (t *UUIDTool) Inspect(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := InspectParams{}

	err := t.binder.BindToStruct(ctx, item, &p, UUIDSchema.Properties(ToolActionType_Inspect))
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(strings.TrimSpace(p.ID))
	if err != nil {
		return nil, domain.WrapInvalidInput(err, "Invalid UUID")
	}

	version := int(id.Version())

	result := domain.Item{
		"output":  id.String(),
		"valid":   true,
		"version": version,
		"variant": id.Variant().String(),
	}

	switch version {
	case 1, 6, 7:
		sec, nsec := id.Time().UnixTime()
		result["timestamp"] = formatTime(time.Unix(sec, nsec))
	}

	return result, nil
}

// FormatUUID renders id in lower or upper case, with or without the group hyphens.
func FormatUUID(id uuid.UUID, uppercase, hyphens bool) string {
	s := id.String()
	if !hyphens {
		s = strings.ReplaceAll(s, "-", "")
	}
	if uppercase {
		s = strings.ToUpper(s)
	}
	return s
}
