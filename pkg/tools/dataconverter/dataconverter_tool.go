package dataconverter

import (
	"context"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/dataconverter/formats"
)

type DataConverterTool struct {
	schema        domain.Tool
	binder        domain.ToolParameterBinder
	registry      *formats.Registry
	actionManager *domain.ToolActionManager
}

// NewDataConverterTool returns the creator of the converter described by schema.
func NewDataConverterTool(schema domain.Tool) domain.ToolCreator {
	return func(deps domain.ToolDeps) domain.ToolExecutor {
		tool := &DataConverterTool{
			schema:   schema,
			binder:   deps.ParameterBinder,
			registry: formats.NewDefaultRegistry(),
		}

		tool.actionManager = domain.NewToolActionManager().
			AddPerItem(ToolActionType_Convert, tool.Convert)

		return tool
	}
}

func (t *DataConverterTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type ConvertParams struct {
	Input string `json:"input"`
	Sheet string `json:"sheet"`
	From  string `json:"from"`
	To    string `json:"to"`
}

func (t *DataConverterTool) Convert(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := ConvertParams{}

	err := t.binder.BindToStruct(ctx, item, &p, t.schema.Properties(ToolActionType_Convert))
	if err != nil {
		return nil, err
	}

	document, detected, err := t.registry.Parse(p.Input, formats.Format(p.From), formats.ParseOptions{Sheet: p.Sheet})
	if err != nil {
		return nil, err
	}

	output, err := t.registry.Encode(document, formats.Format(p.To))
	if err != nil {
		return nil, err
	}

	result := domain.Item{
		"output": output,
		"from":   string(detected),
		"to":     p.To,
	}

	if records, ok := document.([]any); ok {
		result["records"] = len(records)
	}

	return result, nil
}
