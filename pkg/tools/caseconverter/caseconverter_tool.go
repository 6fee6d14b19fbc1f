package caseconverter

import (
	"context"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"
)

type conversion struct {
	key     string
	label   string
	convert func(string) string
}

var conversions = []conversion{
	{key: "camel", label: "camelCase", convert: toolkit.CamelCase},
	{key: "pascal", label: "PascalCase", convert: toolkit.PascalCase},
	{key: "snake", label: "snake_case", convert: toolkit.SnakeCase},
	{key: "kebab", label: "kebab-case", convert: toolkit.KebabCase},
	{key: "constant", label: "CONSTANT_CASE", convert: toolkit.ConstantCase},
	{key: "title", label: "Title Case", convert: toolkit.TitleCase},
	{key: "lower", label: "lower case", convert: strings.ToLower},
	{key: "upper", label: "UPPER CASE", convert: strings.ToUpper},
}

type CaseConverterTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewCaseConverterTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &CaseConverterTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Convert, tool.Convert)

	return tool
}

func (t *CaseConverterTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type ConvertParams struct {
	Text string `json:"text"`
	To   string `json:"to"`
}

func (t *CaseConverterTool) Convert(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := ConvertParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Convert))
	if err != nil {
		return nil, err
	}

	result := domain.Item{}
	lines := make([]string, 0, len(conversions))

	for _, c := range conversions {
		converted := c.convert(p.Text)

		result[c.key] = converted
		lines = append(lines, c.label+": "+converted)

		if c.key == p.To {
			result["output"] = converted
		}
	}

	if _, ok := result["output"]; !ok {
		result["output"] = strings.Join(lines, "\n")
	}

	return result, nil
}
