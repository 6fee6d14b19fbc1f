package rot13

import (
	"context"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

type ROT13Tool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewROT13Tool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &ROT13Tool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Apply, tool.Apply).
		AddPerItem(ToolActionType_Caesar, tool.Caesar)

	return tool
}

func (t *ROT13Tool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type ApplyParams struct {
	Text string `json:"text"`
}

type CaesarParams struct {
	Text  string `json:"text"`
	Shift int    `json:"shift"`
}

func (t *ROT13Tool) Apply(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := ApplyParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Apply))
	if err != nil {
		return nil, err
	}

	return domain.Item{
		"output": Rotate(p.Text, 13),
	}, nil
}

func (t *ROT13Tool) Caesar(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := CaesarParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Caesar))
	if err != nil {
		return nil, err
	}

	return domain.Item{
		"output": Rotate(p.Text, p.Shift),
		"shift":  p.Shift,
	}, nil
}

// Rotate shifts ASCII letters by shift places, wrapping within their case.
func Rotate(text string, shift int) string {
	shift = ((shift % 26) + 26) % 26

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return 'a' + (r-'a'+rune(shift))%26
		case r >= 'A' && r <= 'Z':
			return 'A' + (r-'A'+rune(shift))%26
		}
		return r
	}, text)
}
