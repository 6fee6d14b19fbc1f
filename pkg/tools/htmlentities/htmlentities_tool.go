package htmlentities

import (
	"context"
	"fmt"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"golang.org/x/net/html"
)

type HTMLEntitiesTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewHTMLEntitiesTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &HTMLEntitiesTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Encode, tool.Encode).
		AddPerItem(ToolActionType_Decode, tool.Decode)

	return tool
}

func (t *HTMLEntitiesTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type EncodeParams struct {
	Text           string `json:"text"`
	EncodeNonASCII bool   `json:"encode_non_ascii"`
}

type DecodeParams struct {
	Text string `json:"text"`
}

func (t *HTMLEntitiesTool) Encode(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := EncodeParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Encode))
	if err != nil {
		return nil, err
	}

	escaped := html.EscapeString(p.Text)
	if p.EncodeNonASCII {
		escaped = encodeNonASCII(escaped)
	}

	return domain.Item{
		"output": escaped,
	}, nil
}

func (t *HTMLEntitiesTool) Decode(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := DecodeParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Decode))
	if err != nil {
		return nil, err
	}

	return domain.Item{
		"output": html.UnescapeString(p.Text),
	}, nil
}

func encodeNonASCII(text string) string {
	var b strings.Builder

	for _, r := range text {
		if r < 0x80 {
			b.WriteRune(r)
			continue
		}

		fmt.Fprintf(&b, "&#x%X;", r)
	}

	return b.String()
}
