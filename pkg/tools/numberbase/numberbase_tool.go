package numberbase

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

type NumberBaseTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewNumberBaseTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &NumberBaseTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Convert, tool.Convert)

	return tool
}

func (t *NumberBaseTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type ConvertParams struct {
	Value string `json:"value"`
	From  int    `json:"from"`
	To    int    `json:"to"`
}

func (t *NumberBaseTool) Convert(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := ConvertParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Convert))
	if err != nil {
		return nil, err
	}

	if p.To == 1 {
		return nil, domain.NewInvalidInputError("Custom Base must be 0 or between 2 and 36")
	}

	n, err := Parse(p.Value, p.From)
	if err != nil {
		return nil, err
	}

	result := domain.Item{
		"binary":      n.Text(2),
		"octal":       n.Text(8),
		"decimal":     n.Text(10),
		"hexadecimal": strings.ToUpper(n.Text(16)),
		"bits":        n.BitLen(),
	}

	lines := []string{
		"Binary: " + n.Text(2),
		"Octal: " + n.Text(8),
		"Decimal: " + n.Text(10),
		"Hexadecimal: " + strings.ToUpper(n.Text(16)),
	}

	if p.To != 0 {
		custom := n.Text(p.To)
		result["custom"] = custom
		lines = append(lines, fmt.Sprintf("Base %d: %s", p.To, custom))
	}

	result["output"] = strings.Join(lines, "\n")

	return result, nil
}

var prefixes = map[int]string{2: "0b", 8: "0o", 16: "0x"}

// Parse reads an arbitrarily large signed integer written in base. The
// conventional prefix of the base is optional and underscores or spaces
// between digits are ignored.
func Parse(value string, base int) (*big.Int, error) {
	s := strings.NewReplacer("_", "", " ", "").Replace(strings.TrimSpace(value))

	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	if prefix, ok := prefixes[base]; ok && len(s) > 2 && strings.EqualFold(s[:2], prefix) {
		s = s[2:]
	}

	invalid := domain.NewInvalidInputError("Invalid number for base %d: %q", base, strings.TrimSpace(value))

	if s == "" || s[0] == '+' || s[0] == '-' {
		return nil, invalid
	}

	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, invalid
	}

	if negative {
		n.Neg(n)
	}

	return n, nil
}
