package stringescape

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

type StringEscapeTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewStringEscapeTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &StringEscapeTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Escape, tool.Escape).
		AddPerItem(ToolActionType_Unescape, tool.Unescape)

	return tool
}

func (t *StringEscapeTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type EscapeParams struct {
	Text   string `json:"text"`
	Format string `json:"format"`
	Quotes bool   `json:"quotes"`
}

type UnescapeParams struct {
	Text   string `json:"text"`
	Format string `json:"format"`
}

func (t *StringEscapeTool) Escape(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := EscapeParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Escape))
	if err != nil {
		return nil, err
	}

	quoted, err := quote(p.Text, p.Format)
	if err != nil {
		return nil, err
	}

	if !p.Quotes {
		quoted = quoted[1 : len(quoted)-1]
	}

	return domain.Item{
		"output": quoted,
	}, nil
}

func (t *StringEscapeTool) Unescape(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := UnescapeParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Unescape))
	if err != nil {
		return nil, err
	}

	unquoted, err := unquote(p.Text, p.Format)
	if err != nil {
		return nil, err
	}

	return domain.Item{
		"output": unquoted,
	}, nil
}

func quote(text string, format string) (string, error) {
	switch format {
	case "go":
		return strconv.Quote(text), nil
	case "sql":
		return "'" + strings.ReplaceAll(text, "'", "''") + "'", nil
	}

	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(text); err != nil {
		return "", domain.NewComputationError(err, "Failed to escape text: %s", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func unquote(text string, format string) (string, error) {
	switch format {
	case "go":
		if !isQuoted(text, '"') && !isQuoted(text, '`') {
			text = `"` + text + `"`
		}

		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return "", domain.WrapInvalidInput(err, "Invalid escape sequence")
		}
		return unquoted, nil
	case "sql":
		if isQuoted(text, '\'') {
			text = text[1 : len(text)-1]
		}
		return strings.ReplaceAll(text, "''", "'"), nil
	}

	if !isQuoted(text, '"') {
		text = `"` + text + `"`
	}

	var unquoted string
	if err := json.Unmarshal([]byte(text), &unquoted); err != nil {
		return "", domain.WrapInvalidInput(err, "Invalid escape sequence")
	}

	return unquoted, nil
}

func isQuoted(text string, q byte) bool {
	return len(text) >= 2 && text[0] == q && text[len(text)-1] == q
}
