package qrcode

import (
	"bytes"
	"context"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/mdp/qrterminal/v3"
)

// Byte capacity of a version 40 symbol per error correction level.
var capacity = map[string]int{
	"L": 2953,
	"M": 2331,
	"H": 1273,
}

type QRCodeTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewQRCodeTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &QRCodeTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Generate, tool.Generate)

	return tool
}

func (t *QRCodeTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type GenerateParams struct {
	Text  string `json:"text"`
	Level string `json:"level"`
}

func (t *QRCodeTool) Generate(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := GenerateParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Generate))
	if err != nil {
		return nil, err
	}

	if limit := capacity[p.Level]; len(p.Text) > limit {
		return nil, domain.NewInvalidInputError("Text is too long for a QR code: %d bytes, at most %d at level %s", len(p.Text), limit, p.Level)
	}

	art := Render(p.Text, p.Level)

	return domain.Item{
		"output": art,
		"level":  p.Level,
		"size":   len(strings.Split(art, "\n")),
	}, nil
}

// Render draws the code with half block characters, two modules per line.
func Render(text, level string) string {
	var buf bytes.Buffer

	config := qrterminal.Config{
		Writer:         &buf,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
		QuietZone:      qrterminal.QUIET_ZONE,
	}

	switch level {
	case "L":
		config.Level = qrterminal.L
	case "H":
		config.Level = qrterminal.H
	default:
		config.Level = qrterminal.M
	}

	qrterminal.GenerateWithConfig(text, config)

	return strings.TrimRight(buf.String(), "\n")
}
