package base64

import (
	"context"
	"encoding/base64"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

type Base64Tool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewBase64Tool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &Base64Tool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Encode, tool.Encode).
		AddPerItem(ToolActionType_Decode, tool.Decode)

	return tool
}

func (t *Base64Tool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type Base64Params struct {
	Text    string `json:"text"`
	URLSafe bool   `json:"url_safe"`
}

func (t *Base64Tool) Encode(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := Base64Params{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Encode))
	if err != nil {
		return nil, err
	}

	return domain.Item{
		"output": Encode([]byte(p.Text), p.URLSafe),
	}, nil
}

func (t *Base64Tool) Decode(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := Base64Params{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Decode))
	if err != nil {
		return nil, err
	}

	decoded, err := Decode(p.Text, p.URLSafe)
	if err != nil {
		return nil, err
	}

	return domain.Item{
		"output":     string(decoded),
		"valid_utf8": utf8.Valid(decoded),
		"bytes":      len(decoded),
	}, nil
}

func Encode(data []byte, urlSafe bool) string {
	if urlSafe {
		return base64.URLEncoding.EncodeToString(data)
	}

	return base64.StdEncoding.EncodeToString(data)
}

// Decode accepts padded and unpadded input and ignores whitespace, so text
// pasted across several lines still decodes.
func Decode(text string, urlSafe bool) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	encoding := base64.StdEncoding
	if urlSafe {
		encoding = base64.URLEncoding
	}

	if !strings.HasSuffix(cleaned, "=") && len(cleaned)%4 != 0 {
		encoding = encoding.WithPadding(base64.NoPadding)
	}

	decoded, err := encoding.Strict().DecodeString(cleaned)
	if err != nil {
		return nil, domain.WrapInvalidInput(err, "Invalid Base64 input")
	}

	return decoded, nil
}
