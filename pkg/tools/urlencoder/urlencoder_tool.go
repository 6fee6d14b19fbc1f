package urlencoder

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"golang.org/x/net/idna"
)

type URLEncoderTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewURLEncoderTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &URLEncoderTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Encode, tool.Encode).
		AddPerItem(ToolActionType_Decode, tool.Decode).
		AddPerItem(ToolActionType_Parse, tool.Parse)

	return tool
}

func (t *URLEncoderTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type TextParams struct {
	Text string `json:"text"`
}

type ParseParams struct {
	URL string `json:"url"`
}

type QueryParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (t *URLEncoderTool) Encode(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := TextParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Encode))
	if err != nil {
		return nil, err
	}

	return domain.Item{
		"output": EncodeComponent(p.Text),
	}, nil
}

func (t *URLEncoderTool) Decode(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := TextParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Decode))
	if err != nil {
		return nil, err
	}

	decoded, err := DecodeComponent(p.Text)
	if err != nil {
		return nil, err
	}

	return domain.Item{
		"output": decoded,
	}, nil
}

func (t *URLEncoderTool) Parse(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := ParseParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Parse))
	if err != nil {
		return nil, err
	}

	parsed, err := url.Parse(strings.TrimSpace(p.URL))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, domain.WrapInvalidInput(err, "Invalid URL")
	}

	params, err := queryParams(parsed.RawQuery)
	if err != nil {
		return nil, err
	}

	hostname := parsed.Hostname()
	unicodeHostname, err := idna.ToUnicode(hostname)
	if err != nil {
		unicodeHostname = hostname
	}

	result := domain.Item{
		"protocol":         parsed.Scheme + ":",
		"host":             parsed.Host,
		"hostname":         hostname,
		"unicode_hostname": unicodeHostname,
		"port":             parsed.Port(),
		"pathname":         pathname(parsed),
		"search":           prefixed("?", parsed.RawQuery),
		"hash":             prefixed("#", parsed.EscapedFragment()),
		"params":           params,
	}

	if parsed.User != nil {
		result["username"] = parsed.User.Username()
	}

	return result, nil
}

// EncodeComponent percent-encodes text the way encodeURIComponent does.
func EncodeComponent(text string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}

	return b.String()
}

// DecodeComponent reverses EncodeComponent. '+' is kept as is, and the
// decoded bytes must form valid UTF-8.
func DecodeComponent(text string) (string, error) {
	decoded, err := url.PathUnescape(text)
	if err != nil {
		return "", domain.WrapInvalidInput(err, "Invalid URL encoding")
	}

	if !utf8.ValidString(decoded) {
		return "", domain.NewInvalidInputError("Invalid URL encoding")
	}

	return decoded, nil
}

func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}

	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// queryParams keeps parameters in the order they appear, which url.Values does not.
func queryParams(rawQuery string) ([]QueryParam, error) {
	params := make([]QueryParam, 0)
	if rawQuery == "" {
		return params, nil
	}

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")

		decodedKey, err := url.QueryUnescape(key)
		if err != nil {
			return nil, domain.WrapInvalidInput(err, "Invalid URL encoding")
		}

		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			return nil, domain.WrapInvalidInput(err, "Invalid URL encoding")
		}

		params = append(params, QueryParam{Key: decodedKey, Value: decodedValue})
	}

	return params, nil
}

func pathname(u *url.URL) string {
	path := u.EscapedPath()
	if path == "" {
		return "/"
	}
	return path
}

func prefixed(prefix, value string) string {
	if value == "" {
		return ""
	}
	return prefix + value
}
