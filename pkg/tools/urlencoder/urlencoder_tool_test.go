package urlencoder

import (
	"context"
	"testing"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, actionType domain.ToolActionType, item domain.Item) (domain.Item, error) {
	t.Helper()

	tool := NewURLEncoderTool(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

	output, err := tool.Execute(context.Background(), domain.ToolInput{
		ActionType: actionType,
		Items:      []domain.Item{item},
	})
	if err != nil {
		return nil, err
	}

	return output.First(), nil
}

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "hello world", expected: "hello%20world"},
		{input: "a+b=c&d", expected: "a%2Bb%3Dc%26d"},
		{input: "-_.!~*'()", expected: "-_.!~*'()"},
		{input: "/path?x#y", expected: "%2Fpath%3Fx%23y"},
		{input: "é✓", expected: "%C3%A9%E2%9C%93"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, EncodeComponent(tt.input))
		})
	}
}

func TestURLEncoder_RoundTrip(t *testing.T) {
	for _, input := range []string{"hello world", "100% sure?", "a+b", "日本語テキスト", "tab\there", "%41"} {
		encoded, err := run(t, ToolActionType_Encode, domain.Item{"text": input})
		require.NoError(t, err)

		decoded, err := run(t, ToolActionType_Decode, domain.Item{"text": encoded["output"]})
		require.NoError(t, err)

		assert.Equal(t, input, decoded["output"])
	}
}

func TestURLEncoder_DecodeKeepsPlus(t *testing.T) {
	result, err := run(t, ToolActionType_Decode, domain.Item{"text": "a+b%20c"})
	require.NoError(t, err)
	assert.Equal(t, "a+b c", result["output"])
}

func TestURLEncoder_DecodeInvalid(t *testing.T) {
	for _, text := range []string{"%", "%zz", "%E0%A4"} {
		_, err := run(t, ToolActionType_Decode, domain.Item{"text": text})
		require.Error(t, err, text)
		assert.EqualError(t, err, "Invalid URL encoding")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestURLEncoder_Parse(t *testing.T) {
	result, err := run(t, ToolActionType_Parse, domain.Item{"url": "https://user@xn--bcher-kva.example:8443/docs/a%20b?q=go+lang&empty=&q=2#section-1"})
	require.NoError(t, err)

	assert.Equal(t, "https:", result["protocol"])
	assert.Equal(t, "xn--bcher-kva.example:8443", result["host"])
	assert.Equal(t, "xn--bcher-kva.example", result["hostname"])
	assert.Equal(t, "bücher.example", result["unicode_hostname"])
	assert.Equal(t, "8443", result["port"])
	assert.Equal(t, "/docs/a%20b", result["pathname"])
	assert.Equal(t, "?q=go+lang&empty=&q=2", result["search"])
	assert.Equal(t, "#section-1", result["hash"])
	assert.Equal(t, "user", result["username"])
	assert.Equal(t, []QueryParam{
		{Key: "q", Value: "go lang"},
		{Key: "empty", Value: ""},
		{Key: "q", Value: "2"},
	}, result["params"])
}

func TestURLEncoder_ParseInvalid(t *testing.T) {
	for _, raw := range []string{"not a url", "/relative/path", "http://[::1"} {
		_, err := run(t, ToolActionType_Parse, domain.Item{"url": raw})
		require.Error(t, err, raw)
		assert.EqualError(t, err, "Invalid URL")
	}
}
