package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.Execute()

	return out.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{
			name:     "explicit action",
			args:     []string{"run", "base64", "encode", "--set", "text=hello"},
			expected: "aGVsbG8=\n",
		},
		{
			name:     "default action",
			args:     []string{"run", "base64", "-s", "text=hi"},
			expected: "aGk=\n",
		},
		{
			name:     "stdin without trailing newline",
			stdin:    "aGk=\n",
			args:     []string{"run", "base64", "decode", "--stdin", "text"},
			expected: "hi\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "", "run", "no-such-tool")
	assert.ErrorIs(t, err, domain.ErrToolNotFound)

	_, err = execute(t, "", "run", "base64", "rotate")
	assert.ErrorIs(t, err, domain.ErrActionNotFound)

	_, err = execute(t, "", "run", "base64", "encode")
	assert.EqualError(t, err, "Text is required")

	_, err = execute(t, "", "run", "base64", "encode", "--set", "text")
	assert.EqualError(t, err, `invalid --set value "text", expected key=value`)
}

func TestRun_JSON(t *testing.T) {
	out, err := execute(t, "", "run", "base64", "encode", "--set", "text=hi", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"output": "aGk="`)
}

func TestBuildSettings_FileProperty(t *testing.T) {
	action := domain.ToolAction{
		Properties: []domain.ToolProperty{
			{Key: "file", Type: domain.ToolPropertyType_File},
			{Key: "text", Type: domain.ToolPropertyType_Text},
		},
	}

	settings, err := buildSettings(action, runOptions{stdinKey: "file"}, strings.NewReader("hi"))
	require.NoError(t, err)
	assert.Equal(t, domain.Item{"file": "aGk="}, settings)

	settings, err = buildSettings(action, runOptions{stdinKey: "text", sets: []string{"a=b=c"}}, strings.NewReader("line\n"))
	require.NoError(t, err)
	assert.Equal(t, domain.Item{"text": "line", "a": "b=c"}, settings)
}

func TestShowAndList(t *testing.T) {
	out, err := execute(t, "", "show", "base64")
	require.NoError(t, err)
	assert.Contains(t, out, "(base64)")
	assert.Contains(t, out, "Action encode")
	assert.Contains(t, out, "--set text=<text> (required)")

	out, err = execute(t, "", "list", "base64")
	require.NoError(t, err)
	assert.Contains(t, out, "base64")

	_, err = execute(t, "", "list", "--category", "nope")
	assert.Error(t, err)
}

func TestSitemap(t *testing.T) {
	out, err := execute(t, "", "sitemap", "--format", "json", "--base-url", "https://example.com")
	require.NoError(t, err)
	assert.Contains(t, out, `"url": "https://example.com/?tool=base64"`)

	out, err = execute(t, "", "sitemap", "--base-url", "https://example.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<?xml"))

	_, err = execute(t, "", "sitemap", "--format", "yaml")
	assert.EqualError(t, err, `unknown format "yaml", expected xml or json`)
}
