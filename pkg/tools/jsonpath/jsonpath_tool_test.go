package jsonpath

import (
	"context"
	"testing"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `{
	"store": {
		"name": "Books & Co",
		"books": [
			{"title": "Go in Action", "price": 30},
			{"title": "The Go Programming Language", "price": 45, "tags": ["go", "classic"]}
		],
		"open?": true
	}
}`

func query(t *testing.T, json, path string) (domain.Item, error) {
	t.Helper()

	tool := NewJSONPathTool(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

	output, err := tool.Execute(context.Background(), domain.ToolInput{
		ToolID:     Schema.ID,
		ActionType: ToolActionType_Query,
		Items:      []domain.Item{{"json": json, "path": path}},
	})
	if err != nil {
		return nil, err
	}

	return output.First(), nil
}

func TestJSONPath_Query(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
		typ      string
	}{
		{name: "rooted path", path: "$.store.name", expected: `"Books & Co"`, typ: "string"},
		{name: "unrooted path", path: "store.books[0].price", expected: `30`, typ: "number"},
		{name: "nested index", path: "$.store.books[1].tags[1]", expected: `"classic"`, typ: "string"},
		{name: "punctuation in key", path: "store.open?", expected: `true`, typ: "boolean"},
		{name: "object result", path: "$.store.books[0]", expected: "{\n  \"title\": \"Go in Action\",\n  \"price\": 30\n}", typ: "object"},
		{name: "root", path: "$", typ: "object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := query(t, document, tt.path)
			require.NoError(t, err)

			if tt.expected != "" {
				assert.Equal(t, tt.expected, result["output"])
			}
			assert.Equal(t, tt.typ, result["type"])
		})
	}
}

func TestJSONPath_LeadingIndex(t *testing.T) {
	result, err := query(t, `[{"name": "a"}, {"name": "b"}]`, "[1].name")
	require.NoError(t, err)
	assert.Equal(t, `"b"`, result["output"])

	result, err = query(t, `[[1, 2], [3, 4]]`, "$[1][0]")
	require.NoError(t, err)
	assert.Equal(t, `3`, result["output"])
}

func TestJSONPath_DuplicateKeys(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		path     string
		expected string
	}{
		{name: "last value wins", json: `{"a": 1, "a": 2}`, path: "a", expected: `2`},
		{name: "nested duplicate", json: `{"a": {"b": 1}, "a": {"b": 3}}`, path: "$.a.b", expected: `3`},
		{name: "duplicate before index", json: `{"xs": [1], "xs": [5, 6]}`, path: "xs[1]", expected: `6`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := query(t, tt.json, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result["output"])
		})
	}
}

func TestJSONPath_Errors(t *testing.T) {
	tests := []struct {
		name   string
		json   string
		path   string
		errMsg string
	}{
		{name: "missing key", json: document, path: "$.store.owner", errMsg: "Path not found"},
		{name: "missing intermediate", json: document, path: "$.warehouse.books[0]", errMsg: "Path not found"},
		{name: "index out of range", json: document, path: "$.store.books[5]", errMsg: "Path not found"},
		{name: "index on object", json: document, path: "$.store[0]", errMsg: "Path not found"},
		{name: "field on array", json: document, path: "$.store.books.title", errMsg: "Path not found"},
		{name: "wildcard", json: document, path: "$.store.books[*]", errMsg: "Invalid path syntax"},
		{name: "negative index", json: document, path: "$.store.books[-1]", errMsg: "Invalid path syntax"},
		{name: "empty segment", json: document, path: "$.store..name", errMsg: "Invalid path syntax"},
		{name: "trailing dot", json: document, path: "$.", errMsg: "Invalid path syntax"},
		{name: "unclosed bracket", json: document, path: "store.books[0", errMsg: "Invalid path syntax"},
		{name: "filter expression", json: document, path: "$.store.books[?(@.price>10)]", errMsg: "Invalid path syntax"},
		{name: "invalid json", json: `{"a":`, path: "a", errMsg: "Invalid JSON: unexpected end of JSON input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := query(t, tt.json, tt.path)
			require.Error(t, err)
			assert.Equal(t, tt.errMsg, err.Error())
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
