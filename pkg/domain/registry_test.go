package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoExecutor struct{}

func (echoExecutor) Execute(ctx context.Context, input ToolInput) (ToolOutput, error) {
	return ToolOutput{Items: input.Items}, nil
}

func testTool(id ToolType, name string, category Category, keywords ...string) Tool {
	return Tool{
		ID:          id,
		Name:        name,
		Description: name + " utility",
		Category:    category,
		Keywords:    keywords,
		Actions: []ToolAction{
			{ID: "run", ActionType: "run", Name: "Run"},
		},
	}
}

func newTestRegistry(t *testing.T) ToolRegistry {
	t.Helper()

	registry := NewToolRegistry()
	require.NoError(t, registry.Register(testTool("base64", "Base64 Encoder", Category_Encoding, "encode", "decode"), echoExecutor{}))
	require.NoError(t, registry.Register(testTool("json-formatter", "JSON Formatter", Category_JSON, "pretty", "beautify"), echoExecutor{}))
	require.NoError(t, registry.Register(testTool("uuid-generator", "UUID Generator", Category_Generators, "guid"), echoExecutor{}))

	return registry
}

func toolIDs(tools []Tool) []ToolType {
	ids := make([]ToolType, 0, len(tools))
	for _, tool := range tools {
		ids = append(ids, tool.ID)
	}
	return ids
}

func TestToolRegistry_Lookup(t *testing.T) {
	registry := newTestRegistry(t)

	tool, err := registry.Lookup("json-formatter")
	require.NoError(t, err)
	assert.Equal(t, "JSON Formatter", tool.Name)

	_, err = registry.Lookup("does-not-exist")
	assert.True(t, errors.Is(err, ErrToolNotFound))

	_, err = registry.Select(context.Background(), SelectToolParams{ToolType: "does-not-exist"})
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestToolRegistry_Register(t *testing.T) {
	tests := []struct {
		name    string
		tool    Tool
		wantErr error
	}{
		{
			name:    "duplicate id",
			tool:    testTool("base64", "Other", Category_Encoding),
			wantErr: ErrDuplicateTool,
		},
		{
			name: "id not kebab case",
			tool: testTool("Base_64", "Other", Category_Encoding),
		},
		{
			name: "pseudo category",
			tool: testTool("other-tool", "Other", Category_All),
		},
		{
			name: "unknown category",
			tool: testTool("other-tool", "Other", "weather"),
		},
		{
			name: "no actions",
			tool: Tool{ID: "other-tool", Name: "Other", Category: Category_Text},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := newTestRegistry(t)

			err := registry.Register(tt.tool, echoExecutor{})
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			assert.Len(t, registry.Tools(), 3)
		})
	}
}

func TestToolRegistry_Filter(t *testing.T) {
	registry := newTestRegistry(t)

	tests := []struct {
		name     string
		query    string
		category Category
		expected []ToolType
	}{
		{
			name:     "empty query returns all in registration order",
			expected: []ToolType{"base64", "json-formatter", "uuid-generator"},
		},
		{
			name:     "case insensitive name match",
			query:    "json",
			expected: []ToolType{"json-formatter"},
		},
		{
			name:     "upper case query",
			query:    "UUID",
			expected: []ToolType{"uuid-generator"},
		},
		{
			name:     "keyword match",
			query:    "Beautify",
			expected: []ToolType{"json-formatter"},
		},
		{
			name:     "description match",
			query:    "utility",
			expected: []ToolType{"base64", "json-formatter", "uuid-generator"},
		},
		{
			name:     "category only",
			category: Category_Generators,
			expected: []ToolType{"uuid-generator"},
		},
		{
			name:     "all category",
			category: Category_All,
			expected: []ToolType{"base64", "json-formatter", "uuid-generator"},
		},
		{
			name:     "query and category",
			query:    "encode",
			category: Category_JSON,
			expected: []ToolType{},
		},
		{
			name:     "no match",
			query:    "kubernetes",
			expected: []ToolType{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toolIDs(registry.Filter(tt.query, tt.category)))
		})
	}

	assert.Equal(t, []ToolType{"json-formatter"}, toolIDs(registry.Search("PRETTY")))
	assert.Equal(t, []ToolType{"base64"}, toolIDs(registry.FilterByCategory(Category_Encoding)))
}

func TestToolRegistry_CategoryCounts(t *testing.T) {
	registry := newTestRegistry(t)

	counts := registry.CategoryCounts()
	require.Len(t, counts, len(Categories)+1)

	assert.Equal(t, Category_All, counts[0].ID)
	assert.Equal(t, 3, counts[0].Count)

	byCategory := make(map[Category]int)
	for _, count := range counts {
		byCategory[count.ID] = count.Count
	}

	assert.Equal(t, 1, byCategory[Category_JSON])
	assert.Equal(t, 1, byCategory[Category_Encoding])
	assert.Equal(t, 0, byCategory[Category_Image])
}
