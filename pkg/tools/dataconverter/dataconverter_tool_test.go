package dataconverter

import (
	"context"
	"testing"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, schema domain.Tool, item domain.Item) (domain.Item, error) {
	t.Helper()

	tool := NewDataConverterTool(schema)(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

	output, err := tool.Execute(context.Background(), domain.ToolInput{
		ToolID:     schema.ID,
		ActionType: ToolActionType_Convert,
		Items:      []domain.Item{item},
	})
	if err != nil {
		return nil, err
	}

	return output.First(), nil
}

func TestDataConverter_DefaultsFollowTheTool(t *testing.T) {
	tests := []struct {
		name     string
		schema   domain.Tool
		input    string
		expected string
	}{
		{
			name:     "json to yaml",
			schema:   JSONToYAMLSchema,
			input:    `{"b":1,"a":"x"}`,
			expected: "b: 1\na: x",
		},
		{
			name:     "yaml to json",
			schema:   YAMLToJSONSchema,
			input:    "b: 1\na: x\n",
			expected: "{\n  \"b\": 1,\n  \"a\": \"x\"\n}",
		},
		{
			name:     "csv to json",
			schema:   CSVToJSONSchema,
			input:    "id\n1\n",
			expected: "[\n  {\n    \"id\": \"1\"\n  }\n]",
		},
		{
			name:     "json to csv",
			schema:   JSONToCSVSchema,
			input:    `[{"id":1},{"id":2}]`,
			expected: "id\n1\n2",
		},
		{
			name:     "toml to json",
			schema:   TOMLToJSONSchema,
			input:    "port = 8080\n",
			expected: "{\n  \"port\": 8080\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := run(t, tt.schema, domain.Item{"input": tt.input})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result["output"])
		})
	}
}

func TestDataConverter_OverrideFormats(t *testing.T) {
	result, err := run(t, JSONToYAMLSchema, domain.Item{"input": "a,b\n1,2\n", "from": "auto", "to": "json"})
	require.NoError(t, err)
	assert.Equal(t, "csv", result["from"])
	assert.Equal(t, 1, result["records"])

	_, err = run(t, JSONToYAMLSchema, domain.Item{"input": "{}", "to": "pdf"})
	assert.EqualError(t, err, "To must be one of: json, yaml, xml, csv, tsv, toml")
}

func TestDataConverter_Errors(t *testing.T) {
	_, err := run(t, JSONToYAMLSchema, domain.Item{})
	assert.EqualError(t, err, "Input is required")

	_, err = run(t, JSONToYAMLSchema, domain.Item{"input": `{"a": }`})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSchemas(t *testing.T) {
	ids := make(map[domain.ToolType]bool)
	for _, schema := range Schemas {
		assert.False(t, ids[schema.ID], schema.ID)
		ids[schema.ID] = true
		assert.Equal(t, domain.Category_Converters, schema.Category)
	}
	assert.Len(t, ids, 9)

	assert.Equal(t, domain.ToolPropertyType_File, ExcelToJSONSchema.Properties(ToolActionType_Convert)[0].Type)
}
