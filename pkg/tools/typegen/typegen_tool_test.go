package typegen

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, newTool domain.ToolCreator, item domain.Item) string {
	t.Helper()

	tool := newTool(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

	output, err := tool.Execute(context.Background(), domain.ToolInput{
		ActionType: ToolActionType_Generate,
		Items:      []domain.Item{item},
	})
	require.NoError(t, err)

	return output.First()["output"].(string)
}

func TestTypeScript(t *testing.T) {
	sample := `{"id": 1, "name": "Ada", "score": 9.5, "active": true, "tags": ["x"], "address": {"city": "London"}, "items": [{"sku": "a"}], "empty": [], "note": null, "first-name": "A"}`

	expected := `export interface Root {
  id: number;
  name: string;
  score: number;
  active: boolean;
  tags: string[];
  address: Address;
  items: ItemsItem[];
  empty: any[];
  note: null;
  "first-name": string;
}

export interface Address {
  city: string;
}

export interface ItemsItem {
  sku: string;
}
`

	assert.Equal(t, expected, generate(t, NewTypeScriptTool, domain.Item{"json": sample}))
}

func TestTypeScript_ArrayRoot(t *testing.T) {
	expected := "export type Payload = PayloadItem[];\n\nexport interface PayloadItem {\n  a: number;\n}\n"

	assert.Equal(t, expected, generate(t, NewTypeScriptTool, domain.Item{"json": `[{"a": 1}, {"b": 2}]`, "root_name": "payload"}))
}

func TestGo(t *testing.T) {
	expected := "type Root struct {\n" +
		"\tID       int    `json:\"id\"`\n" +
		"\tUserName string `json:\"user_name\"`\n" +
		"}\n"

	assert.Equal(t, expected, generate(t, NewGoTool, domain.Item{"json": `{"id": 1, "user_name": "a"}`}))

	nested := generate(t, NewGoTool, domain.Item{"json": `{"price": 1.5, "owner": {"api_url": "x"}, "list": [], "gone": null}`})
	assert.Contains(t, nested, "\tPrice float64 `json:\"price\"`")
	assert.Contains(t, nested, "\tOwner Owner   `json:\"owner\"`")
	assert.Contains(t, nested, "\tList  []any   `json:\"list\"`")
	assert.Contains(t, nested, "\tGone  any     `json:\"gone\"`")
	assert.Contains(t, nested, "type Owner struct {\n\tAPIURL string `json:\"api_url\"`\n}")
}

func TestRust(t *testing.T) {
	expected := `use serde::{Deserialize, Serialize};

#[derive(Debug, Clone, Serialize, Deserialize)]
pub struct Root {
    pub id: i64,
    #[serde(rename = "userName")]
    pub user_name: String,
    pub r#type: String,
    pub tags: Vec<serde_json::Value>,
    pub meta: Option<serde_json::Value>,
}
`

	assert.Equal(t, expected, generate(t, NewRustTool, domain.Item{"json": `{"id": 1, "userName": "a", "type": "x", "tags": [], "meta": null}`}))
}

func TestZod(t *testing.T) {
	expected := `import { z } from "zod";

export const UserSchema = z.object({
  name: z.string(),
});

export const RootSchema = z.object({
  user: UserSchema,
  n: z.number(),
  none: z.null(),
  list: z.array(z.any()),
});

export type Root = z.infer<typeof RootSchema>;
`

	assert.Equal(t, expected, generate(t, NewZodTool, domain.Item{"json": `{"user": {"name": "a"}, "n": 1, "none": null, "list": []}`}))
}

func TestJSONSchema(t *testing.T) {
	out := generate(t, NewJSONSchemaTool, domain.Item{
		"json":      `{"id": 1, "score": 9.5, "tags": ["x"], "address": {"city": "London"}, "note": null}`,
		"root_name": "user",
	})

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))

	assert.Equal(t, "https://json-schema.org/draft/2020-12/schema", schema["$schema"])
	assert.Equal(t, "User", schema["title"])
	assert.Equal(t, "object", schema["type"])
	assert.ElementsMatch(t, []any{"id", "score", "tags", "address", "note"}, schema["required"])

	properties := schema["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "integer"}, properties["id"])
	assert.Equal(t, map[string]any{"type": "number"}, properties["score"])
	assert.Equal(t, map[string]any{"type": "null"}, properties["note"])
	assert.Equal(t, map[string]any{"type": "array", "items": map[string]any{"type": "string"}}, properties["tags"])

	address := properties["address"].(map[string]any)
	assert.Equal(t, []any{"city"}, address["required"])
}

func TestInfer_UniqueNames(t *testing.T) {
	model := Infer(mustParse(t, `{"a": {"node": {"x": 1}}, "b": {"node": {"y": 2}}}`), "Root")

	names := make([]string, 0, len(model.Objects))
	for _, object := range model.Objects {
		names = append(names, object.Name)
	}

	assert.Equal(t, []string{"Root", "A", "Node", "B", "Node2"}, names)
}

func TestGenerate_InvalidJSON(t *testing.T) {
	tool := NewGoTool(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

	_, err := tool.Execute(context.Background(), domain.ToolInput{
		ActionType: ToolActionType_Generate,
		Items:      []domain.Item{{"json": "{nope}"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Invalid JSON: ")
}
