package typegen

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Generate domain.ToolActionType = "generate"
)

var generateProperties = []domain.ToolProperty{
	{
		Key:         "json",
		Name:        "JSON",
		Description: "A sample JSON document; types are inferred from this single sample",
		Required:    true,
		Type:        domain.ToolPropertyType_Text,
	},
	{
		Key:         "root_name",
		Name:        "Root Type Name",
		Description: "Name of the top-level type",
		Type:        domain.ToolPropertyType_String,
		Default:     "Root",
	},
}

func generateAction(target string) []domain.ToolAction {
	return []domain.ToolAction{
		{
			ID:          string(ToolActionType_Generate),
			Name:        "Generate",
			ActionType:  ToolActionType_Generate,
			Description: "Generates " + target + " from the JSON sample",
			Properties:  generateProperties,
		},
	}
}

var (
	TypeScriptSchema = domain.Tool{
		ID:          domain.ToolType_JSONToTypeScript,
		Name:        "JSON to TypeScript",
		Description: "Generate TypeScript interfaces from a JSON sample",
		Category:    domain.Category_JSON,
		Keywords:    []string{"json", "typescript", "ts", "interface", "types", "codegen"},
		Actions:     generateAction("TypeScript interfaces"),
	}

	GoSchema = domain.Tool{
		ID:          domain.ToolType_JSONToGo,
		Name:        "JSON to Go",
		Description: "Generate Go struct definitions with json tags from a JSON sample",
		Category:    domain.Category_JSON,
		Keywords:    []string{"json", "go", "golang", "struct", "types", "codegen"},
		Actions:     generateAction("Go structs"),
	}

	RustSchema = domain.Tool{
		ID:          domain.ToolType_JSONToRust,
		Name:        "JSON to Rust",
		Description: "Generate serde-annotated Rust structs from a JSON sample",
		Category:    domain.Category_JSON,
		Keywords:    []string{"json", "rust", "serde", "struct", "types", "codegen"},
		Actions:     generateAction("Rust structs"),
	}

	ZodSchema = domain.Tool{
		ID:          domain.ToolType_JSONToZod,
		Name:        "JSON to Zod",
		Description: "Generate Zod validation schemas from a JSON sample",
		Category:    domain.Category_JSON,
		Keywords:    []string{"json", "zod", "schema", "typescript", "validation", "codegen"},
		Actions:     generateAction("Zod schemas"),
	}

	JSONSchemaSchema = domain.Tool{
		ID:          domain.ToolType_JSONToJSONSchema,
		Name:        "JSON to JSON Schema",
		Description: "Infer a JSON Schema (draft 2020-12) from a JSON sample",
		Category:    domain.Category_JSON,
		Keywords:    []string{"json", "schema", "jsonschema", "infer", "validation", "codegen"},
		Actions:     generateAction("a JSON Schema"),
	}
)
