package typegen

import (
	"context"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"
)

type Language interface {
	Render(model Model) string
}

type TypeGenTool struct {
	schema        domain.Tool
	language      Language
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func newTypeGenTool(deps domain.ToolDeps, schema domain.Tool, language Language) domain.ToolExecutor {
	tool := &TypeGenTool{
		schema:   schema,
		language: language,
		binder:   deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Generate, tool.Generate)

	return tool
}

func NewTypeScriptTool(deps domain.ToolDeps) domain.ToolExecutor {
	return newTypeGenTool(deps, TypeScriptSchema, TypeScript{})
}

func NewGoTool(deps domain.ToolDeps) domain.ToolExecutor {
	return newTypeGenTool(deps, GoSchema, Go{})
}

func NewRustTool(deps domain.ToolDeps) domain.ToolExecutor {
	return newTypeGenTool(deps, RustSchema, Rust{})
}

func NewZodTool(deps domain.ToolDeps) domain.ToolExecutor {
	return newTypeGenTool(deps, ZodSchema, Zod{})
}

func NewJSONSchemaTool(deps domain.ToolDeps) domain.ToolExecutor {
	return newTypeGenTool(deps, JSONSchemaSchema, JSONSchema{})
}

func (t *TypeGenTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type GenerateParams struct {
	JSON     string `json:"json"`
	RootName string `json:"root_name"`
}

func (t *TypeGenTool) Generate(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := GenerateParams{}

	err := t.binder.BindToStruct(ctx, item, &p, t.schema.Properties(ToolActionType_Generate))
	if err != nil {
		return nil, err
	}

	document, err := toolkit.ParseJSON(p.JSON)
	if err != nil {
		return nil, err
	}

	rootName := TypeName(p.RootName)
	if p.RootName == "" {
		rootName = "Root"
	}

	model := Infer(document, rootName)

	return domain.Item{
		"output": t.language.Render(model),
		"types":  len(model.Objects),
	}, nil
}
