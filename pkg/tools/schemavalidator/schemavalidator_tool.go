package schemavalidator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"
)

const schemaURL = "schema.json"

var drafts = map[string]*jsonschema.Draft{
	"2020-12": jsonschema.Draft2020,
	"2019-09": jsonschema.Draft2019,
	"7":       jsonschema.Draft7,
	"6":       jsonschema.Draft6,
	"4":       jsonschema.Draft4,
}

type SchemaValidatorTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewSchemaValidatorTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &SchemaValidatorTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Validate, tool.Validate)

	return tool
}

func (t *SchemaValidatorTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type ValidateParams struct {
	JSON         string `json:"json"`
	Schema       string `json:"schema"`
	Draft        string `json:"draft"`
	AssertFormat bool   `json:"assert_format"`
}

// Violation is one leaf failure of a validation run.
type Violation struct {
	InstanceLocation string `json:"instance_location"`
	KeywordLocation  string `json:"keyword_location"`
	Message          string `json:"message"`
}

func (t *SchemaValidatorTool) Validate(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := ValidateParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Validate))
	if err != nil {
		return nil, err
	}

	compiled, err := compileSchema(p.Schema, p.Draft, p.AssertFormat)
	if err != nil {
		return nil, err
	}

	document, err := toolkit.DecodeJSON(p.JSON)
	if err != nil {
		return nil, err
	}

	violations := make([]Violation, 0)

	err = compiled.Validate(document)

	var validationErr *jsonschema.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &validationErr):
		violations = collectViolations(validationErr, violations)
	default:
		return nil, domain.NewComputationError(err, "Validation failed: %s", err)
	}

	output := "Document is valid"
	if len(violations) > 0 {
		output = fmt.Sprintf("Document is invalid: %d error(s)", len(violations))
	}

	return domain.Item{
		"output": output,
		"valid":  len(violations) == 0,
		"errors": violations,
	}, nil
}

func compileSchema(source string, draft string, assertFormat bool) (*jsonschema.Schema, error) {
	if _, err := toolkit.ParseJSON(source); err != nil {
		return nil, domain.NewInvalidInputError("Invalid schema: %s", strings.TrimPrefix(err.Error(), "Invalid JSON: "))
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = assertFormat

	if d, ok := drafts[draft]; ok {
		compiler.Draft = d
	}

	if !assertFormat && formatIsAnnotation(source, draft) {
		if compiler.Formats == nil {
			compiler.Formats = make(map[string]func(any) bool)
		}
		for name := range jsonschema.Formats {
			compiler.Formats[name] = func(any) bool { return true }
		}
	}

	if err := compiler.AddResource(schemaURL, strings.NewReader(source)); err != nil {
		return nil, domain.WrapInvalidInput(err, fmt.Sprintf("Invalid schema: %s", err))
	}

	compiled, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, domain.WrapInvalidInput(err, fmt.Sprintf("Invalid schema: %s", err))
	}

	return compiled, nil
}

// formatIsAnnotation reports whether the effective draft treats "format" as an
// annotation. Drafts before 2019-09 always assert it.
func formatIsAnnotation(source string, draft string) bool {
	if declared := gjson.Get(source, "$schema").String(); declared != "" {
		return !strings.Contains(declared, "draft-0")
	}

	switch draft {
	case "7", "6", "4":
		return false
	}

	return true
}

func collectViolations(err *jsonschema.ValidationError, violations []Violation) []Violation {
	if len(err.Causes) == 0 {
		return append(violations, Violation{
			InstanceLocation: displayLocation(err.InstanceLocation),
			KeywordLocation:  err.KeywordLocation,
			Message:          err.Message,
		})
	}

	for _, cause := range err.Causes {
		violations = collectViolations(cause, violations)
	}

	return violations
}

func displayLocation(pointer string) string {
	if pointer == "" {
		return "/"
	}
	return pointer
}
