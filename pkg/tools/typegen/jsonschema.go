package typegen

import (
	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"

	"github.com/google/jsonschema-go/jsonschema"
)

const draft202012 = "https://json-schema.org/draft/2020-12/schema"

type JSONSchema struct{}

// Render inlines nested objects. Every key seen in the sample is required.
func (JSONSchema) Render(model Model) string {
	root := schemaFor(model.Root)
	root.Schema = draft202012
	root.Title = model.RootName

	out, err := toolkit.MarshalPretty(root)
	if err != nil {
		return err.Error()
	}

	return out + "\n"
}

func schemaFor(shape *Shape) *jsonschema.Schema {
	switch shape.Kind {
	case KindNull:
		return &jsonschema.Schema{Type: "null"}
	case KindString:
		return &jsonschema.Schema{Type: "string"}
	case KindInteger:
		return &jsonschema.Schema{Type: "integer"}
	case KindFloat:
		return &jsonschema.Schema{Type: "number"}
	case KindBoolean:
		return &jsonschema.Schema{Type: "boolean"}
	case KindArray:
		return &jsonschema.Schema{Type: "array", Items: schemaFor(shape.Elem)}
	case KindObject:
		object := &jsonschema.Schema{
			Type:       "object",
			Properties: make(map[string]*jsonschema.Schema, len(shape.Fields)),
			Required:   make([]string, 0, len(shape.Fields)),
		}
		for _, field := range shape.Fields {
			object.Properties[field.Key] = schemaFor(field.Shape)
			object.Required = append(object.Required, field.Key)
		}
		return object
	}

	return &jsonschema.Schema{}
}
