package typegen

import (
	"fmt"
	"strings"
)

type Zod struct{}

// Render emits schemas in dependency order since a const cannot be used
// before it is declared.
func (Zod) Render(model Model) string {
	blocks := []string{`import { z } from "zod";`}

	for _, object := range model.DependencyOrder() {
		var b strings.Builder

		fmt.Fprintf(&b, "export const %sSchema = z.object({\n", object.Name)
		for _, field := range object.Fields {
			fmt.Fprintf(&b, "  %s: %s,\n", tsKey(field.Key), zodType(field.Shape))
		}
		b.WriteString("});")

		blocks = append(blocks, b.String())
	}

	if model.Root.Kind != KindObject {
		blocks = append(blocks, fmt.Sprintf("export const %sSchema = %s;", model.RootName, zodType(model.Root)))
	}

	blocks = append(blocks, fmt.Sprintf("export type %s = z.infer<typeof %sSchema>;", model.RootName, model.RootName))

	return strings.Join(blocks, "\n\n") + "\n"
}

func zodType(shape *Shape) string {
	switch shape.Kind {
	case KindNull:
		return "z.null()"
	case KindString:
		return "z.string()"
	case KindInteger, KindFloat:
		return "z.number()"
	case KindBoolean:
		return "z.boolean()"
	case KindArray:
		return "z.array(" + zodType(shape.Elem) + ")"
	case KindObject:
		return shape.Name + "Schema"
	}

	return "z.any()"
}
