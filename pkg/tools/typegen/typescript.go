package typegen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

type TypeScript struct{}

func (TypeScript) Render(model Model) string {
	blocks := make([]string, 0, len(model.Objects)+1)

	if model.Root.Kind != KindObject {
		blocks = append(blocks, fmt.Sprintf("export type %s = %s;", model.RootName, tsType(model.Root)))
	}

	for _, object := range model.Objects {
		var b strings.Builder

		fmt.Fprintf(&b, "export interface %s {\n", object.Name)
		for _, field := range object.Fields {
			fmt.Fprintf(&b, "  %s: %s;\n", tsKey(field.Key), tsType(field.Shape))
		}
		b.WriteString("}")

		blocks = append(blocks, b.String())
	}

	return strings.Join(blocks, "\n\n") + "\n"
}

func tsType(shape *Shape) string {
	switch shape.Kind {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInteger, KindFloat:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindArray:
		elem := tsType(shape.Elem)
		if shape.Elem.Kind == KindNull {
			elem = "(" + elem + ")"
		}
		return elem + "[]"
	case KindObject:
		return shape.Name
	}

	return "any"
}

func tsKey(key string) string {
	if identifierPattern.MatchString(key) {
		return key
	}

	return strconv.Quote(key)
}
