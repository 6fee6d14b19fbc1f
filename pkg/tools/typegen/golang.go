package typegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"
)

var goInitialisms = map[string]string{
	"Api":  "API",
	"Html": "HTML",
	"Http": "HTTP",
	"Id":   "ID",
	"Ip":   "IP",
	"Json": "JSON",
	"Sql":  "SQL",
	"Uri":  "URI",
	"Url":  "URL",
	"Uuid": "UUID",
	"Xml":  "XML",
}

type Go struct{}

func (Go) Render(model Model) string {
	blocks := make([]string, 0, len(model.Objects)+1)

	if model.Root.Kind != KindObject {
		blocks = append(blocks, fmt.Sprintf("type %s %s", model.RootName, goType(model.Root)))
	}

	for _, object := range model.Objects {
		blocks = append(blocks, goStruct(object))
	}

	return strings.Join(blocks, "\n\n") + "\n"
}

func goStruct(object *Shape) string {
	if len(object.Fields) == 0 {
		return fmt.Sprintf("type %s struct{}", object.Name)
	}

	names := make([]string, len(object.Fields))
	types := make([]string, len(object.Fields))
	used := make(map[string]int)

	nameWidth, typeWidth := 0, 0
	for i, field := range object.Fields {
		name := goFieldName(field.Key)
		used[name]++
		if used[name] > 1 {
			name += strconv.Itoa(used[name])
		}

		names[i] = name
		types[i] = goType(field.Shape)

		nameWidth = max(nameWidth, len(names[i]))
		typeWidth = max(typeWidth, len(types[i]))
	}

	var b strings.Builder

	fmt.Fprintf(&b, "type %s struct {\n", object.Name)
	for i, field := range object.Fields {
		fmt.Fprintf(&b, "\t%-*s %-*s `json:\"%s\"`\n", nameWidth, names[i], typeWidth, types[i], field.Key)
	}
	b.WriteString("}")

	return b.String()
}

func goType(shape *Shape) string {
	switch shape.Kind {
	case KindString:
		return "string"
	case KindInteger:
		return "int"
	case KindFloat:
		return "float64"
	case KindBoolean:
		return "bool"
	case KindArray:
		return "[]" + goType(shape.Elem)
	case KindObject:
		return shape.Name
	}

	return "any"
}

func goFieldName(key string) string {
	var b strings.Builder

	for _, word := range toolkit.SplitWords(key) {
		word = toolkit.Capitalize(word)
		if initialism, ok := goInitialisms[word]; ok {
			word = initialism
		}
		b.WriteString(word)
	}

	name := b.String()
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return "Field" + name
	}

	return name
}
