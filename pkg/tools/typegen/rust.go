package typegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"
)

var rustKeywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true, "continue": true,
	"dyn": true, "else": true, "enum": true, "extern": true, "false": true, "fn": true,
	"for": true, "if": true, "impl": true, "in": true, "let": true, "loop": true,
	"match": true, "mod": true, "move": true, "mut": true, "pub": true, "ref": true,
	"return": true, "static": true, "struct": true, "trait": true, "true": true,
	"type": true, "unsafe": true, "use": true, "where": true, "while": true,
}

type Rust struct{}

func (Rust) Render(model Model) string {
	blocks := []string{"use serde::{Deserialize, Serialize};"}

	if model.Root.Kind != KindObject {
		blocks = append(blocks, fmt.Sprintf("pub type %s = %s;", model.RootName, rustType(model.Root)))
	}

	for _, object := range model.Objects {
		blocks = append(blocks, rustStruct(object))
	}

	return strings.Join(blocks, "\n\n") + "\n"
}

func rustStruct(object *Shape) string {
	var b strings.Builder

	b.WriteString("#[derive(Debug, Clone, Serialize, Deserialize)]\n")
	fmt.Fprintf(&b, "pub struct %s {\n", object.Name)

	used := make(map[string]int)
	for _, field := range object.Fields {
		name := rustFieldName(field.Key)
		used[name]++
		if used[name] > 1 {
			name += "_" + strconv.Itoa(used[name])
		}

		if strings.TrimPrefix(name, "r#") != field.Key {
			fmt.Fprintf(&b, "    #[serde(rename = %s)]\n", strconv.Quote(field.Key))
		}
		fmt.Fprintf(&b, "    pub %s: %s,\n", name, rustType(field.Shape))
	}
	b.WriteString("}")

	return b.String()
}

func rustType(shape *Shape) string {
	switch shape.Kind {
	case KindNull:
		return "Option<serde_json::Value>"
	case KindString:
		return "String"
	case KindInteger:
		return "i64"
	case KindFloat:
		return "f64"
	case KindBoolean:
		return "bool"
	case KindArray:
		return "Vec<" + rustType(shape.Elem) + ">"
	case KindObject:
		return shape.Name
	}

	return "serde_json::Value"
}

func rustFieldName(key string) string {
	name := toolkit.SnakeCase(key)
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return "field_" + name
	}

	if rustKeywords[name] {
		return "r#" + name
	}

	return name
}
