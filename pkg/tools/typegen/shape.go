package typegen

import (
	"strconv"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"
	"github.com/tidwall/gjson"
)

type Kind int

const (
	KindAny Kind = iota
	KindNull
	KindString
	KindInteger
	KindFloat
	KindBoolean
	KindArray
	KindObject
)

// Shape is the type inferred from a single JSON sample.
type Shape struct {
	Kind   Kind
	Name   string  // Set for objects
	Fields []Field // Set for objects, in document order
	Elem   *Shape  // Set for arrays; KindAny when the sample array is empty
}

type Field struct {
	Key   string
	Shape *Shape
}

// Model is the inferred root plus every named object type, in the order the
// objects were first reached by a depth-first walk from the root.
type Model struct {
	RootName string
	Root     *Shape
	Objects  []*Shape
}

type inferrer struct {
	objects []*Shape
	names   map[string]int
}

func Infer(value gjson.Result, rootName string) Model {
	inf := &inferrer{
		names: make(map[string]int),
	}

	root := inf.infer(value, rootName)

	return Model{
		RootName: rootName,
		Root:     root,
		Objects:  inf.objects,
	}
}

func (inf *inferrer) infer(value gjson.Result, name string) *Shape {
	switch value.Type {
	case gjson.Null:
		return &Shape{Kind: KindNull}
	case gjson.String:
		return &Shape{Kind: KindString}
	case gjson.True, gjson.False:
		return &Shape{Kind: KindBoolean}
	case gjson.Number:
		if isIntegerLiteral(value.Raw) {
			return &Shape{Kind: KindInteger}
		}
		return &Shape{Kind: KindFloat}
	}

	if value.IsArray() {
		elements := value.Array()
		if len(elements) == 0 {
			return &Shape{Kind: KindArray, Elem: &Shape{Kind: KindAny}}
		}

		return &Shape{Kind: KindArray, Elem: inf.infer(elements[0], name+"Item")}
	}

	shape := &Shape{Kind: KindObject, Name: inf.uniqueName(name)}
	inf.objects = append(inf.objects, shape)

	value.ForEach(func(key, element gjson.Result) bool {
		shape.Fields = append(shape.Fields, Field{
			Key:   key.String(),
			Shape: inf.infer(element, TypeName(key.String())),
		})
		return true
	})

	return shape
}

func (inf *inferrer) uniqueName(name string) string {
	inf.names[name]++
	if count := inf.names[name]; count > 1 {
		return name + strconv.Itoa(count)
	}
	return name
}

// TypeName turns a JSON key into a PascalCase type name that starts with a letter.
func TypeName(key string) string {
	name := toolkit.PascalCase(key)
	if name == "" {
		return "Field"
	}

	if name[0] >= '0' && name[0] <= '9' {
		return "Field" + name
	}

	return name
}

func isIntegerLiteral(raw string) bool {
	return !strings.ContainsAny(raw, ".eE")
}

// DependencyOrder returns the objects ordered so every type comes after the
// types it references.
func (m Model) DependencyOrder() []*Shape {
	ordered := make([]*Shape, 0, len(m.Objects))
	seen := make(map[*Shape]bool)

	var visit func(shape *Shape)
	visit = func(shape *Shape) {
		switch shape.Kind {
		case KindArray:
			visit(shape.Elem)
		case KindObject:
			if seen[shape] {
				return
			}
			seen[shape] = true

			for _, field := range shape.Fields {
				visit(field.Shape)
			}

			ordered = append(ordered, shape)
		}
	}

	visit(m.Root)

	return ordered
}
