package formats

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"gopkg.in/yaml.v3"
)

type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) FormatName() Format {
	return FormatYAML
}

// CanParse accepts documents whose root is a mapping or a sequence; a bare
// scalar is valid YAML but almost never what was meant.
func (p *YAMLParser) CanParse(input string) bool {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(input), &node); err != nil {
		return false
	}

	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return false
	}

	kind := node.Content[0].Kind
	return kind == yaml.MappingNode || kind == yaml.SequenceNode
}

func (p *YAMLParser) Parse(input string, opts ParseOptions) (any, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(input), &node); err != nil {
		return nil, domain.WrapInvalidInput(err, "Invalid YAML: "+strings.TrimPrefix(err.Error(), "yaml: "))
	}

	if len(node.Content) == 0 {
		return nil, nil
	}

	return fromYAML(node.Content[0])
}

func fromYAML(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return fromYAML(node.Content[0])
	case yaml.AliasNode:
		return fromYAML(node.Alias)
	case yaml.SequenceNode:
		elems := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			elem, err := fromYAML(child)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return elems, nil
	case yaml.MappingNode:
		o := NewObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			value, err := fromYAML(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			o.Set(node.Content[i].Value, value)
		}
		return o, nil
	}

	var value any
	if err := node.Decode(&value); err != nil {
		return nil, domain.WrapInvalidInput(err, fmt.Sprintf("Invalid YAML at line %d: %s", node.Line, err))
	}

	return value, nil
}

type YAMLEncoder struct{}

func NewYAMLEncoder() *YAMLEncoder {
	return &YAMLEncoder{}
}

func (e *YAMLEncoder) FormatName() Format {
	return FormatYAML
}

func (e *YAMLEncoder) Encode(document any) (string, error) {
	node, err := toYAML(document)
	if err != nil {
		return "", domain.NewComputationError(err, "Failed to encode YAML: %s", err)
	}

	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(node); err != nil {
		return "", domain.NewComputationError(err, "Failed to encode YAML: %s", err)
	}

	if err := encoder.Close(); err != nil {
		return "", domain.NewComputationError(err, "Failed to encode YAML: %s", err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

func toYAML(value any) (*yaml.Node, error) {
	switch v := value.(type) {
	case *Object:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range v.Keys() {
			child, err := toYAML(v.values[key])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, child)
		}
		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, elem := range v {
			child, err := toYAML(elem)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	}

	node := &yaml.Node{}
	if err := node.Encode(value); err != nil {
		return nil, err
	}

	return node, nil
}
