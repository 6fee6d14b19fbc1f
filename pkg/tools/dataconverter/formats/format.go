// Package formats reads and writes the structured data formats the data
// converter understands. Every reader produces the same document model:
// *Object for objects, []any for arrays and Go scalars for the rest.
package formats

import (
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

type Format string

const (
	FormatAuto   Format = "auto"
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
	FormatCSV    Format = "csv"
	FormatTSV    Format = "tsv"
	FormatYAML   Format = "yaml"
	FormatXML    Format = "xml"
	FormatXLSX   Format = "xlsx"
	FormatTOML   Format = "toml"
)

type ParseOptions struct {
	// Sheet selects the worksheet of a spreadsheet; empty means the first one.
	Sheet string
}

type Parser interface {
	FormatName() Format
	CanParse(input string) bool
	Parse(input string, opts ParseOptions) (any, error)
}

type Encoder interface {
	FormatName() Format
	Encode(document any) (string, error)
}

type Registry struct {
	parsers  map[Format]Parser
	encoders map[Format]Encoder
	order    []Format
}

func NewRegistry() *Registry {
	return &Registry{
		parsers:  make(map[Format]Parser),
		encoders: make(map[Format]Encoder),
		order:    make([]Format, 0),
	}
}

// RegisterParser adds a parser. Detection tries parsers in registration order.
func (r *Registry) RegisterParser(parser Parser) {
	format := parser.FormatName()
	r.parsers[format] = parser
	r.order = append(r.order, format)
}

func (r *Registry) RegisterEncoder(encoder Encoder) {
	r.encoders[encoder.FormatName()] = encoder
}

func (r *Registry) Parser(format Format) (Parser, error) {
	if parser, ok := r.parsers[format]; ok {
		return parser, nil
	}
	return nil, domain.NewUnsupportedOperationError("Unsupported input format: %s", format)
}

func (r *Registry) Encoder(format Format) (Encoder, error) {
	if encoder, ok := r.encoders[format]; ok {
		return encoder, nil
	}
	return nil, domain.NewUnsupportedOperationError("Unsupported output format: %s", format)
}

func (r *Registry) Detect(input string) (Parser, error) {
	for _, format := range r.order {
		parser := r.parsers[format]
		if parser.CanParse(input) {
			return parser, nil
		}
	}

	names := make([]string, len(r.order))
	for i, format := range r.order {
		names[i] = string(format)
	}

	return nil, domain.NewInvalidInputError("Unable to detect the input format. Supported formats: %s", strings.Join(names, ", "))
}

// Parse reads input in the given format, detecting it when format is auto.
// It returns the document and the format it was read as.
func (r *Registry) Parse(input string, format Format, opts ParseOptions) (any, Format, error) {
	if strings.TrimSpace(input) == "" {
		return nil, format, domain.NewInvalidInputError("Input is empty")
	}

	var parser Parser
	var err error

	if format == FormatAuto || format == "" {
		parser, err = r.Detect(input)
	} else {
		parser, err = r.Parser(format)
	}
	if err != nil {
		return nil, format, err
	}

	document, err := parser.Parse(input, opts)
	if err != nil {
		return nil, parser.FormatName(), err
	}

	return document, parser.FormatName(), nil
}

func (r *Registry) Encode(document any, format Format) (string, error) {
	encoder, err := r.Encoder(format)
	if err != nil {
		return "", err
	}

	return encoder.Encode(document)
}

// NewDefaultRegistry registers every format. The parser order is the
// detection order, most distinctive syntax first.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()

	registry.RegisterParser(NewJSONParser())
	registry.RegisterParser(NewNDJSONParser())
	registry.RegisterParser(NewXMLParser())
	registry.RegisterParser(NewXLSXParser())
	registry.RegisterParser(NewTOMLParser())
	registry.RegisterParser(NewDelimitedParser(FormatTSV, '\t'))
	registry.RegisterParser(NewDelimitedParser(FormatCSV, ','))
	registry.RegisterParser(NewYAMLParser())

	registry.RegisterEncoder(NewJSONEncoder())
	registry.RegisterEncoder(NewYAMLEncoder())
	registry.RegisterEncoder(NewXMLEncoder())
	registry.RegisterEncoder(NewDelimitedEncoder(FormatCSV, ','))
	registry.RegisterEncoder(NewDelimitedEncoder(FormatTSV, '\t'))
	registry.RegisterEncoder(NewTOMLEncoder())

	return registry
}

func firstLine(input string) string {
	for line := range strings.SplitSeq(input, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
