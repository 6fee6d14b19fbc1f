package formats

import (
	"encoding/xml"
	"strings"

	"github.com/clbanning/mxj/v2"
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const xmlListRoot = "root"
const xmlListItem = "item"

func init() {
	mxj.XMLEscapeChars(true)
}

// XMLParser maps elements to objects. Attributes become keys prefixed with
// "-" and mixed text content is stored under "#text".
type XMLParser struct{}

func NewXMLParser() *XMLParser {
	return &XMLParser{}
}

func (p *XMLParser) FormatName() Format {
	return FormatXML
}

func (p *XMLParser) CanParse(input string) bool {
	return strings.HasPrefix(strings.TrimSpace(input), "<")
}

func (p *XMLParser) Parse(input string, opts ParseOptions) (any, error) {
	mv, err := mxj.NewMapXml([]byte(input))
	if err != nil {
		return nil, domain.WrapInvalidInput(err, "Invalid XML: "+err.Error())
	}

	return FromPlain(map[string]any(mv)), nil
}

type XMLEncoder struct{}

func NewXMLEncoder() *XMLEncoder {
	return &XMLEncoder{}
}

func (e *XMLEncoder) FormatName() Format {
	return FormatXML
}

// Encode writes an object with a single key using that key as the root
// element. Other objects are wrapped in <doc> and arrays in <root>, one
// <item> per element.
func (e *XMLEncoder) Encode(document any) (string, error) {
	var raw []byte
	var err error

	switch v := Plain(document).(type) {
	case map[string]any:
		raw, err = mxj.Map(v).XmlIndent("", "  ")
	case []any:
		raw, err = mxj.Map{xmlListItem: v}.XmlIndent("", "  ", xmlListRoot)
	default:
		return "", domain.NewInvalidInputError("XML output requires an object or an array")
	}

	if err != nil {
		return "", domain.NewComputationError(err, "Failed to encode XML: %s", err)
	}

	return xml.Header + strings.TrimRight(string(raw), "\n"), nil
}
