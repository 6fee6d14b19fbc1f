package formats

import (
	"strconv"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"
	"github.com/tidwall/gjson"
)

type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) FormatName() Format {
	return FormatJSON
}

func (p *JSONParser) CanParse(input string) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || (trimmed[0] != '{' && trimmed[0] != '[') {
		return false
	}

	return gjson.Valid(trimmed)
}

func (p *JSONParser) Parse(input string, opts ParseOptions) (any, error) {
	result, err := toolkit.ParseJSON(input)
	if err != nil {
		return nil, err
	}

	return fromJSON(result), nil
}

// fromJSON walks a parsed document keeping object key order. Integers that
// fit in int64 stay integers.
func fromJSON(value gjson.Result) any {
	switch value.Type {
	case gjson.Null:
		return nil
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.String:
		return value.Str
	case gjson.Number:
		if n, err := strconv.ParseInt(value.Raw, 10, 64); err == nil {
			return n
		}
		return value.Num
	}

	if value.IsArray() {
		elems := make([]any, 0)
		value.ForEach(func(_, elem gjson.Result) bool {
			elems = append(elems, fromJSON(elem))
			return true
		})
		return elems
	}

	o := NewObject()
	value.ForEach(func(key, elem gjson.Result) bool {
		o.Set(key.String(), fromJSON(elem))
		return true
	})
	return o
}

type NDJSONParser struct{}

func NewNDJSONParser() *NDJSONParser {
	return &NDJSONParser{}
}

func (p *NDJSONParser) FormatName() Format {
	return FormatNDJSON
}

func (p *NDJSONParser) CanParse(input string) bool {
	lines := 0
	for line := range strings.SplitSeq(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !gjson.Valid(line) {
			return false
		}
		lines++
	}

	return lines > 1
}

func (p *NDJSONParser) Parse(input string, opts ParseOptions) (any, error) {
	records := make([]any, 0)

	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !gjson.Valid(line) {
			return nil, domain.NewInvalidInputError("Invalid NDJSON: line %d is not valid JSON", i+1)
		}

		records = append(records, fromJSON(gjson.Parse(line)))
	}

	return records, nil
}

type JSONEncoder struct{}

func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{}
}

func (e *JSONEncoder) FormatName() Format {
	return FormatJSON
}

func (e *JSONEncoder) Encode(document any) (string, error) {
	raw, err := marshalJSON(document)
	if err != nil {
		return "", domain.NewComputationError(err, "Failed to encode JSON: %s", err)
	}

	return toolkit.PrettyJSON(raw), nil
}
