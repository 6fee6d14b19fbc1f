package toolkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// ParseJSON validates input and returns it as a gjson result, which keeps
// the document's key order. Invalid documents yield an "Invalid JSON" error
// carrying the decoder's explanation.
func ParseJSON(input string) (gjson.Result, error) {
	if strings.TrimSpace(input) == "" {
		return gjson.Result{}, domain.NewInvalidInputError("Invalid JSON: input is empty")
	}

	if !gjson.Valid(input) {
		return gjson.Result{}, invalidJSONError(input)
	}

	return gjson.Parse(input), nil
}

// DecodeJSON decodes input into generic Go values. Numbers are kept as
// json.Number so large integers survive a round trip.
func DecodeJSON(input string) (any, error) {
	if strings.TrimSpace(input) == "" {
		return nil, domain.NewInvalidInputError("Invalid JSON: input is empty")
	}

	decoder := json.NewDecoder(strings.NewReader(input))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, domain.WrapInvalidInput(err, fmt.Sprintf("Invalid JSON: %s", err))
	}

	if decoder.More() {
		return nil, domain.NewInvalidInputError("Invalid JSON: unexpected data after top-level value")
	}

	return value, nil
}

// PrettyJSON indents a raw JSON document with two spaces and one element per line.
func PrettyJSON(raw []byte) string {
	return IndentJSON(raw, "  ", false)
}

func IndentJSON(raw []byte, indent string, sortKeys bool) string {
	formatted := pretty.PrettyOptions(raw, &pretty.Options{
		Width:    0,
		Indent:   indent,
		SortKeys: sortKeys,
	})

	return string(bytes.TrimRight(formatted, "\n"))
}

// MarshalPretty encodes value as indented JSON without HTML escaping.
func MarshalPretty(value any) (string, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return "", domain.NewComputationError(err, "Failed to encode result: %s", err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

func invalidJSONError(input string) error {
	var value any

	err := json.Unmarshal([]byte(input), &value)
	if err == nil {
		return domain.NewInvalidInputError("Invalid JSON")
	}

	return domain.WrapInvalidInput(err, fmt.Sprintf("Invalid JSON: %s", err))
}

// JSONTypeName names the JSON type of a value the way JSON Schema does.
func JSONTypeName(value gjson.Result) string {
	switch value.Type {
	case gjson.Null:
		return "null"
	case gjson.True, gjson.False:
		return "boolean"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	}

	if value.IsArray() {
		return "array"
	}

	return "object"
}
