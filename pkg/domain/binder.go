package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type ToolParameterBinder interface {
	BindToStruct(ctx context.Context, item Item, target any, properties []ToolProperty) error
}

// JSONParameterBinder fills a params struct from one input item. Declared
// defaults are applied to missing fields, required fields are checked and
// loosely typed values (as typed on a command line) are coerced to the
// property type before the item is decoded through JSON.
type JSONParameterBinder struct{}

func NewJSONParameterBinder() *JSONParameterBinder {
	return &JSONParameterBinder{}
}

func (b *JSONParameterBinder) BindToStruct(ctx context.Context, item Item, target any, properties []ToolProperty) error {
	if target == nil {
		return fmt.Errorf("bind target cannot be nil")
	}

	bound := make(map[string]any, len(item)+len(properties))
	for key, value := range item {
		bound[key] = value
	}

	for _, property := range properties {
		value, ok := bound[property.Key]
		if !ok || value == nil {
			if property.Default == nil {
				if property.Required {
					return NewInvalidInputError("%s is required", property.Name)
				}

				continue
			}

			value = property.Default
		}

		if property.Required {
			if s, isString := value.(string); isString && s == "" {
				return NewInvalidInputError("%s is required", property.Name)
			}
		}

		coerced, err := coerceProperty(property, value)
		if err != nil {
			return err
		}

		bound[property.Key] = coerced
	}

	jsonData, err := json.Marshal(bound)
	if err != nil {
		return WrapInvalidInput(err, fmt.Sprintf("Invalid settings: %s", err))
	}

	if err := json.Unmarshal(jsonData, target); err != nil {
		return WrapInvalidInput(err, fmt.Sprintf("Invalid settings: %s", err))
	}

	return nil
}

func coerceProperty(property ToolProperty, value any) (any, error) {
	switch property.Type {
	case ToolPropertyType_Integer:
		return coerceInteger(property, value)
	case ToolPropertyType_Boolean:
		return coerceBoolean(property, value)
	case ToolPropertyType_Select:
		if len(property.Options) == 0 {
			return value, nil
		}

		for _, option := range property.Options {
			if fmt.Sprint(option.Value) == fmt.Sprint(value) {
				return option.Value, nil
			}
		}

		return nil, NewInvalidInputError("%s must be one of: %s", property.Name, optionList(property.Options))
	default:
		switch v := value.(type) {
		case string:
			return v, nil
		case float64, int, int64, bool:
			return fmt.Sprint(v), nil
		default:
			return v, nil
		}
	}
}

func coerceInteger(property ToolProperty, value any) (any, error) {
	var n float64

	switch v := value.(type) {
	case float64:
		n = v
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil, NewInvalidInputError("%s must be a whole number", property.Name)
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, NewInvalidInputError("%s must be a whole number", property.Name)
		}
		n = parsed
	default:
		return nil, NewInvalidInputError("%s must be a whole number", property.Name)
	}

	if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
		return nil, NewInvalidInputError("%s must be a whole number", property.Name)
	}

	if opts := property.NumberOpts; opts != nil {
		if n < opts.Min || n > opts.Max {
			return nil, NewInvalidInputError("%s must be between %g and %g", property.Name, opts.Min, opts.Max)
		}
	}

	return int64(n), nil
}

func coerceBoolean(property ToolProperty, value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, NewInvalidInputError("%s must be true or false", property.Name)
		}

		return parsed, nil
	default:
		return nil, NewInvalidInputError("%s must be true or false", property.Name)
	}
}

func optionList(options []ToolPropertyOption) string {
	values := make([]string, 0, len(options))
	for _, option := range options {
		values = append(values, fmt.Sprint(option.Value))
	}

	return strings.Join(values, ", ")
}
