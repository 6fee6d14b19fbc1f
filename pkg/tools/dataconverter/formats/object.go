package formats

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Object is a JSON object that remembers the order its keys were first set in.
type Object struct {
	keys   []string
	values map[string]any
}

func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

func (o *Object) Set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

func (o *Object) Get(key string) (any, bool) {
	value, ok := o.values[key]
	return value, ok
}

func (o *Object) Keys() []string {
	return o.keys
}

func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := marshalJSON(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')

		v, err := marshalJSON(o.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalJSON(value any) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Plain converts objects to map[string]any, recursively, for encoders that
// only understand Go maps.
func Plain(value any) any {
	switch v := value.(type) {
	case *Object:
		m := make(map[string]any, v.Len())
		for _, key := range v.keys {
			m[key] = Plain(v.values[key])
		}
		return m
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = Plain(elem)
		}
		return out
	}
	return value
}

// FromPlain converts Go maps into objects with keys in sorted order.
func FromPlain(value any) any {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		o := NewObject()
		for _, key := range keys {
			o.Set(key, FromPlain(v[key]))
		}
		return o
	case []map[string]any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = FromPlain(elem)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = FromPlain(elem)
		}
		return out
	}
	return value
}
