package jsonpath

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var ErrInvalidPathSyntax = errors.New("invalid path syntax")

type Access interface {
	Apply(data gjson.Result) (gjson.Result, bool)
}

type FieldAccess struct {
	Name string
}

func (f FieldAccess) Apply(data gjson.Result) (gjson.Result, bool) {
	if !data.IsObject() {
		return gjson.Result{}, false
	}

	return lastMember(data, f.Name)
}

// lastMember returns the value of the last member named name, matching
// JSON.parse when an object repeats a key.
func lastMember(object gjson.Result, name string) (gjson.Result, bool) {
	var value gjson.Result
	found := false
	object.ForEach(func(key, element gjson.Result) bool {
		if key.String() == name {
			value = element
			found = true
		}
		return true
	})
	return value, found
}

type IndexAccess struct {
	Index int
}

func (i IndexAccess) Apply(data gjson.Result) (gjson.Result, bool) {
	if !data.IsArray() {
		return gjson.Result{}, false
	}

	value := data.Get(strconv.Itoa(i.Index))
	return value, value.Exists()
}

type Segment struct {
	Accesses []Access
}

func (s Segment) Apply(data gjson.Result) (gjson.Result, bool) {
	current := data
	for _, access := range s.Accesses {
		var ok bool
		current, ok = access.Apply(current)
		if !ok {
			return gjson.Result{}, false
		}
	}
	return current, true
}

type FieldPathParser struct{}

func NewFieldPathParser() *FieldPathParser {
	return &FieldPathParser{}
}

// GetValue resolves a dot path with bracket indexes, optionally rooted at "$".
// It reports false when any segment does not exist.
func (p *FieldPathParser) GetValue(data gjson.Result, fieldPath string) (gjson.Result, bool, error) {
	segments, err := p.Parse(fieldPath)
	if err != nil {
		return gjson.Result{}, false, err
	}

	current := data
	for _, segment := range segments {
		var ok bool
		current, ok = segment.Apply(current)
		if !ok {
			return gjson.Result{}, false, nil
		}
	}

	return current, true, nil
}

func (p *FieldPathParser) Parse(fieldPath string) ([]Segment, error) {
	path := strings.TrimSpace(fieldPath)

	if strings.HasPrefix(path, "$") {
		path = path[1:]
		if path == "" {
			return []Segment{}, nil
		}

		if strings.HasPrefix(path, ".") {
			path = path[1:]
			if path == "" {
				return nil, ErrInvalidPathSyntax
			}
		} else if !strings.HasPrefix(path, "[") {
			return nil, ErrInvalidPathSyntax
		}
	}

	if path == "" {
		return nil, ErrInvalidPathSyntax
	}

	parts := strings.Split(path, ".")
	segments := make([]Segment, 0, len(parts))

	for i, part := range parts {
		segment, err := p.parseSegment(part, i == 0)
		if err != nil {
			return nil, err
		}

		segments = append(segments, segment)
	}

	return segments, nil
}

// parseSegment reads "name", "name[0][1]" or, for the first segment only, "[0]".
func (p *FieldPathParser) parseSegment(input string, first bool) (Segment, error) {
	var accesses []Access

	nameEnd := strings.IndexByte(input, '[')
	if nameEnd == -1 {
		nameEnd = len(input)
	}

	name := input[:nameEnd]
	if strings.ContainsRune(name, ']') {
		return Segment{}, ErrInvalidPathSyntax
	}

	if name != "" {
		accesses = append(accesses, FieldAccess{Name: name})
	} else if !first {
		return Segment{}, ErrInvalidPathSyntax
	}

	i := nameEnd
	for i < len(input) {
		if input[i] != '[' {
			return Segment{}, ErrInvalidPathSyntax
		}

		closeIdx := strings.IndexByte(input[i:], ']')
		if closeIdx == -1 {
			return Segment{}, ErrInvalidPathSyntax
		}

		indexStr := input[i+1 : i+closeIdx]
		index, err := strconv.Atoi(indexStr)
		if err != nil || index < 0 || indexStr != strconv.Itoa(index) {
			return Segment{}, ErrInvalidPathSyntax
		}

		accesses = append(accesses, IndexAccess{Index: index})
		i += closeIdx + 1
	}

	if len(accesses) == 0 {
		return Segment{}, ErrInvalidPathSyntax
	}

	return Segment{Accesses: accesses}, nil
}
