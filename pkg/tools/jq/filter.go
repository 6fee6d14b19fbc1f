package jq

import (
	"errors"
	"strconv"

	"github.com/itchyny/gojq"
	"github.com/tidwall/gjson"
)

var ErrUnsupportedFilter = errors.New("unsupported filter")

// Step is one resolved component of a path filter. Exactly one of Key and
// Index is meaningful, selected by IsIndex.
type Step struct {
	Key     string
	Index   int
	IsIndex bool
}

// CompileFilter parses filter with the jq grammar and flattens it into path
// steps. Anything beyond identity, field access, string-keyed access, integer
// indexing and pipes between those is rejected with ErrUnsupportedFilter.
func CompileFilter(filter string) ([]Step, error) {
	query, err := gojq.Parse(filter)
	if err != nil {
		return nil, err
	}

	return queryToSteps(query)
}

func queryToSteps(query *gojq.Query) ([]Step, error) {
	if query == nil || len(query.FuncDefs) > 0 || len(query.Imports) > 0 || query.Meta != nil {
		return nil, ErrUnsupportedFilter
	}

	if query.Op == gojq.OpPipe {
		left, err := queryToSteps(query.Left)
		if err != nil {
			return nil, err
		}

		right, err := queryToSteps(query.Right)
		if err != nil {
			return nil, err
		}

		return append(left, right...), nil
	}

	if query.Op != 0 || query.Term == nil {
		return nil, ErrUnsupportedFilter
	}

	return termToSteps(query.Term)
}

func termToSteps(term *gojq.Term) ([]Step, error) {
	steps := make([]Step, 0, len(term.SuffixList)+1)

	switch term.Type {
	case gojq.TermTypeIdentity:
	case gojq.TermTypeIndex:
		step, err := indexToStep(term.Index)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	case gojq.TermTypeQuery:
		inner, err := queryToSteps(term.Query)
		if err != nil {
			return nil, err
		}
		steps = append(steps, inner...)
	default:
		return nil, ErrUnsupportedFilter
	}

	for _, suffix := range term.SuffixList {
		if suffix.Index == nil || suffix.Iter || suffix.Optional || suffix.Bind != nil {
			return nil, ErrUnsupportedFilter
		}

		step, err := indexToStep(suffix.Index)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}

	return steps, nil
}

func indexToStep(index *gojq.Index) (Step, error) {
	if index == nil || index.IsSlice {
		return Step{}, ErrUnsupportedFilter
	}

	if index.Name != "" {
		return Step{Key: index.Name}, nil
	}

	if index.Str != nil {
		if len(index.Str.Queries) > 0 {
			return Step{}, ErrUnsupportedFilter
		}
		return Step{Key: index.Str.Str}, nil
	}

	if index.Start == nil || index.Start.Op != 0 || index.Start.Term == nil {
		return Step{}, ErrUnsupportedFilter
	}

	term := index.Start.Term
	if len(term.SuffixList) > 0 {
		return Step{}, ErrUnsupportedFilter
	}

	switch term.Type {
	case gojq.TermTypeNumber:
		n, err := strconv.Atoi(term.Number)
		if err != nil {
			return Step{}, ErrUnsupportedFilter
		}
		return Step{Index: n, IsIndex: true}, nil
	case gojq.TermTypeUnary:
		if term.Unary.Op != gojq.OpSub || term.Unary.Term.Type != gojq.TermTypeNumber || len(term.Unary.Term.SuffixList) > 0 {
			return Step{}, ErrUnsupportedFilter
		}
		n, err := strconv.Atoi(term.Unary.Term.Number)
		if err != nil {
			return Step{}, ErrUnsupportedFilter
		}
		return Step{Index: -n, IsIndex: true}, nil
	case gojq.TermTypeString:
		if term.Str == nil || len(term.Str.Queries) > 0 {
			return Step{}, ErrUnsupportedFilter
		}
		return Step{Key: term.Str.Str}, nil
	}

	return Step{}, ErrUnsupportedFilter
}

// Apply walks the steps through value. Negative indexes count from the end.
func Apply(value gjson.Result, steps []Step) (gjson.Result, bool) {
	current := value

	for _, step := range steps {
		if step.IsIndex {
			if !current.IsArray() {
				return gjson.Result{}, false
			}

			elements := current.Array()
			index := step.Index
			if index < 0 {
				index += len(elements)
			}

			if index < 0 || index >= len(elements) {
				return gjson.Result{}, false
			}

			current = elements[index]
			continue
		}

		if !current.IsObject() {
			return gjson.Result{}, false
		}

		var next gjson.Result
		found := false
		current.ForEach(func(key, element gjson.Result) bool {
			if key.String() == step.Key {
				next = element
				found = true
			}
			return true
		})

		if !found {
			return gjson.Result{}, false
		}
		current = next
	}

	return current, true
}
