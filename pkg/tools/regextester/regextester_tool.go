package regextester

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/dlclark/regexp2"
)

const (
	matchTimeout = 2 * time.Second
	maxMatches   = 1000
)

type RegexTesterTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewRegexTesterTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &RegexTesterTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Test, tool.Test).
		AddPerItem(ToolActionType_Replace, tool.Replace)

	return tool
}

func (t *RegexTesterTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type TestParams struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
	Text    string `json:"text"`
}

type ReplaceParams struct {
	Pattern     string `json:"pattern"`
	Flags       string `json:"flags"`
	Text        string `json:"text"`
	Replacement string `json:"replacement"`
}

type Group struct {
	Name    string  `json:"name"`
	Value   *string `json:"value"` // nil when the group did not participate
	Index   int     `json:"index"`
	Matched bool    `json:"matched"`
}

type Match struct {
	Value  string  `json:"value"`
	Index  int     `json:"index"`
	Length int     `json:"length"`
	Groups []Group `json:"groups"`
}

func (t *RegexTesterTool) Test(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := TestParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Test))
	if err != nil {
		return nil, err
	}

	re, global, err := Compile(p.Pattern, p.Flags)
	if err != nil {
		return nil, err
	}

	matches, err := FindMatches(re, p.Text, global)
	if err != nil {
		return nil, err
	}

	output := "No matches"
	switch len(matches) {
	case 0:
	case 1:
		output = "1 match"
	default:
		output = fmt.Sprintf("%d matches", len(matches))
	}

	return domain.Item{
		"output":  output,
		"matched": len(matches) > 0,
		"count":   len(matches),
		"matches": matches,
	}, nil
}

func (t *RegexTesterTool) Replace(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := ReplaceParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Replace))
	if err != nil {
		return nil, err
	}

	re, global, err := Compile(p.Pattern, p.Flags)
	if err != nil {
		return nil, err
	}

	count := 1
	if global {
		count = -1
	}

	replaced, err := re.Replace(p.Text, p.Replacement, -1, count)
	if err != nil {
		return nil, matchError(err)
	}

	return domain.Item{
		"output": replaced,
	}, nil
}

// Compile builds an ECMAScript flavoured regexp. The g flag is returned
// separately because it changes how matches are collected, not the pattern.
func Compile(pattern string, flags string) (*regexp2.Regexp, bool, error) {
	var options regexp2.RegexOptions = regexp2.ECMAScript
	global := false

	for _, flag := range flags {
		switch flag {
		case 'g':
			global = true
		case 'i':
			options |= regexp2.IgnoreCase
		case 'm':
			options |= regexp2.Multiline
		case 's':
			options |= regexp2.Singleline
		case 'u', 'y', 'd':
		default:
			return nil, false, domain.NewInvalidInputError("Invalid regular expression: unknown flag %q", flag)
		}
	}

	re, err := regexp2.Compile(pattern, options)
	if err != nil {
		return nil, false, domain.WrapInvalidInput(err, "Invalid regular expression: "+err.Error())
	}

	re.MatchTimeout = matchTimeout

	return re, global, nil
}

// FindMatches returns the first match, or every match when global is set.
// Positions are counted in characters.
func FindMatches(re *regexp2.Regexp, text string, global bool) ([]Match, error) {
	matches := make([]Match, 0)

	m, err := re.FindStringMatch(text)
	for m != nil && err == nil {
		matches = append(matches, toMatch(m))

		if !global || len(matches) >= maxMatches {
			break
		}

		m, err = re.FindNextMatch(m)
	}

	if err != nil {
		return nil, matchError(err)
	}

	return matches, nil
}

func toMatch(m *regexp2.Match) Match {
	match := Match{
		Value:  m.String(),
		Index:  m.Index,
		Length: m.Length,
		Groups: make([]Group, 0),
	}

	for _, g := range m.Groups()[1:] {
		group := Group{Name: g.Name, Index: -1}

		if len(g.Captures) > 0 {
			value := g.String()
			group.Value = &value
			group.Index = g.Index
			group.Matched = true
		}

		match.Groups = append(match.Groups, group)
	}

	return match
}

func matchError(err error) error {
	if strings.HasPrefix(err.Error(), "match timeout") {
		return domain.NewComputationError(err, "Regular expression took too long to evaluate")
	}

	return domain.NewComputationError(err, "Regular expression failed: %s", err)
}
