package cronparser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const fieldCountMessage = "Invalid cron expression. Expected 5 fields: minute hour day month weekday"

type field struct {
	Name     string
	Min, Max int
	Names    []string

	Every  string
	Units  string
	At     string
	AtList string
}

var fields = []field{
	{Name: "minute", Min: 0, Max: 59, Every: "every minute", Units: "minutes", At: "at minute %s", AtList: "at minutes %s"},
	{Name: "hour", Min: 0, Max: 23, Every: "every hour", Units: "hours", At: "at hour %s", AtList: "at hours %s"},
	{Name: "day", Min: 1, Max: 31, Every: "every day", Units: "days", At: "on day %s of the month", AtList: "on days %s of the month"},
	{
		Name: "month", Min: 1, Max: 12, Every: "every month", Units: "months", At: "in %s", AtList: "in %s",
		Names: []string{"", "January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	},
	{
		Name: "weekday", Min: 0, Max: 6, Every: "every day of the week", Units: "days of the week", At: "on %s", AtList: "on %s",
		Names: []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	},
}

// FieldExplanation is one field of an expression with its English fragment.
type FieldExplanation struct {
	Field       string `json:"field"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// Explanation is the plain English reading of a five field expression.
type Explanation struct {
	Description string             `json:"description"`
	Fields      []FieldExplanation `json:"fields"`
}

// Explain describes a standard five field cron expression. Each field may be
// *, a value, a range a-b, a step */n, a-b/n or a/n, or a comma separated
// list of those. Months and weekdays also accept three letter names.
func Explain(expression string) (Explanation, error) {
	parts := strings.Fields(expression)
	if len(parts) != len(fields) {
		return Explanation{}, domain.NewInvalidInputError(fieldCountMessage)
	}

	explanation := Explanation{Fields: make([]FieldExplanation, len(fields))}

	for i, f := range fields {
		fragment, err := f.describe(parts[i])
		if err != nil {
			return Explanation{}, err
		}

		explanation.Fields[i] = FieldExplanation{Field: f.Name, Value: parts[i], Description: fragment}
	}

	explanation.Description = summarize(parts, explanation.Fields)

	return explanation, nil
}

func summarize(parts []string, explained []FieldExplanation) string {
	minute, hour := parts[0], parts[1]

	var fragments []string

	m, minuteErr := strconv.Atoi(minute)
	h, hourErr := strconv.Atoi(hour)

	switch {
	case minuteErr == nil && hourErr == nil:
		fragments = append(fragments, fmt.Sprintf("at %02d:%02d", h, m))
	case isWildcard(hour):
		fragments = append(fragments, explained[0].Description)
	default:
		fragments = append(fragments, explained[0].Description, explained[1].Description)
	}

	for i := 2; i < len(parts); i++ {
		if !isWildcard(parts[i]) {
			fragments = append(fragments, explained[i].Description)
		}
	}

	description := strings.Join(fragments, ", ")

	runes := []rune(description)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

func isWildcard(s string) bool {
	return s == "*" || s == "?"
}

func (f field) describe(expr string) (string, error) {
	if isWildcard(expr) {
		return f.Every, nil
	}

	if strings.Contains(expr, ",") {
		return f.describeList(strings.Split(expr, ","))
	}

	if base, step, ok := strings.Cut(expr, "/"); ok {
		return f.describeStep(base, step)
	}

	if from, to, ok := strings.Cut(expr, "-"); ok {
		a, b, err := f.parseRange(from, to)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%s from %s through %s", f.Every, f.label(a), f.label(b)), nil
	}

	v, err := f.parseValue(expr)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(f.At, f.label(v)), nil
}

func (f field) describeList(items []string) (string, error) {
	labels := make([]string, 0, len(items))
	var stepped []string

	for _, item := range items {
		if item == "" {
			return "", f.invalid(item)
		}

		if strings.Contains(item, "/") || isWildcard(item) {
			fragment, err := f.describe(item)
			if err != nil {
				return "", err
			}
			stepped = append(stepped, fragment)
			continue
		}

		if from, to, ok := strings.Cut(item, "-"); ok {
			a, b, err := f.parseRange(from, to)
			if err != nil {
				return "", err
			}
			labels = append(labels, fmt.Sprintf("%s through %s", f.label(a), f.label(b)))
			continue
		}

		v, err := f.parseValue(item)
		if err != nil {
			return "", err
		}
		labels = append(labels, f.label(v))
	}

	var fragments []string
	if len(labels) == 1 {
		fragments = append(fragments, fmt.Sprintf(f.At, labels[0]))
	} else if len(labels) > 1 {
		fragments = append(fragments, fmt.Sprintf(f.AtList, joinList(labels)))
	}

	return strings.Join(append(fragments, stepped...), " and "), nil
}

func (f field) describeStep(base, step string) (string, error) {
	n, err := strconv.Atoi(step)
	if err != nil || n <= 0 {
		return "", domain.NewInvalidInputError("Invalid cron expression: step %q in the %s field must be a positive number", step, f.Name)
	}

	every := fmt.Sprintf("every %d %s", n, f.Units)

	if isWildcard(base) {
		return every, nil
	}

	if from, to, ok := strings.Cut(base, "-"); ok {
		a, b, err := f.parseRange(from, to)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%s from %s through %s", every, f.label(a), f.label(b)), nil
	}

	v, err := f.parseValue(base)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s starting at %s", every, f.label(v)), nil
}

func (f field) parseRange(from, to string) (int, int, error) {
	a, err := f.parseValue(from)
	if err != nil {
		return 0, 0, err
	}

	b, err := f.parseValue(to)
	if err != nil {
		return 0, 0, err
	}

	if a > b {
		return 0, 0, domain.NewInvalidInputError("Invalid cron expression: range %s-%s in the %s field is reversed", from, to, f.Name)
	}

	return a, b, nil
}

func (f field) parseValue(s string) (int, error) {
	if len(f.Names) > 0 && len(s) == 3 {
		for i, name := range f.Names {
			if name != "" && strings.EqualFold(name[:3], s) {
				return i, nil
			}
		}
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, f.invalid(s)
	}

	if v < f.Min || v > f.Max {
		return 0, domain.NewInvalidInputError("Invalid cron expression: %s value %d is out of range %d-%d", f.Name, v, f.Min, f.Max)
	}

	return v, nil
}

func (f field) invalid(s string) error {
	return domain.NewInvalidInputError("Invalid cron expression: %q is not a valid %s value", s, f.Name)
}

func (f field) label(v int) string {
	if len(f.Names) > 0 {
		return f.Names[v]
	}

	return strconv.Itoa(v)
}

func joinList(items []string) string {
	if len(items) < 2 {
		return strings.Join(items, "")
	}

	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
