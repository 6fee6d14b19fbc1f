package timestamp

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/dustin/go-humanize"
)

const localLayout = "2006-01-02 15:04:05 MST"

type TimestampTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
	now           func() time.Time
}

func NewTimestampTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &TimestampTool{
		binder: deps.ParameterBinder,
		now:    time.Now,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Convert, tool.Convert)

	return tool
}

func (t *TimestampTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type ConvertParams struct {
	Value    string `json:"value"`
	Timezone string `json:"timezone"`
}

func (t *TimestampTool) Convert(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := ConvertParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Convert))
	if err != nil {
		return nil, err
	}

	location := time.UTC
	if tz := strings.TrimSpace(p.Timezone); tz != "" {
		location, err = time.LoadLocation(tz)
		if err != nil {
			return nil, domain.NewInvalidInputError("Unknown timezone %q", tz)
		}
	}

	now := t.now()

	parsed, unit, err := Parse(p.Value, location, now)
	if err != nil {
		return nil, err
	}

	local := parsed.In(location)

	result := domain.Item{
		"unix":     parsed.Unix(),
		"unix_ms":  parsed.UnixMilli(),
		"rfc3339":  local.Format(time.RFC3339),
		"utc":      parsed.UTC().Format(time.RFC3339),
		"local":    local.Format(localLayout),
		"relative": humanize.RelTime(parsed, now, "ago", "from now"),
		"input":    unit,
	}

	result["output"] = strings.Join([]string{
		"Unix: " + strconv.FormatInt(parsed.Unix(), 10),
		"Unix (ms): " + strconv.FormatInt(parsed.UnixMilli(), 10),
		"RFC 3339: " + result["rfc3339"].(string),
		"UTC: " + result["utc"].(string),
		"Local: " + result["local"].(string),
		"Relative: " + result["relative"].(string),
	}, "\n")

	return result, nil
}

// Parse reads "now", Unix seconds, milliseconds, microseconds or nanoseconds
// (chosen by digit count), fractional seconds, or a free form date. Dates
// without an offset are read in location. The second result names the
// recognised input kind.
func Parse(value string, location *time.Location, now time.Time) (time.Time, string, error) {
	s := strings.TrimSpace(value)

	if strings.EqualFold(s, "now") {
		return now, "now", nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		digits := len(strings.TrimPrefix(s, "-"))

		switch {
		case digits <= 11:
			return time.Unix(n, 0), "seconds", nil
		case digits <= 14:
			return time.UnixMilli(n), "milliseconds", nil
		case digits <= 17:
			return time.UnixMicro(n), "microseconds", nil
		default:
			return time.Unix(0, n), "nanoseconds", nil
		}
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		sec, frac := math.Modf(f)
		return time.Unix(int64(sec), int64(math.Round(frac*1e9))), "seconds", nil
	}

	parsed, err := dateparse.ParseIn(s, location)
	if err != nil {
		return time.Time{}, "", domain.WrapInvalidInput(err, "Unrecognized date or timestamp: "+strconv.Quote(s))
	}

	return parsed, "date", nil
}
