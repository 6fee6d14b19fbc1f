package cronparser

import (
	"context"
	"strings"
	"time"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/robfig/cron/v3"
)

type CronParserTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
	now           func() time.Time
}

func NewCronParserTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &CronParserTool{
		binder: deps.ParameterBinder,
		now:    time.Now,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Explain, tool.Explain).
		AddPerItem(ToolActionType_NextRuns, tool.NextRuns)

	return tool
}

func (t *CronParserTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type ExplainParams struct {
	Expression string `json:"expression"`
}

func (t *CronParserTool) Explain(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := ExplainParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Explain))
	if err != nil {
		return nil, err
	}

	explanation, err := Explain(p.Expression)
	if err != nil {
		return nil, err
	}

	if _, err := parseSchedule(p.Expression); err != nil {
		return nil, err
	}

	return domain.Item{
		"output": explanation.Description,
		"fields": explanation.Fields,
	}, nil
}

type NextRunsParams struct {
	Expression string `json:"expression"`
	Count      int    `json:"count"`
	From       string `json:"from"`
	Timezone   string `json:"timezone"`
}

func (t *CronParserTool) NextRuns(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := NextRunsParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_NextRuns))
	if err != nil {
		return nil, err
	}

	schedule, err := parseSchedule(p.Expression)
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

	from := t.now()
	if s := strings.TrimSpace(p.From); s != "" {
		from, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, domain.NewInvalidInputError("From must be an RFC 3339 time such as 2024-01-01T00:00:00Z")
		}
	}

	runs := make([]string, 0, p.Count)
	next := from.In(location)

	for range p.Count {
		next = schedule.Next(next)
		if next.IsZero() {
			break
		}
		runs = append(runs, next.Format(time.RFC3339))
	}

	return domain.Item{
		"output":   strings.Join(runs, "\n"),
		"runs":     runs,
		"timezone": location.String(),
	}, nil
}

// parseSchedule accepts five field expressions and the @hourly style
// descriptors understood by the standard parser.
func parseSchedule(expression string) (cron.Schedule, error) {
	expression = strings.TrimSpace(expression)

	if !strings.HasPrefix(expression, "@") && len(strings.Fields(expression)) != len(fields) {
		return nil, domain.NewInvalidInputError(fieldCountMessage)
	}

	schedule, err := cron.ParseStandard(expression)
	if err != nil {
		return nil, domain.WrapInvalidInput(err, "Invalid cron expression: "+err.Error())
	}

	return schedule, nil
}
