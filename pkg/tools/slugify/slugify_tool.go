package slugify

import (
	"context"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/gosimple/slug"
)

type SlugifyTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewSlugifyTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &SlugifyTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Slugify, tool.Slugify)

	return tool
}

func (t *SlugifyTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type SlugifyParams struct {
	Text      string `json:"text"`
	Language  string `json:"language"`
	Separator string `json:"separator"`
	MaxLength int    `json:"max_length"`
}

func (t *SlugifyTool) Slugify(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := SlugifyParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Slugify))
	if err != nil {
		return nil, err
	}

	s := slug.MakeLang(p.Text, p.Language)

	if p.Separator == "_" {
		s = strings.ReplaceAll(s, "-", "_")
	}

	s = truncate(s, p.MaxLength, p.Separator)

	return domain.Item{
		"output": s,
		"length": len(s),
	}, nil
}

// truncate shortens s to at most maxLength bytes, preferring to cut at the
// last separator so no word is split.
func truncate(s string, maxLength int, separator string) string {
	if maxLength <= 0 || len(s) <= maxLength {
		return s
	}

	if separator == "" {
		separator = "-"
	}

	cut := s[:maxLength]
	if s[maxLength:maxLength+1] == separator {
		return cut
	}

	if i := strings.LastIndex(cut, separator); i > 0 {
		return cut[:i]
	}

	return cut
}
