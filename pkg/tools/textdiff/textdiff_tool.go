package textdiff

import (
	"context"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/sergi/go-diff/diffmatchpatch"
)

type TextDiffTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewTextDiffTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &TextDiffTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Diff, tool.Diff)

	return tool
}

func (t *TextDiffTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type DiffParams struct {
	Original                 string `json:"original"`
	Modified                 string `json:"modified"`
	IgnoreTrailingWhitespace bool   `json:"ignore_trailing_whitespace"`
}

type LineOp string

const (
	LineOp_Equal  LineOp = "equal"
	LineOp_Insert LineOp = "insert"
	LineOp_Delete LineOp = "delete"
)

type Line struct {
	Op   LineOp `json:"op"`
	Text string `json:"text"`
}

func (t *TextDiffTool) Diff(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := DiffParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Diff))
	if err != nil {
		return nil, err
	}

	original, modified := p.Original, p.Modified
	if p.IgnoreTrailingWhitespace {
		original, modified = trimLines(original), trimLines(modified)
	}

	lines := DiffLines(original, modified)

	additions, deletions := 0, 0
	rendered := make([]string, 0, len(lines))

	for _, line := range lines {
		switch line.Op {
		case LineOp_Insert:
			additions++
			rendered = append(rendered, "+ "+line.Text)
		case LineOp_Delete:
			deletions++
			rendered = append(rendered, "- "+line.Text)
		default:
			rendered = append(rendered, "  "+line.Text)
		}
	}

	dmp := diffmatchpatch.New()
	patch := dmp.PatchToText(dmp.PatchMake(original, modified))

	return domain.Item{
		"output":    strings.Join(rendered, "\n"),
		"lines":     lines,
		"additions": additions,
		"deletions": deletions,
		"identical": additions == 0 && deletions == 0,
		"patch":     patch,
	}, nil
}

// DiffLines compares two texts line by line. A missing newline at the end of
// either text is not reported as a change.
func DiffLines(original, modified string) []Line {
	dmp := diffmatchpatch.New()

	a, b, lineArray := dmp.DiffLinesToChars(withTrailingNewline(original), withTrailingNewline(modified))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	lines := make([]Line, 0)

	for _, diff := range diffs {
		op := LineOp_Equal
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			op = LineOp_Insert
		case diffmatchpatch.DiffDelete:
			op = LineOp_Delete
		}

		for _, text := range strings.SplitAfter(diff.Text, "\n") {
			if text == "" {
				continue
			}
			lines = append(lines, Line{Op: op, Text: strings.TrimSuffix(text, "\n")})
		}
	}

	return lines
}

func withTrailingNewline(text string) string {
	if text == "" || strings.HasSuffix(text, "\n") {
		return text
	}
	return text + "\n"
}

func trimLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.Join(lines, "\n")
}
