package textstats

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/rivo/uniseg"
)

var paragraphSeparator = regexp.MustCompile(`\n[ \t\r]*\n`)

type TextStatsTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewTextStatsTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &TextStatsTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Analyze, tool.Analyze)

	return tool
}

func (t *TextStatsTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type AnalyzeParams struct {
	Text           string `json:"text"`
	WordsPerMinute int    `json:"words_per_minute"`
}

type Stats struct {
	Characters             int `json:"characters"`
	CharactersWithoutSpace int `json:"characters_without_spaces"`
	Bytes                  int `json:"bytes"`
	Words                  int `json:"words"`
	Sentences              int `json:"sentences"`
	Lines                  int `json:"lines"`
	Paragraphs             int `json:"paragraphs"`
	ReadingTimeMinutes     int `json:"reading_time_minutes"`
}

func (t *TextStatsTool) Analyze(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := AnalyzeParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Analyze))
	if err != nil {
		return nil, err
	}

	stats := Compute(p.Text, p.WordsPerMinute)

	return domain.Item{
		"output": fmt.Sprintf(
			"Characters: %d\nCharacters (no spaces): %d\nWords: %d\nSentences: %d\nLines: %d\nParagraphs: %d\nReading time: %d min",
			stats.Characters, stats.CharactersWithoutSpace, stats.Words, stats.Sentences, stats.Lines, stats.Paragraphs, stats.ReadingTimeMinutes,
		),
		"characters":                stats.Characters,
		"characters_without_spaces": stats.CharactersWithoutSpace,
		"bytes":                     stats.Bytes,
		"words":                     stats.Words,
		"sentences":                 stats.Sentences,
		"lines":                     stats.Lines,
		"paragraphs":                stats.Paragraphs,
		"reading_time_minutes":      stats.ReadingTimeMinutes,
	}, nil
}

// Compute counts user-perceived characters (grapheme clusters), so an emoji
// with modifiers or a letter with a combining accent counts once.
func Compute(text string, wordsPerMinute int) Stats {
	if wordsPerMinute <= 0 {
		wordsPerMinute = 200
	}

	stats := Stats{
		Bytes: len(text),
		Words: len(strings.Fields(text)),
	}

	graphemes := uniseg.NewGraphemes(text)
	for graphemes.Next() {
		stats.Characters++
		if !isSpace(graphemes.Runes()) {
			stats.CharactersWithoutSpace++
		}
	}

	stats.Sentences = countSentences(text)

	if text != "" {
		stats.Lines = strings.Count(text, "\n") + 1
	}

	for _, paragraph := range paragraphSeparator.Split(text, -1) {
		if strings.TrimSpace(paragraph) != "" {
			stats.Paragraphs++
		}
	}

	stats.ReadingTimeMinutes = (stats.Words + wordsPerMinute - 1) / wordsPerMinute

	return stats
}

func countSentences(text string) int {
	count := 0
	state := -1

	rest := text
	for len(rest) > 0 {
		var sentence string
		sentence, rest, state = uniseg.FirstSentenceInString(rest, state)

		if strings.IndexFunc(sentence, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }) >= 0 {
			count++
		}
	}

	return count
}

func isSpace(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
