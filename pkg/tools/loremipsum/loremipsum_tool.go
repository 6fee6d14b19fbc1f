package loremipsum

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"
)

var vocabulary = strings.Fields(`lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod
tempor incididunt ut labore et dolore magna aliqua enim ad minim veniam quis nostrud exercitation
ullamco laboris nisi aliquip ex ea commodo consequat duis aute irure in reprehenderit voluptate velit
esse cillum eu fugiat nulla pariatur excepteur sint occaecat cupidatat non proident sunt culpa qui
officia deserunt mollit anim id est laborum`)

var opening = []string{"lorem", "ipsum", "dolor", "sit", "amet"}

type LoremIpsumTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewLoremIpsumTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &LoremIpsumTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Generate, tool.Generate)

	return tool
}

func (t *LoremIpsumTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type GenerateParams struct {
	Unit           string `json:"unit"`
	Count          int    `json:"count"`
	StartWithLorem bool   `json:"start_with_lorem"`
}

func (t *LoremIpsumTool) Generate(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := GenerateParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Generate))
	if err != nil {
		return nil, err
	}

	g := &generator{}
	if p.StartWithLorem {
		g.pending = append(g.pending, opening...)
	}

	var output string

	switch p.Unit {
	case "words":
		output = strings.Join(g.words(p.Count), " ")
	case "sentences":
		sentences := make([]string, p.Count)
		for i := range sentences {
			sentences[i] = g.sentence()
		}
		output = strings.Join(sentences, " ")
	default:
		paragraphs := make([]string, p.Count)
		for i := range paragraphs {
			paragraphs[i] = g.paragraph()
		}
		output = strings.Join(paragraphs, "\n\n")
	}

	return domain.Item{
		"output": output,
		"words":  len(strings.Fields(output)),
	}, nil
}

// generator draws words at random, first handing out any pending words.
type generator struct {
	pending []string
}

func (g *generator) word() string {
	if len(g.pending) > 0 {
		w := g.pending[0]
		g.pending = g.pending[1:]
		return w
	}

	return vocabulary[rand.IntN(len(vocabulary))]
}

func (g *generator) words(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = g.word()
	}
	return words
}

func (g *generator) sentence() string {
	words := g.words(8 + rand.IntN(8))

	words[0] = toolkit.Capitalize(words[0])
	if rand.IntN(2) == 0 {
		comma := 5 + rand.IntN(len(words)-6)
		words[comma] += ","
	}

	return strings.Join(words, " ") + "."
}

func (g *generator) paragraph() string {
	sentences := make([]string, 4+rand.IntN(4))
	for i := range sentences {
		sentences[i] = g.sentence()
	}
	return strings.Join(sentences, " ")
}
