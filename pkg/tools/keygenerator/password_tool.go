package keygenerator

import (
	"context"
	"math/rand/v2"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type PasswordTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewPasswordTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &PasswordTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Generate, tool.Generate)

	return tool
}

func (t *PasswordTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type PasswordParams struct {
	Length    int  `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Digits    bool `json:"digits"`
	Symbols   bool `json:"symbols"`
	Count     int  `json:"count"`
}

// Classes lists the alphabets of the selected character classes.
func (p PasswordParams) Classes() []string {
	var classes []string
	if p.Uppercase {
		classes = append(classes, AlphabetUppercase)
	}
	if p.Lowercase {
		classes = append(classes, AlphabetLowercase)
	}
	if p.Digits {
		classes = append(classes, AlphabetDigits)
	}
	if p.Symbols {
		classes = append(classes, AlphabetSymbols)
	}
	return classes
}

func (t *PasswordTool) Generate(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := PasswordParams{}

	err := t.binder.BindToStruct(ctx, item, &p, PasswordSchema.Properties(ToolActionType_Generate))
	if err != nil {
		return nil, err
	}

	classes := p.Classes()
	if len(classes) == 0 {
		return nil, domain.NewInvalidInputError("Select at least one character set")
	}

	if p.Length < len(classes) {
		return nil, domain.NewInvalidInputError("Length must be at least %d to include every selected character set", len(classes))
	}

	return generateItems(p.Count, func() (string, error) {
		return GeneratePassword(p.Length, classes)
	})
}

// GeneratePassword draws one character from every class, fills the rest
// from the union of the classes and shuffles the result.
func GeneratePassword(length int, classes []string) (string, error) {
	password := make([]byte, 0, length)

	var union string
	for _, class := range classes {
		c, err := pick(class)
		if err != nil {
			return "", err
		}

		password = append(password, c)
		union += class
	}

	if rest := length - len(password); rest > 0 {
		filler, err := gonanoid.Generate(union, rest)
		if err != nil {
			return "", err
		}

		password = append(password, filler...)
	}

	rand.Shuffle(len(password), func(i, j int) {
		password[i], password[j] = password[j], password[i]
	})

	return string(password), nil
}
