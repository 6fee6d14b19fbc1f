package cli

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"

	"github.com/charmbracelet/huh"
)

// answer holds what the user typed for one property.
type answer struct {
	property domain.ToolProperty
	text     string
	flag     bool
}

// pendingAnswers lists the properties of action that settings does not set yet,
// pre-filled with their defaults.
func pendingAnswers(action domain.ToolAction, settings domain.Item) []*answer {
	answers := make([]*answer, 0, len(action.Properties))

	for _, property := range action.Properties {
		if _, ok := settings[property.Key]; ok {
			continue
		}

		a := &answer{property: property}
		switch value := property.Default.(type) {
		case nil:
		case bool:
			a.flag = value
		default:
			a.text = fmt.Sprint(value)
		}

		answers = append(answers, a)
	}

	return answers
}

func answersForm(answers []*answer) *huh.Form {
	fields := make([]huh.Field, 0, len(answers))

	for _, a := range answers {
		title := a.property.Name
		if a.property.Required {
			title += " *"
		}

		switch a.property.Type {
		case domain.ToolPropertyType_Boolean:
			fields = append(fields, huh.NewConfirm().
				Title(title).
				Description(a.property.Description).
				Value(&a.flag))

		case domain.ToolPropertyType_Select:
			options := make([]huh.Option[string], 0, len(a.property.Options))
			for _, option := range a.property.Options {
				options = append(options, huh.NewOption(option.Label, fmt.Sprint(option.Value)))
			}
			fields = append(fields, huh.NewSelect[string]().
				Title(title).
				Description(a.property.Description).
				Options(options...).
				Value(&a.text))

		case domain.ToolPropertyType_Text:
			fields = append(fields, huh.NewText().
				Title(title).
				Description(a.property.Description).
				Value(&a.text))

		case domain.ToolPropertyType_Integer:
			fields = append(fields, huh.NewInput().
				Title(title).
				Description(a.property.Description).
				Validate(validateWholeNumber).
				Value(&a.text))

		default:
			description := a.property.Description
			if a.property.Type == domain.ToolPropertyType_File {
				description = "Path to a file. " + description
			}
			fields = append(fields, huh.NewInput().
				Title(title).
				Description(description).
				Value(&a.text))
		}
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

func validateWholeNumber(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
		return fmt.Errorf("must be a whole number")
	}

	return nil
}

// applyAnswers copies answers into settings. Blank answers are left out so
// the tool's own defaults and required checks apply.
func applyAnswers(answers []*answer, settings domain.Item) error {
	for _, a := range answers {
		key := a.property.Key

		switch a.property.Type {
		case domain.ToolPropertyType_Boolean:
			settings[key] = a.flag
			continue
		case domain.ToolPropertyType_File:
			path := strings.TrimSpace(a.text)
			if path == "" {
				continue
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			settings[key] = base64.StdEncoding.EncodeToString(data)
			continue
		}

		if strings.TrimSpace(a.text) == "" {
			continue
		}

		settings[key] = a.text
	}

	return nil
}
