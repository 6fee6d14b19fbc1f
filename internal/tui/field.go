package tui

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// field is one editable setting. Text properties get a multi-line area,
// everything else a single-line input.
type field struct {
	property  domain.ToolProperty
	input     textinput.Model
	area      textarea.Model
	multiline bool
}

func newField(property domain.ToolProperty, width int) field {
	f := field{
		property:  property,
		multiline: property.Type == domain.ToolPropertyType_Text,
	}

	placeholder := property.Placeholder
	if placeholder == "" && property.Default != nil {
		placeholder = fmt.Sprint(property.Default)
	}
	if property.Type == domain.ToolPropertyType_File {
		placeholder = "path to a file"
	}
	if len(property.Options) > 0 {
		values := make([]string, 0, len(property.Options))
		for _, option := range property.Options {
			values = append(values, fmt.Sprint(option.Value))
		}
		placeholder = strings.Join(values, " | ")
	}

	if f.multiline {
		f.area = textarea.New()
		f.area.Placeholder = placeholder
		f.area.ShowLineNumbers = false
		f.area.SetWidth(width)
		f.area.SetHeight(5)
		f.area.Blur()
		return f
	}

	f.input = textinput.New()
	f.input.Placeholder = placeholder
	f.input.Width = width
	f.input.Blur()

	return f
}

func (f *field) Value() string {
	if f.multiline {
		return f.area.Value()
	}
	return f.input.Value()
}

func (f *field) Focus() tea.Cmd {
	if f.multiline {
		return f.area.Focus()
	}
	return f.input.Focus()
}

func (f *field) Blur() {
	if f.multiline {
		f.area.Blur()
		return
	}
	f.input.Blur()
}

func (f *field) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.multiline {
		f.area, cmd = f.area.Update(msg)
	} else {
		f.input, cmd = f.input.Update(msg)
	}
	return cmd
}

func (f *field) View() string {
	if f.multiline {
		return f.area.View()
	}
	return f.input.View()
}

// settings collects the non-empty fields. File fields hold a path whose
// content is sent base64 encoded.
func settings(fields []field) (domain.Item, error) {
	item := domain.Item{}

	for i := range fields {
		value := fields[i].Value()
		if strings.TrimSpace(value) == "" {
			continue
		}

		if fields[i].property.Type == domain.ToolPropertyType_File {
			data, err := os.ReadFile(strings.TrimSpace(value))
			if err != nil {
				return nil, domain.WrapInvalidInput(err, fmt.Sprintf("Cannot read %s: %s", fields[i].property.Name, err))
			}
			value = base64.StdEncoding.EncodeToString(data)
		}

		item[fields[i].property.Key] = value
	}

	return item, nil
}
