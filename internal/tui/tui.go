// Package tui is the interactive terminal front end: a filterable catalog of
// tools and a form for the selected tool that recomputes as you type.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
)

var clipboardWriteAll = clipboard.WriteAll

type screen int

const (
	screenCatalog screen = iota
	screenWidget
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	fieldWidth    = 60
)

type toolItem struct {
	tool domain.Tool
}

func (i toolItem) Title() string       { return i.tool.Name }
func (i toolItem) Description() string { return i.tool.Description }
func (i toolItem) FilterValue() string {
	return i.tool.Name + " " + string(i.tool.ID) + " " + strings.Join(i.tool.Keywords, " ")
}

// appliedMsg carries the widget state after an invocation finished.
type appliedMsg struct {
	snapshot domain.WidgetSnapshot
	applied  bool
}

type settingsErrMsg struct {
	err error
}

type Model struct {
	ctx      context.Context
	registry domain.ToolRegistry
	styles   styles

	screen      screen
	categories  []domain.CategoryInfo
	categoryIdx int
	catalog     list.Model

	widget   *domain.Widget
	fields   []field
	focus    int
	output   viewport.Model
	snapshot domain.WidgetSnapshot
	status   string

	width  int
	height int
}

func New(ctx context.Context, registry domain.ToolRegistry) Model {
	delegate := list.NewDefaultDelegate()

	catalog := list.New(nil, delegate, defaultWidth, defaultHeight-4)
	catalog.Title = "devtoolbox"
	catalog.SetShowHelp(false)

	categories := append([]domain.CategoryInfo{{ID: domain.Category_All, Name: "All"}}, domain.Categories...)

	m := Model{
		ctx:        ctx,
		registry:   registry,
		styles:     defaultStyles(),
		screen:     screenCatalog,
		categories: categories,
		catalog:    catalog,
		output:     viewport.New(defaultWidth, defaultHeight/2),
		width:      defaultWidth,
		height:     defaultHeight,
	}

	m.refreshCatalog()

	return m
}

// Run starts the full screen program and blocks until the user quits.
func Run(ctx context.Context, registry domain.ToolRegistry) error {
	program := tea.NewProgram(New(ctx, registry), tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}

	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Category() domain.Category {
	return m.categories[m.categoryIdx].ID
}

func (m *Model) refreshCatalog() {
	tools := m.registry.FilterByCategory(m.Category())

	items := make([]list.Item, 0, len(tools))
	for _, tool := range tools {
		items = append(items, toolItem{tool: tool})
	}

	m.catalog.SetItems(items)
	m.catalog.ResetSelected()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.catalog.SetSize(msg.Width, msg.Height-4)
		m.output.Width = msg.Width - 4
		m.output.Height = max(msg.Height/3, 5)
		return m, nil

	case appliedMsg:
		if msg.applied && m.widget != nil && msg.snapshot.ToolID == m.widget.Tool().ID {
			m.snapshot = msg.snapshot
			m.output.SetContent(m.renderOutput())
			m.output.GotoTop()
		}
		return m, nil

	case settingsErrMsg:
		m.snapshot = domain.WidgetSnapshot{State: domain.WidgetState_Error, Error: msg.err.Error()}
		if toolErr := domain.AsToolError(msg.err); toolErr != nil {
			m.snapshot.Error = toolErr.Message
			m.snapshot.ErrorKind = toolErr.Kind
		}
		m.output.SetContent(m.renderOutput())
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.screen == screenWidget {
			return m.updateWidget(msg)
		}
		return m.updateCatalog(msg)
	}

	if m.screen == screenCatalog {
		var cmd tea.Cmd
		m.catalog, cmd = m.catalog.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.catalog.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.catalog, cmd = m.catalog.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.categoryIdx = (m.categoryIdx + 1) % len(m.categories)
		m.refreshCatalog()
		return m, nil
	case "shift+tab":
		m.categoryIdx = (m.categoryIdx + len(m.categories) - 1) % len(m.categories)
		m.refreshCatalog()
		return m, nil
	case "enter":
		item, ok := m.catalog.SelectedItem().(toolItem)
		if !ok {
			return m, nil
		}
		return m, m.open(item.tool)
	}

	var cmd tea.Cmd
	m.catalog, cmd = m.catalog.Update(msg)
	return m, cmd
}

// open switches to the widget screen for tool.
func (m *Model) open(tool domain.Tool) tea.Cmd {
	executor, err := m.registry.Select(m.ctx, domain.SelectToolParams{ToolType: tool.ID})
	if err != nil {
		m.status = m.styles.Error.Render(err.Error())
		return nil
	}

	log.Debug().Str("tool_id", string(tool.ID)).Msg("Opening tool")

	m.widget = domain.NewWidget(tool, executor)
	m.screen = screenWidget
	m.status = ""

	return m.buildFields()
}

func (m *Model) buildFields() tea.Cmd {
	properties := m.widget.Tool().Properties(m.widget.ActionType())

	m.fields = make([]field, 0, len(properties))
	for _, property := range properties {
		m.fields = append(m.fields, newField(property, min(fieldWidth, m.width-4)))
	}

	m.focus = 0
	m.snapshot = m.widget.Snapshot()
	m.output.SetContent("")

	if len(m.fields) == 0 {
		return nil
	}

	return m.fields[0].Focus()
}

func (m Model) updateWidget(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = screenCatalog
		m.widget = nil
		m.fields = nil
		m.status = ""
		return m, nil
	case "tab", "shift+tab":
		if len(m.fields) == 0 {
			return m, nil
		}
		m.fields[m.focus].Blur()
		step := 1
		if msg.String() == "shift+tab" {
			step = len(m.fields) - 1
		}
		m.focus = (m.focus + step) % len(m.fields)
		return m, m.fields[m.focus].Focus()
	case "ctrl+a":
		return m, m.nextAction()
	case "ctrl+r":
		return m, m.applyCmd()
	case "ctrl+y":
		m.copyOutput()
		return m, nil
	case "enter":
		if len(m.fields) == 0 || !m.fields[m.focus].multiline {
			return m, m.applyCmd()
		}
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}

	if len(m.fields) == 0 {
		return m, nil
	}

	before := m.fields[m.focus].Value()
	cmd := m.fields[m.focus].Update(msg)

	if m.fields[m.focus].Value() == before || m.isRandom() {
		return m, cmd
	}

	return m, tea.Batch(cmd, m.applyCmd())
}

func (m Model) isRandom() bool {
	action, _ := m.widget.Tool().Action(m.widget.ActionType())
	return action.IsRandom
}

func (m *Model) nextAction() tea.Cmd {
	actions := m.widget.Tool().Actions
	if len(actions) < 2 {
		return nil
	}

	current := m.widget.ActionType()
	next := actions[0].ActionType
	for i, action := range actions {
		if action.ActionType == current {
			next = actions[(i+1)%len(actions)].ActionType
			break
		}
	}

	if err := m.widget.SelectAction(next); err != nil {
		m.status = m.styles.Error.Render(err.Error())
		return nil
	}

	return m.buildFields()
}

// applyCmd runs the active action off the UI loop; stale results are dropped by the widget.
func (m Model) applyCmd() tea.Cmd {
	item, err := settings(m.fields)
	if err != nil {
		return func() tea.Msg { return settingsErrMsg{err: err} }
	}

	ctx := m.ctx
	widget := m.widget

	return func() tea.Msg {
		snapshot, applied := widget.Apply(ctx, item)
		return appliedMsg{snapshot: snapshot, applied: applied}
	}
}

func (m *Model) copyOutput() {
	if m.snapshot.State != domain.WidgetState_ValidOutput {
		m.status = m.styles.Muted.Render("Nothing to copy")
		return
	}

	if err := clipboardWriteAll(outputText(m.snapshot.Output)); err != nil {
		m.status = m.styles.Error.Render(fmt.Sprintf("Copy failed: %v", err))
		return
	}

	m.status = m.styles.Success.Render("Copied to clipboard")
}

// outputText is what gets shown and copied: the primary output when it is
// text, otherwise the whole result as JSON.
func outputText(output domain.Item) string {
	if text, ok := output["output"].(string); ok {
		return text
	}

	text, err := toolkit.MarshalPretty(output)
	if err != nil {
		return err.Error()
	}

	return text
}

func (m Model) renderOutput() string {
	switch m.snapshot.State {
	case domain.WidgetState_ValidOutput:
		return outputText(m.snapshot.Output)
	case domain.WidgetState_Error:
		return m.styles.Error.Render(m.snapshot.Error)
	}

	return ""
}

func (m Model) View() string {
	if m.screen == screenWidget {
		return m.widgetView()
	}

	return m.catalogView()
}

func (m Model) catalogView() string {
	tabs := make([]string, 0, len(m.categories))
	for i, category := range m.categories {
		style := m.styles.Tab
		if i == m.categoryIdx {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(category.Name))
	}

	help := m.styles.Help.Render("tab/shift+tab category • / filter • enter open • q quit")

	parts := []string{lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.catalog.View()}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts, help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) widgetView() string {
	tool := m.widget.Tool()
	action, _ := tool.Action(m.widget.ActionType())

	var b strings.Builder

	b.WriteString(m.styles.Title.Render(tool.Name))
	if len(tool.Actions) > 1 {
		b.WriteString(m.styles.Muted.Render(" · " + action.Name))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(action.Description))
	b.WriteString("\n\n")

	for i := range m.fields {
		label := m.fields[i].property.Name
		if m.fields[i].property.Required {
			label += " *"
		}
		b.WriteString(m.styles.Label.Render(label))
		b.WriteString("\n")
		b.WriteString(m.fields[i].View())
		b.WriteString("\n\n")
	}

	if m.snapshot.State != domain.WidgetState_Idle {
		b.WriteString(m.styles.Output.Render(m.output.View()))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	help := "tab next field • enter/ctrl+r run • ctrl+y copy • esc back"
	if len(tool.Actions) > 1 {
		help = "ctrl+a switch action • " + help
	}
	b.WriteString(m.styles.Help.Render(help))

	return b.String()
}
