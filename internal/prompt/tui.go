package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/initgen-labs/initgen/internal/wizard"
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)
	stylePrompt = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// TUI prompts with full-screen list and text-input widgets.
type TUI struct{}

// NewTUI creates a terminal UI prompter.
func NewTUI() *TUI {
	return &TUI{}
}

type optionItem struct {
	title string
	desc  string
	value string
}

func (i optionItem) Title() string       { return i.title }
func (i optionItem) Description() string { return i.desc }
func (i optionItem) FilterValue() string { return i.title }

func newOptionList(title string, items []list.Item) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(lipgloss.Color("205")).Bold(true)
	delegate.Styles.NormalDesc = delegate.Styles.NormalDesc.Foreground(lipgloss.Color("244")).Italic(true)
	l := list.New(items, delegate, 0, 0)
	l.Title = styleTitle.Render(title)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)
	return l
}

type selectModel struct {
	list   list.Model
	choice string
	chosen bool
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(optionItem); ok {
				m.choice = item.value
				m.chosen = true
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	return m.list.View() + "\n" + stylePrompt.Render("Use ↑/↓ to move, Enter to select, q to cancel.")
}

// Select shows a full-screen single-choice list.
func (t *TUI) Select(title string, items []wizard.SelectItem) (string, bool, error) {
	listItems := make([]list.Item, 0, len(items))
	for _, item := range items {
		listItems = append(listItems, optionItem{title: item.Label, desc: item.Detail, value: item.ID})
	}

	result, err := tea.NewProgram(selectModel{list: newOptionList(title, listItems)}).Run()
	if err != nil {
		return "", false, fmt.Errorf("running selection prompt: %w", err)
	}
	final, ok := result.(selectModel)
	if !ok {
		return "", false, fmt.Errorf("selection prompt returned no result")
	}
	return final.choice, final.chosen, nil
}

type inputModel struct {
	title         string
	input         textinput.Model
	validate      func(string) error
	validationErr string
	value         string
	submitted     bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if m.validate != nil {
				if err := m.validate(value); err != nil {
					m.validationErr = err.Error()
					return m, nil
				}
			}
			m.value = value
			m.submitted = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	header := ""
	if m.validationErr != "" {
		header = styleError.Render(m.validationErr) + "\n\n"
	}
	return header + styleTitle.Render(m.title) + "\n\n" + m.input.View() + "\n\n" +
		stylePrompt.Render("Press Enter to continue, Esc to cancel.")
}

// Input shows a text field seeded with initial; values rejected by
// validate keep the field open with the error displayed inline.
func (t *TUI) Input(title, initial string, validate func(string) error) (string, bool, error) {
	ti := textinput.New()
	ti.Prompt = stylePrompt.Render("> ")
	ti.SetValue(initial)
	ti.Focus()

	result, err := tea.NewProgram(inputModel{title: title, input: ti, validate: validate}).Run()
	if err != nil {
		return "", false, fmt.Errorf("running input prompt: %w", err)
	}
	final, ok := result.(inputModel)
	if !ok {
		return "", false, fmt.Errorf("input prompt returned no result")
	}
	return final.value, final.submitted, nil
}

// PickFolder asks for a directory path, defaulting to the working directory.
func (t *TUI) PickFolder(title string) (string, bool, error) {
	cwd, _ := os.Getwd()
	dir, ok, err := t.Input(title, cwd, nil)
	if err != nil || !ok {
		return "", ok, err
	}
	if dir == "" {
		dir = cwd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false, fmt.Errorf("resolving directory %q: %w", dir, err)
	}
	return abs, true, nil
}
