// Package ui holds the terminal prompt used to pick a date phrase.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Placeholder shown in the empty prompt.
const Placeholder = "Open daily note by date…"

// SuggestFunc maps the typed text to the rows to show.
type SuggestFunc func(query string) []string

// PromptModel is a single-select list filtered by a text input. Rows are
// recomputed synchronously on every edit.
type PromptModel struct {
	input       textinput.Model
	suggest     SuggestFunc
	suggestions []string
	selected    int
	theme       Theme

	choice   string
	chosen   bool
	canceled bool
}

// NewPrompt creates a focused prompt showing suggest("") initially.
func NewPrompt(placeholder string, suggest SuggestFunc) PromptModel {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "› "
	input.Focus()

	m := PromptModel{
		input:   input,
		suggest: suggest,
		theme:   DefaultTheme,
	}
	m.refresh()
	return m
}

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles selection keys and forwards everything else to the input.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.canceled = true
		return m, tea.Quit
	case tea.KeyEnter:
		if len(m.suggestions) == 0 {
			return m, nil
		}
		m.choice = m.suggestions[m.selected]
		m.chosen = true
		return m, tea.Quit
	case tea.KeyDown, tea.KeyTab, tea.KeyCtrlN:
		if len(m.suggestions) > 0 {
			m.selected = (m.selected + 1) % len(m.suggestions)
		}
		return m, nil
	case tea.KeyUp, tea.KeyShiftTab, tea.KeyCtrlP:
		if len(m.suggestions) > 0 {
			m.selected = (m.selected - 1 + len(m.suggestions)) % len(m.suggestions)
		}
		return m, nil
	}

	oldValue := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != oldValue {
		m.refresh()
	}
	return m, cmd
}

func (m *PromptModel) refresh() {
	m.suggestions = m.suggest(m.input.Value())
	m.selected = 0
}

func (m PromptModel) View() string {
	if m.chosen || m.canceled {
		return ""
	}

	var content strings.Builder
	content.WriteString(m.input.View())
	content.WriteString("\n")

	for i, s := range m.suggestions {
		if i == m.selected {
			content.WriteString(m.theme.Selected.Render("▶ " + s))
		} else {
			content.WriteString(m.theme.Row.Render("  " + s))
		}
		content.WriteString("\n")
	}
	content.WriteString(m.theme.Hint.Render("↑/↓ select · enter open · esc cancel"))
	return content.String()
}

// Value returns the text typed so far.
func (m PromptModel) Value() string {
	return m.input.Value()
}

// Suggestions returns the rows currently shown.
func (m PromptModel) Suggestions() []string {
	return m.suggestions
}

// Selected returns the highlighted row.
func (m PromptModel) Selected() string {
	if len(m.suggestions) == 0 {
		return ""
	}
	return m.suggestions[m.selected]
}

// Choice returns the picked phrase; ok is false if the prompt was canceled.
func (m PromptModel) Choice() (string, bool) {
	return m.choice, m.chosen
}

// Run shows the prompt on stderr and blocks until a row is picked or the
// prompt is dismissed.
func Run(placeholder string, suggest SuggestFunc) (string, bool, error) {
	p := tea.NewProgram(NewPrompt(placeholder, suggest), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("prompt: %w", err)
	}
	m, ok := final.(PromptModel)
	if !ok {
		return "", false, fmt.Errorf("prompt: unexpected model %T", final)
	}
	choice, chosen := m.Choice()
	return choice, chosen, nil
}
