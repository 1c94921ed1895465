package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput is a focused single-line input whose Value is trimmed.
type TextInput struct {
	Model textinput.Model
}

// NewTextInput returns a focused input. limit caps the length when positive.
func NewTextInput(placeholder string, limit int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	m.CharLimit = max(limit, 0)
	m.Focus()
	return TextInput{Model: m}
}

func (t TextInput) Init() tea.Cmd { return t.Model.Focus() }

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	m, cmd := t.Model.Update(msg)
	t.Model = m
	return t, cmd
}

func (t TextInput) View() string { return t.Model.View() }

func (t TextInput) Value() string { return strings.TrimSpace(t.Model.Value()) }

// Fill replaces the text and moves the cursor after it.
func (t *TextInput) Fill(s string) {
	t.Model.SetValue(s)
	t.Model.CursorEnd()
}

func (t *TextInput) Reset() { t.Model.Reset() }
