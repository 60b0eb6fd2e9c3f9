package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// AnswerInput wraps bubbles/textinput for single-line quiz answers.
type AnswerInput struct {
	Model textinput.Model
}

// NewAnswerInput creates a focused input limited to maxWidth characters.
func NewAnswerInput(placeholder string, maxWidth int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input.
func (a AnswerInput) View() string {
	return a.Model.View()
}

// Value returns the typed text.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Reset clears the typed text.
func (a *AnswerInput) Reset() {
	a.Model.Reset()
}
