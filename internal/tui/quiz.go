package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/randsample/internal/quiz"
	"github.com/abhisek/randsample/internal/ui/components"
	"github.com/abhisek/randsample/internal/ui/layout"
	"github.com/abhisek/randsample/internal/ui/theme"
)

// ErrAborted is returned when the user quits before answering every word.
var ErrAborted = errors.New("quiz aborted")

const defaultWidth = 60

// Model is the Bubble Tea model for a quiz session.
type Model struct {
	session *quiz.Session
	input   components.AnswerInput
	errMsg  string
	err     error
	aborted bool
	width   int
}

// New creates a Model driving session.
func New(session *quiz.Session) *Model {
	return &Model{
		session: session,
		input:   components.NewAnswerInput("1 or 0", 8),
		width:   defaultWidth,
	}
}

func (m *Model) Init() tea.Cmd {
	if _, err := m.session.Current(); err != nil && !errors.Is(err, quiz.ErrFinished) {
		m.err = err
		return tea.Quit
	}
	if m.session.Done() {
		return tea.Quit
	}
	return m.input.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	err := m.session.Answer(m.input.Value())
	m.input.Reset()

	switch {
	case errors.Is(err, quiz.ErrInvalidChoice):
		m.errMsg = quiz.InvalidInputMessage
		return m, nil
	case err != nil:
		m.err = err
		return m, tea.Quit
	}

	m.errMsg = ""
	if m.session.Done() {
		return m, tea.Quit
	}
	if _, err := m.session.Current(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m *Model) render() string {
	answered := m.session.Position() - 1
	if m.session.Done() {
		answered = m.session.Len()
	}

	var b strings.Builder
	b.WriteString(layout.RenderHeader("random_sample", fmt.Sprintf("score %d", m.session.Score()), m.width))
	b.WriteString("\n\n")
	b.WriteString(components.NewProgressBar(answered, m.session.Len(), m.width).View())
	b.WriteString("\n\n")

	if lemma, err := m.session.Current(); err == nil {
		card := "Do you know the word " + theme.Word.Render("'"+lemma+"'") + "?\n\n" +
			quiz.Prompt + m.input.View()
		b.WriteString(theme.Card.Render(card))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(theme.ErrorText.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(layout.RenderFooter([]layout.KeyHint{
		{Key: "1", Description: "Known"},
		{Key: "0", Description: "Unknown"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+C", Description: "Quit"},
	}))
	return b.String()
}

// Err returns the error that ended the program, if any.
func (m *Model) Err() error {
	if m.err != nil {
		return m.err
	}
	if m.aborted {
		return ErrAborted
	}
	return nil
}

// Run shows the quiz full-screen until every word is answered.
// The session holds the results afterwards.
func Run(session *quiz.Session, opts ...tea.ProgramOption) error {
	m := New(session)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run quiz ui: %w", err)
	}
	return m.Err()
}
