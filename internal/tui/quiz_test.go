package tui

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/randsample/internal/quiz"
	"github.com/abhisek/randsample/internal/wordlist"
)

func newTestModel(lemmas ...string) (*Model, *quiz.Session) {
	words := make([]wordlist.Record, len(lemmas))
	for i, l := range lemmas {
		words[i] = wordlist.Record{"lemma": l}
	}
	s := quiz.NewSession(words, "")
	return New(s), s
}

func answer(m *Model, input string) tea.Cmd {
	m.input.Model.SetValue(input)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_AnswersAdvance(t *testing.T) {
	m, s := newTestModel("a", "b")

	assert.False(t, isQuit(answer(m, "1")))
	assert.Equal(t, 2, s.Position())
	assert.Empty(t, m.input.Value())

	assert.True(t, isQuit(answer(m, "0")))
	assert.True(t, s.Done())
	assert.NoError(t, m.Err())
	assert.Equal(t, []quiz.Result{{Lemma: "a", Known: 1}, {Lemma: "b", Known: 0}}, s.Results())
}

func TestModel_InvalidInputShowsError(t *testing.T) {
	m, s := newTestModel("a")

	assert.False(t, isQuit(answer(m, "x")))
	assert.Equal(t, quiz.InvalidInputMessage, m.errMsg)
	assert.Equal(t, 1, s.Position())
	assert.Contains(t, m.render(), quiz.InvalidInputMessage)

	assert.True(t, isQuit(answer(m, "1")))
	assert.Empty(t, m.errMsg)
	assert.Equal(t, 1, s.Score())
}

func TestModel_CtrlCAborts(t *testing.T) {
	m, _ := newTestModel("a")

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	assert.True(t, isQuit(cmd))
	assert.True(t, errors.Is(m.Err(), ErrAborted))
}

func TestModel_MissingFieldStops(t *testing.T) {
	s := quiz.NewSession([]wordlist.Record{{"lemma": "a"}, {"word": "b"}}, "")
	m := New(s)

	assert.True(t, isQuit(answer(m, "1")))
	var missing *quiz.MissingFieldError
	require.True(t, errors.As(m.Err(), &missing))
}

func TestModel_InitOnEmptySessionQuits(t *testing.T) {
	m, _ := newTestModel()
	assert.True(t, isQuit(m.Init()))
	assert.NoError(t, m.Err())
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel("serendipity")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.render()
	assert.Contains(t, view, "serendipity")
	assert.Contains(t, view, "0/1")
	assert.True(t, strings.Contains(view, "random_sample"))
}
