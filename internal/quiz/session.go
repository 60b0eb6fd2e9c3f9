package quiz

import (
	"errors"
	"fmt"

	"github.com/abhisek/randsample/internal/wordlist"
)

// Accepted answers.
const (
	AnswerYes = "1"
	AnswerNo  = "0"
)

// InvalidInputMessage is shown when an answer is neither "1" nor "0".
const InvalidInputMessage = "Error: Invalid input. Must be '1' or '0'."

var (
	// ErrInvalidChoice is returned by Answer for unrecognized input. The
	// session stays on the current word.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrFinished is returned when the session has no words left.
	ErrFinished = errors.New("quiz already finished")
)

// MissingFieldError reports a sampled record without the prompt field.
type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("word %d has no %q field", e.Index+1, e.Field)
}

// State is the per-word answer state.
type State int

const (
	AwaitingInput State = iota
	Valid
)

// Result is the recorded answer for one word.
type Result struct {
	Lemma string
	Known int // 1 if known, 0 otherwise
}

// Session walks an ordered sample one word at a time.
type Session struct {
	words   []wordlist.Record
	field   string
	index   int
	state   State
	score   int
	results []Result
}

// NewSession creates a session over words prompting with field.
// An empty field means wordlist.DefaultField.
func NewSession(words []wordlist.Record, field string) *Session {
	if field == "" {
		field = wordlist.DefaultField
	}
	return &Session{
		words:   words,
		field:   field,
		results: make([]Result, 0, len(words)),
	}
}

// Current returns the word awaiting an answer.
func (s *Session) Current() (string, error) {
	if s.Done() {
		return "", ErrFinished
	}
	v, ok := s.words[s.index].Get(s.field)
	if !ok {
		return "", &MissingFieldError{Index: s.index, Field: s.field}
	}
	return v, nil
}

// Answer applies input to the current word. Only an exact "1" or "0" moves
// to the next word; anything else returns ErrInvalidChoice.
func (s *Session) Answer(input string) error {
	lemma, err := s.Current()
	if err != nil {
		return err
	}

	var known int
	switch input {
	case AnswerYes:
		known = 1
	case AnswerNo:
		known = 0
	default:
		s.state = AwaitingInput
		return fmt.Errorf("%w: %q", ErrInvalidChoice, input)
	}

	s.state = Valid
	s.score += known
	s.results = append(s.results, Result{Lemma: lemma, Known: known})
	s.index++
	return nil
}

// State returns the outcome of the last answer attempt. It is Valid only
// right after an accepted answer.
func (s *Session) State() State { return s.state }

// Done reports whether every word has been answered.
func (s *Session) Done() bool { return s.index >= len(s.words) }

// Position returns the 1-based number of the current word.
func (s *Session) Position() int { return s.index + 1 }

// Len returns the number of words in the session.
func (s *Session) Len() int { return len(s.words) }

// Score returns the number of words answered "1".
func (s *Session) Score() int { return s.score }

// Results returns the answers recorded so far, in sample order.
func (s *Session) Results() []Result {
	return append([]Result(nil), s.results...)
}
