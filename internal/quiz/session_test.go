package quiz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/randsample/internal/wordlist"
)

func words(lemmas ...string) []wordlist.Record {
	out := make([]wordlist.Record, len(lemmas))
	for i, l := range lemmas {
		out[i] = wordlist.Record{"lemma": l}
	}
	return out
}

func TestSession_AnswerFlow(t *testing.T) {
	s := NewSession(words("a", "b"), "")

	got, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, "a", got)
	assert.Equal(t, 1, s.Position())

	require.NoError(t, s.Answer("1"))
	assert.Equal(t, Valid, s.State())

	got, err = s.Current()
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	require.NoError(t, s.Answer("0"))
	assert.True(t, s.Done())
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, []Result{{"a", 1}, {"b", 0}}, s.Results())
}

func TestSession_InvalidInputStaysOnWord(t *testing.T) {
	s := NewSession(words("a"), "lemma")

	for _, in := range []string{"x", "", "2", "3", " 1", "1 ", "yes", "01"} {
		err := s.Answer(in)
		require.Error(t, err, "input %q", in)
		assert.True(t, errors.Is(err, ErrInvalidChoice))
		assert.Equal(t, AwaitingInput, s.State())
		assert.False(t, s.Done())
	}

	require.NoError(t, s.Answer("1"))
	assert.True(t, s.Done())
	assert.Equal(t, 1, s.Score())
}

func TestSession_MissingField(t *testing.T) {
	s := NewSession([]wordlist.Record{{"lemma": "a"}, {"word": "b"}}, "")
	require.NoError(t, s.Answer("0"))

	_, err := s.Current()
	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, 1, missing.Index)
	assert.Equal(t, "lemma", missing.Field)
	assert.Contains(t, err.Error(), "word 2")
}

func TestSession_CustomField(t *testing.T) {
	s := NewSession([]wordlist.Record{{"lemma": "run", "form": "running"}}, "form")
	got, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, "running", got)
}

func TestSession_Finished(t *testing.T) {
	s := NewSession(nil, "")
	assert.True(t, s.Done())

	_, err := s.Current()
	assert.True(t, errors.Is(err, ErrFinished))
	assert.True(t, errors.Is(s.Answer("1"), ErrFinished))
}

func TestSession_ResultsIsCopy(t *testing.T) {
	s := NewSession(words("a"), "")
	require.NoError(t, s.Answer("1"))

	r := s.Results()
	r[0].Known = 0
	assert.Equal(t, 1, s.Results()[0].Known)
}
