package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/randsample/internal/quiz"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name    string
		results []quiz.Result
		score   int
		total   int
		want    string
	}{
		{
			name:    "half known",
			results: []quiz.Result{{Lemma: "a", Known: 1}, {Lemma: "c", Known: 0}},
			score:   1,
			total:   2,
			want:    "a\t1\nc\t0\n1/2 (0.5000)\n",
		},
		{
			name:    "repeating ratio",
			results: []quiz.Result{{Lemma: "x", Known: 1}, {Lemma: "y", Known: 0}, {Lemma: "z", Known: 0}},
			score:   1,
			total:   3,
			want:    "x\t1\ny\t0\nz\t0\n1/3 (0.3333)\n",
		},
		{
			name:    "all known",
			results: []quiz.Result{{Lemma: "x", Known: 1}},
			score:   1,
			total:   1,
			want:    "x\t1\n1/1 (1.0000)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, tt.results, tt.score, tt.total))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWrite_ZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, nil, 0, 0)
	assert.True(t, errors.Is(err, ErrEmptyTotal))
	assert.Empty(t, buf.String())
}

func TestRatio(t *testing.T) {
	assert.InDelta(t, 0.25, Ratio(1, 4), 1e-9)
}
