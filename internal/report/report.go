package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/abhisek/randsample/internal/quiz"
)

// ErrEmptyTotal is returned when there is nothing to score against.
var ErrEmptyTotal = errors.New("total must be positive")

// Ratio returns score/total.
func Ratio(score, total int) float64 {
	return float64(score) / float64(total)
}

// Write prints one "<lemma>\t<0|1>" line per result followed by the summary
// line "<score>/<total> (<ratio>)" with the ratio to four decimal places.
func Write(w io.Writer, results []quiz.Result, score, total int) error {
	if total <= 0 {
		return fmt.Errorf("%w, got %d", ErrEmptyTotal, total)
	}

	bw := bufio.NewWriter(w)
	for _, r := range results {
		fmt.Fprintf(bw, "%s\t%d\n", r.Lemma, r.Known)
	}
	fmt.Fprintf(bw, "%d/%d (%.4f)\n", score, total, Ratio(score, total))

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
