package quiz

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/randsample/internal/wordlist"
)

// Prompt is printed after each question and waits on the same line.
const Prompt = "(1: yes, 0: no)> "

// ErrInputClosed is returned when input ends before every word is answered.
var ErrInputClosed = errors.New("input closed before quiz finished")

// Outcome is the result of a completed quiz run.
type Outcome struct {
	RunID   string
	Score   int
	Total   int
	Results []Result
}

// Runner asks the user about each sampled word over a line-oriented
// reader/writer pair.
type Runner struct {
	in     *bufio.Reader
	out    io.Writer
	field  string
	logger *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithField sets the record field shown in prompts.
func WithField(field string) Option {
	return func(r *Runner) { r.field = field }
}

// WithLogger sets the logger for run diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// NewRunner creates a Runner reading answers from in and writing prompts to out.
func NewRunner(in io.Reader, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		in:     bufio.NewReader(in),
		out:    out,
		field:  wordlist.DefaultField,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run quizzes the user on words in order. Each word is re-asked until the
// answer is exactly "1" or "0".
func (r *Runner) Run(ctx context.Context, words []wordlist.Record) (*Outcome, error) {
	runID := uuid.NewString()
	log := r.logger.With(zap.String("run_id", runID))
	log.Debug("quiz started", zap.Int("words", len(words)), zap.String("field", r.field))

	s := NewSession(words, r.field)
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lemma, err := s.Current()
		if err != nil {
			return nil, err
		}

		for {
			fmt.Fprintf(r.out, "Do you know the word '%s'?\n", lemma)
			fmt.Fprint(r.out, Prompt)

			line, err := r.readLine()
			if err != nil {
				return nil, err
			}

			err = s.Answer(line)
			if errors.Is(err, ErrInvalidChoice) {
				log.Debug("rejected answer", zap.Int("word", s.Position()), zap.String("input", line))
				fmt.Fprintln(r.out, InvalidInputMessage)
				continue
			}
			if err != nil {
				return nil, err
			}
			break
		}
		fmt.Fprintln(r.out)
	}

	log.Debug("quiz finished", zap.Int("score", s.Score()), zap.Int("total", s.Len()))
	return &Outcome{
		RunID:   runID,
		Score:   s.Score(),
		Total:   s.Len(),
		Results: s.Results(),
	}, nil
}

// readLine returns the next line without its terminator.
func (r *Runner) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
