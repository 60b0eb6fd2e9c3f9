package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/randsample/internal/quiz"
	"github.com/abhisek/randsample/internal/report"
	"github.com/abhisek/randsample/internal/sampler"
	"github.com/abhisek/randsample/internal/tui"
	"github.com/abhisek/randsample/internal/wordlist"
)

// runQuiz loads the word list, draws the stratified sample, quizzes the user
// and prints the report.
func runQuiz(cmd *cobra.Command, args []string, logger *zap.Logger) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	strata, err := parseCount("stratum_count", args[1])
	if err != nil {
		return err
	}
	perStratum, err := parseCount("samples_per_stratum", args[2])
	if err != nil {
		return err
	}

	list, err := wordlist.Load(args[0], wordlist.Options{HeaderLine: cfg.HeaderLine})
	if err != nil {
		return err
	}
	logger.Debug("loaded word list",
		zap.String("path", args[0]),
		zap.Int("records", list.Len()),
		zap.Strings("header", list.Header))

	policy := cfg.RemainderPolicy()
	bounds, err := sampler.Bounds(list.Len(), strata, policy)
	if err != nil {
		return err
	}
	if dropped := sampler.Dropped(list.Len(), bounds); dropped > 0 {
		logger.Warn("trailing records fall outside every stratum and will not be sampled",
			zap.Int("dropped", dropped),
			zap.Stringer("policy", policy))
	}

	sample, err := sampler.Sample(sampler.NewRand(cfg.Seed), list.Records, strata, perStratum, policy)
	if err != nil {
		return fmt.Errorf("sample word list: %w", err)
	}

	var (
		results []quiz.Result
		score   int
	)
	useTUI, _ := cmd.Flags().GetBool("tui")
	if useTUI {
		runLog := logger.With(zap.String("run_id", uuid.NewString()))
		runLog.Debug("starting quiz ui", zap.Int("words", len(sample)))

		session := quiz.NewSession(sample, cfg.Field)
		if err := tui.Run(session); err != nil {
			return err
		}
		results, score = session.Results(), session.Score()
		runLog.Debug("quiz ui finished", zap.Int("score", score))
	} else {
		runner := quiz.NewRunner(cmd.InOrStdin(), cmd.OutOrStdout(),
			quiz.WithField(cfg.Field),
			quiz.WithLogger(logger))
		outcome, err := runner.Run(cmd.Context(), sample)
		if err != nil {
			return err
		}
		results, score = outcome.Results, outcome.Score
	}

	return report.Write(cmd.OutOrStdout(), results, score, strata*perStratum)
}
