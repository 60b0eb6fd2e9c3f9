package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/randsample/internal/config"
)

// UsageError reports a wrong number of positional arguments.
type UsageError struct {
	N int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("Invalid number of arguments (%d).", e.N)
}

// Execute runs the command line.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool
	logger := zap.NewNop()

	rootCmd := &cobra.Command{
		Use:   "random_sample <path> <stratum_count> <samples_per_stratum>",
		Short: "Stratified vocabulary self-assessment quiz",
		Long: `Splits a tab-separated word list into contiguous strata, draws a fixed
number of random words from each and asks whether you know them.

Answer 1 for yes and 0 for no. Per-word results and the score are printed
when the quiz ends.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return &UsageError{N: len(args)}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuiz(cmd, args, logger)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug diagnostics to stderr")
	rootCmd.PersistentFlags().Int("header-line", 0, "Zero-based line holding the field names (overrides RANDOM_SAMPLE_HEADER_LINE)")
	rootCmd.PersistentFlags().String("field", "lemma", "Field shown in prompts (overrides RANDOM_SAMPLE_FIELD)")
	rootCmd.PersistentFlags().Bool("legacy-bounds", false, "Give the remainder only to stratum 100 (index 99); other counts drop it")
	rootCmd.Flags().Uint64("seed", 0, "Random seed, 0 for a random one (overrides RANDOM_SAMPLE_SEED)")
	rootCmd.Flags().Bool("tui", false, "Run the quiz in a full-screen terminal UI")

	rootCmd.AddCommand(newStrataCmd(func() *zap.Logger { return logger }))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// resolveConfig reads the environment and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("header-line") {
		cfg.HeaderLine, _ = flags.GetInt("header-line")
	}
	if flags.Changed("field") {
		cfg.Field, _ = flags.GetString("field")
	}
	if flags.Changed("legacy-bounds") {
		cfg.LegacyBounds, _ = flags.GetBool("legacy-bounds")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// parseCount parses a positive integer argument.
func parseCount(name, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, val)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s must be at least 1, got %d", name, n)
	}
	return n, nil
}
