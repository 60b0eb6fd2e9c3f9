package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/randsample/internal/sampler"
	"github.com/abhisek/randsample/internal/ui/theme"
	"github.com/abhisek/randsample/internal/wordlist"
)

func newStrataCmd(logger func() *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "strata <path> <stratum_count>",
		Short: "Show how a word list splits into strata without running a quiz",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			strata, err := parseCount("stratum_count", args[1])
			if err != nil {
				return err
			}

			list, err := wordlist.Load(args[0], wordlist.Options{HeaderLine: cfg.HeaderLine})
			if err != nil {
				return err
			}

			bounds, err := sampler.Bounds(list.Len(), strata, cfg.RemainderPolicy())
			if err != nil {
				return err
			}
			logger().Debug("computed strata",
				zap.Int("records", list.Len()),
				zap.Int("strata", len(bounds)),
				zap.Stringer("policy", cfg.RemainderPolicy()))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, theme.TableHeader.Render(fmt.Sprintf("%-7s  %7s  %7s  %5s  %-24s  %s",
				"Stratum", "Lower", "Upper", "Size", "First", "Last")))
			fmt.Fprintln(out, strings.Repeat("─", 80))

			for _, s := range bounds {
				first, last := "-", "-"
				if s.Len() > 0 {
					first = truncate(list.Field(s.Lower, cfg.Field), 24)
					last = truncate(list.Field(s.Upper-1, cfg.Field), 24)
				}
				fmt.Fprintf(out, "%-7d  %7d  %7d  %5d  %-24s  %s\n",
					s.Index, s.Lower, s.Upper, s.Len(), first, last)
			}

			fmt.Fprintf(out, "\n%d records, %d strata\n", list.Len(), len(bounds))
			if dropped := sampler.Dropped(list.Len(), bounds); dropped > 0 {
				fmt.Fprintf(out, "%d trailing records are never sampled\n", dropped)
			}
			return nil
		},
	}
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
