package cmd

import (
	"fmt"
	"time"

	"github.com/MeKo-Tech/timeit"
	"github.com/MeKo-Tech/timeit/internal/config"
	"github.com/spf13/cobra"
)

func newSumCommand(a *app) *cobra.Command {
	defaults := config.DefaultConfig().Sum

	sumCmd := &cobra.Command{
		Use:   "sum",
		Short: "Time summing 1..n with one of the timing forms",
		Long: `Sum the integers 1..n and print the result on stdout.

The timing is reported on stderr according to --mode:
  measure  the rendered duration only
  format   the timing message
  log      the timing message, written by the library itself`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.sum(cmd)
		},
	}

	sumCmd.Flags().Int64("n", defaults.N, "upper bound of the sum")
	sumCmd.Flags().String("mode", defaults.Mode, "timing form: measure, format or log")

	v := a.loader.GetViper()
	_ = v.BindPFlag("sum.n", sumCmd.Flags().Lookup("n"))
	_ = v.BindPFlag("sum.mode", sumCmd.Flags().Lookup("mode"))

	return sumCmd
}

func (a *app) sum(cmd *cobra.Command) error {
	n := a.cfg.Sum.N
	total := func() int64 {
		var sum int64
		for i := int64(1); i <= n; i++ {
			sum += i
		}
		return sum
	}

	var (
		result int64
		report string
	)
	switch a.cfg.Sum.Mode {
	case config.ModeMeasure:
		var elapsed time.Duration
		elapsed, result = timeit.Measure(total)
		report = timeit.Render(elapsed)
	case config.ModeFormat:
		report, result = timedFormat(a.cfg.Label, total)
	default:
		result = timedLog(a.cfg.Label, total)
	}

	if report != "" {
		if _, err := fmt.Fprintln(cmd.ErrOrStderr(), report); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}
