package cmd

import (
	"log/slog"

	"github.com/MeKo-Tech/timeit"
	"github.com/MeKo-Tech/timeit/internal/config"
	"github.com/MeKo-Tech/timeit/internal/version"
	"github.com/spf13/cobra"
)

// app carries the state shared by one command tree.
type app struct {
	cfgFile string
	loader  *config.Loader
	cfg     *config.Config
}

// NewRootCommand builds a fresh command tree with its own configuration
// loader, so tests can execute it repeatedly without leaking flag state.
func NewRootCommand() *cobra.Command {
	a := &app{loader: config.NewLoader()}

	rootCmd := &cobra.Command{
		Use:   "timeit",
		Short: "Report how long commands and computations take",
		Long: `timeit runs a command or a computation once and reports its execution
time on stderr, e.g. "build - Execution time: 1.234s".

Durations are shown in ns below a microsecond, otherwise in µs, ms or s
with three fractional digits.

Examples:
  timeit run -- make build
  timeit run --label build -c "make build && make test"
  timeit sum --n 1000 --mode format`,
		Version:           version.String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is search in ., $HOME, $HOME/.config/timeit, /etc/timeit)")
	flags.BoolP("verbose", "v", false, "verbose output (equivalent to --log-level=debug)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.StringP("label", "l", "", "label prefixed to the timing message")

	v := a.loader.GetViper()
	_ = v.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = v.BindPFlag("label", flags.Lookup("label"))

	rootCmd.AddCommand(newRunCommand(a), newSumCommand(a), newConfigCommand(a))
	return rootCmd
}

var rootCmd = NewRootCommand()

// GetRootCommand returns the root command used by main.
func GetRootCommand() *cobra.Command {
	return rootCmd
}

// setup loads the configuration and installs the logger before any command
// runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loader.LoadWithFile(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	if used := a.loader.GetConfigFileUsed(); used != "" {
		slog.Debug("Configuration loaded", "file", used)
	}
	return nil
}

// timedFormatErr picks the labeled or unlabeled form. An empty label means no
// label was configured.
func timedFormatErr[T any](label string, fn func() (T, error)) (string, T, error) {
	if label == "" {
		return timeit.FormatErr(fn)
	}
	return timeit.FormatNamedErr(label, fn)
}

func timedFormat[T any](label string, fn func() T) (string, T) {
	if label == "" {
		return timeit.Format(fn)
	}
	return timeit.FormatNamed(label, fn)
}

func timedLog[T any](label string, fn func() T) T {
	if label == "" {
		return timeit.Log(fn)
	}
	return timeit.LogNamed(label, fn)
}
