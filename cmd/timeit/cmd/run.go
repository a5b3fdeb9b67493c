package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/spf13/cobra"
)

func newRunCommand(a *app) *cobra.Command {
	var shellCommand string

	runCmd := &cobra.Command{
		Use:   "run [flags] -- command [args...]",
		Short: "Run a command and report its execution time",
		Long: `Run a command once with stdin, stdout and stderr passed through, then
write its execution time to stderr.

If the command fails, its error and exit status are returned unchanged and
no timing line is written.`,
		Args: func(cmd *cobra.Command, args []string) error {
			switch {
			case shellCommand == "" && len(args) == 0:
				return errors.New("requires a command to run")
			case shellCommand != "" && len(args) > 0:
				return errors.New("use either --command or arguments, not both")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := args
			if shellCommand != "" {
				argv = []string{a.cfg.Shell, "-c", shellCommand}
			}
			return a.run(cmd, argv)
		},
	}

	runCmd.Flags().StringVarP(&shellCommand, "command", "c", "", "command string run through the configured shell")
	return runCmd
}

func (a *app) run(cmd *cobra.Command, argv []string) error {
	slog.Debug("Running command", "argv", argv)

	msg, _, err := timedFormatErr(a.cfg.Label, func() (struct{}, error) {
		proc := exec.CommandContext(cmd.Context(), argv[0], argv[1:]...) //nolint:gosec // G204: running the user's command is the point
		proc.Stdin = cmd.InOrStdin()
		proc.Stdout = cmd.OutOrStdout()
		proc.Stderr = cmd.ErrOrStderr()
		return struct{}{}, proc.Run()
	})
	if err != nil {
		slog.Debug("Command failed", "argv", argv, "error", err)
		return err
	}

	_, err = fmt.Fprintln(cmd.ErrOrStderr(), msg)
	return err
}
