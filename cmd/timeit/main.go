package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/MeKo-Tech/timeit/cmd/timeit/cmd"
)

func main() {
	if err := cmd.GetRootCommand().Execute(); err != nil {
		// A timed command that failed keeps its own exit status.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
