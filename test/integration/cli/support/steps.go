package support

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"gopkg.in/yaml.v3"
)

// timingLine matches one timing message line.
var timingLine = regexp.MustCompile(`^(.*- )?Execution time: \d+(\.\d+)?(ns|µs|ms|s)$`)

// RegisterSteps registers all step definitions.
func (testCtx *TestContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Step(`^a config file containing:$`, testCtx.aConfigFileContaining)
	sc.Step(`^the environment variable "([^"]*)" is set to "([^"]*)"$`, testCtx.theEnvironmentVariableIsSetTo)
	sc.Step(`^I run "([^"]*)"$`, testCtx.iRunCommand)
	sc.Step(`^the command should succeed$`, testCtx.theCommandShouldSucceed)
	sc.Step(`^the command should fail with exit code (\d+)$`, testCtx.theCommandShouldFailWithExitCode)
	sc.Step(`^stdout should be "([^"]*)"$`, testCtx.stdoutShouldBe)
	sc.Step(`^stdout should contain "([^"]*)"$`, testCtx.stdoutShouldContain)
	sc.Step(`^stderr should contain exactly one timing line$`, testCtx.stderrShouldContainOneTimingLine)
	sc.Step(`^the timing line should start with "([^"]*)"$`, testCtx.theTimingLineShouldStartWith)
	sc.Step(`^stderr should not contain a timing line$`, testCtx.stderrShouldNotContainTimingLine)
	sc.Step(`^the printed config should have label "([^"]*)"$`, testCtx.thePrintedConfigShouldHaveLabel)
}

// aConfigFileContaining writes timeit.yaml into the working directory.
func (testCtx *TestContext) aConfigFileContaining(content *godog.DocString) error {
	path := filepath.Join(testCtx.TempDir, "timeit.yaml")
	if err := os.WriteFile(path, []byte(content.Content), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (testCtx *TestContext) theEnvironmentVariableIsSetTo(name, value string) error {
	testCtx.EnvVars = append(testCtx.EnvVars, name+"="+value)
	return nil
}

// iRunCommand runs the CLI. The leading "timeit" is replaced by the built
// binary; arguments are split on whitespace.
func (testCtx *TestContext) iRunCommand(command string) error {
	testCtx.LastCommand = command
	testCtx.LastStartTime = time.Now()

	parts := strings.Fields(command)
	if len(parts) == 0 {
		return errors.New("empty command")
	}
	if parts[0] == "timeit" {
		parts[0] = testCtx.BinPath
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...) //nolint:gosec // G204: test commands are fixed by feature files
	cmd.Dir = testCtx.TempDir
	cmd.Env = append(os.Environ(), testCtx.EnvVars...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	testCtx.LastDuration = time.Since(testCtx.LastStartTime)
	testCtx.LastStdout = stdout.String()
	testCtx.LastStderr = stderr.String()
	testCtx.LastError = err
	testCtx.LastExitCode = 0

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		testCtx.LastExitCode = exitErr.ExitCode()
	case err != nil:
		return fmt.Errorf("failed to execute command: %w", err)
	}
	return nil
}

func (testCtx *TestContext) theCommandShouldSucceed() error {
	if testCtx.LastExitCode != 0 {
		return fmt.Errorf("command failed with exit code %d: %w\nStderr: %s",
			testCtx.LastExitCode, testCtx.LastError, testCtx.LastStderr)
	}
	return nil
}

func (testCtx *TestContext) theCommandShouldFailWithExitCode(code string) error {
	want, err := strconv.Atoi(code)
	if err != nil {
		return fmt.Errorf("invalid exit code %q: %w", code, err)
	}
	if testCtx.LastExitCode != want {
		return fmt.Errorf("expected exit code %d, got %d\nStderr: %s", want, testCtx.LastExitCode, testCtx.LastStderr)
	}
	return nil
}

func (testCtx *TestContext) stdoutShouldBe(expected string) error {
	if got := strings.TrimSuffix(testCtx.LastStdout, "\n"); got != expected {
		return fmt.Errorf("stdout is %q, expected %q", got, expected)
	}
	return nil
}

func (testCtx *TestContext) stdoutShouldContain(expected string) error {
	if !strings.Contains(testCtx.LastStdout, expected) {
		return fmt.Errorf("stdout does not contain %q\nActual stdout: %s", expected, testCtx.LastStdout)
	}
	return nil
}

// timingLines returns the stderr lines that are timing messages.
func (testCtx *TestContext) timingLines() []string {
	var lines []string
	for _, line := range strings.Split(testCtx.LastStderr, "\n") {
		if timingLine.MatchString(line) {
			lines = append(lines, line)
		}
	}
	return lines
}

func (testCtx *TestContext) stderrShouldContainOneTimingLine() error {
	if lines := testCtx.timingLines(); len(lines) != 1 {
		return fmt.Errorf("expected exactly one timing line, found %d\nStderr: %s", len(lines), testCtx.LastStderr)
	}
	return nil
}

func (testCtx *TestContext) theTimingLineShouldStartWith(prefix string) error {
	lines := testCtx.timingLines()
	if len(lines) == 0 {
		return fmt.Errorf("no timing line in stderr: %s", testCtx.LastStderr)
	}
	if !strings.HasPrefix(lines[0], prefix) {
		return fmt.Errorf("timing line %q does not start with %q", lines[0], prefix)
	}
	return nil
}

func (testCtx *TestContext) stderrShouldNotContainTimingLine() error {
	if lines := testCtx.timingLines(); len(lines) != 0 {
		return fmt.Errorf("unexpected timing line %q", lines[0])
	}
	return nil
}

func (testCtx *TestContext) thePrintedConfigShouldHaveLabel(label string) error {
	var cfg struct {
		Label string `yaml:"label"`
	}
	if err := yaml.Unmarshal([]byte(testCtx.LastStdout), &cfg); err != nil {
		return fmt.Errorf("stdout is not valid YAML: %w", err)
	}
	if cfg.Label != label {
		return fmt.Errorf("config label is %q, expected %q", cfg.Label, label)
	}
	return nil
}
