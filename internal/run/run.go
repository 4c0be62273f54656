// Package run executes external commands strictly in sequence, printing each
// command line before running it and aborting the whole sequence on the first
// failure. A command failure is one of: executable not found, non-zero exit
// status, or exceeding the per-command timeout.
package run

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	shellescape "al.essio.dev/pkg/shellescape"
	"github.com/charmbracelet/huh"
	xterm "golang.org/x/term"
)

// ErrCancelled is returned when the user declines the confirmation form.
var ErrCancelled = errors.New("cancelled")

// Timeout is the wall-clock limit applied to each individual command.
const Timeout = 60 * time.Second

// timeout is the limit realExec actually applies. Overridable in tests.
var timeout = Timeout

// SetTimeoutForTest overrides the per-command timeout. Intended for tests.
func SetTimeoutForTest(d time.Duration) func() {
	prev := timeout
	timeout = d
	return func() { timeout = prev }
}

// Command is a single external command as an argv vector.
type Command []string

// String returns the command as a safe-to-shell-copy line.
func (c Command) String() string {
	return shellescape.QuoteCommand([]string(c))
}

// cmdExec is the executor used by Sequence. Overridable in tests.
var cmdExec = realExec

// SetExecutorForTest overrides the command executor. Intended for tests.
func SetExecutorForTest(f func(argv []string) error) func() {
	prev := cmdExec
	cmdExec = f
	return func() { cmdExec = prev }
}

// global silent flag for printing command lines
var silent bool

// SetSilent controls whether to print each command line before running it.
func SetSilent(s bool) { silent = s }

// global yes flag; set from --yes to skip confirmation
var skipConfirm bool

// SetYes disables the confirmation form.
func SetYes(y bool) { skipConfirm = y }

// isTerminal reports whether stdout is a terminal. Function indirection to
// ease testing, as no prompt must ever appear in a non-interactive run.
var isTerminal = func() bool { return xterm.IsTerminal(int(os.Stdout.Fd())) }

// confirm shows the command lines in a confirmation form and reports whether
// the user accepted. Function indirection to ease testing.
var confirm = func(lines []string) (bool, error) {
	var proceed bool
	c := huh.NewConfirm().
		Title(fmt.Sprintf("Run %d command(s)?", len(lines))).
		Description(strings.Join(lines, "\n")).
		Affirmative("Yes").Negative("No").Value(&proceed)
	if err := huh.NewForm(huh.NewGroup(c)).Run(); err != nil {
		return false, err
	}
	return proceed, nil
}

// Sequence runs the commands in order, stopping at the first failure. When
// stdout is a terminal and --yes was not given, the full command list is shown
// in a confirmation form first; declining returns ErrCancelled without running
// anything.
func Sequence(commands []Command) error {
	if len(commands) == 0 {
		return nil
	}
	if shouldConfirm() {
		lines := make([]string, 0, len(commands))
		for _, c := range commands {
			lines = append(lines, c.String())
		}
		proceed, err := confirm(lines)
		if err != nil {
			return err
		}
		if !proceed {
			return ErrCancelled
		}
	}
	for _, c := range commands {
		if !silent {
			fmt.Fprintln(os.Stderr, c.String())
		}
		if err := cmdExec([]string(c)); err != nil {
			return fmt.Errorf("command %s failed: %w", c, err)
		}
	}
	return nil
}

func shouldConfirm() bool {
	return !skipConfirm && isTerminal()
}

// realExec runs argv wiring stdio through, with the package timeout. The
// returned error distinguishes a missing executable, a non-success exit
// status, and a timeout.
func realExec(argv []string) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		return nil
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("timed out after %s", timeout)
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
		return fmt.Errorf("executable not found: %w", err)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("exit status %d", exitErr.ExitCode())
	}
	return err
}
