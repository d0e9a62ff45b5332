// Where: internal/runner/runner.go
// What: External command execution port and its os/exec implementation.
// Why: Let build and device steps be exercised with recorded fakes in tests.
package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// CommandRunner defines the interface for executing external commands.
// dir is the working directory of the child process; the caller's own
// working directory is never changed.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner is a concrete implementation of CommandRunner using os/exec.
// Child output is passed through to Stdout/Stderr, defaulting to the
// process streams.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}

type exitCoder interface {
	ExitCode() int
}

// ExitCode returns the exit status carried by err, 0 for nil and 1 when
// err does not come from a process that exited.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder exitCoder
	if errors.As(err, &coder) {
		if code := coder.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
