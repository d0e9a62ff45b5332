package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

type fakeExitError struct{ code int }

func (e fakeExitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
func (e fakeExitError) ExitCode() int { return e.code }

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain error", err: errors.New("boom"), want: 1},
		{name: "exit error", err: fakeExitError{code: 3}, want: 3},
		{name: "wrapped exit error", err: fmt.Errorf("push: %w", fakeExitError{code: 42}), want: 42},
		{name: "signalled", err: fakeExitError{code: -1}, want: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCode(tc.err); got != tc.want {
				t.Fatalf("ExitCode = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestExecRunnerRunsInDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	dir := t.TempDir()
	var stdout bytes.Buffer
	r := ExecRunner{Stdout: &stdout}
	if err := r.Run(context.Background(), dir, "sh", "-c", "pwd"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got, err := filepath.EvalSymlinks(strings.TrimSpace(stdout.String()))
	if err != nil {
		t.Fatalf("eval output: %v", err)
	}
	want, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("eval dir: %v", err)
	}
	if got != want {
		t.Fatalf("child ran in %s, want %s", got, want)
	}
}

func TestExecRunnerPropagatesExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	err := ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}.
		Run(context.Background(), t.TempDir(), "sh", "-c", "exit 7")
	if got := ExitCode(err); got != 7 {
		t.Fatalf("expected exit code 7, got %d (%v)", got, err)
	}
}

func TestDryRunnerPrintsCommand(t *testing.T) {
	var out bytes.Buffer
	r := DryRunner{Out: &out}
	if err := r.Run(context.Background(), "build/android-r23c", "cmake", "--build", "."); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "(cd build/android-r23c && cmake --build .)\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestDryRunnerRequiresOutput(t *testing.T) {
	if err := (DryRunner{}).Run(context.Background(), ".", "adb", "devices"); err == nil {
		t.Fatalf("expected error for nil output")
	}
}
