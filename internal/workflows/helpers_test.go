// Where: internal/workflows/helpers_test.go
// What: Test helpers and stub ports for workflow unit tests.
// Why: Keep workflow tests focused on orchestration behavior without external tools.
package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/poruru/andci/internal/ports"
)

type testBlock struct {
	title string
	rows  []ports.KeyValue
}

type testUI struct {
	infos     []string
	warns     []string
	successes []string
	errors    []string
	blocks    []testBlock
}

func (u *testUI) Info(msg string) {
	u.infos = append(u.infos, msg)
}

func (u *testUI) Warn(msg string) {
	u.warns = append(u.warns, msg)
}

func (u *testUI) Success(msg string) {
	u.successes = append(u.successes, msg)
}

func (u *testUI) Error(msg string) {
	u.errors = append(u.errors, msg)
}

func (u *testUI) Block(_, title string, rows []ports.KeyValue) {
	u.blocks = append(u.blocks, testBlock{title: title, rows: rows})
}

type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
func (e exitError) ExitCode() int { return e.code }

var errInjected = errors.New("injected failure")

// recordRunner records every invocation and fails the first command whose
// joined argv starts with failOn.
type recordRunner struct {
	commands [][]string
	dirs     []string
	failOn   string
	failErr  error
	clock    *fakeclock.FakeClock
	onRun    func(dir, name string, args []string)
}

func (r *recordRunner) Run(_ context.Context, dir, name string, args ...string) error {
	command := append([]string{name}, args...)
	r.commands = append(r.commands, command)
	r.dirs = append(r.dirs, dir)
	if r.onRun != nil {
		r.onRun(dir, name, args)
	}
	if r.clock != nil {
		r.clock.Increment(1500 * time.Millisecond)
	}
	if r.failOn != "" && strings.HasPrefix(strings.Join(command, " "), r.failOn) {
		if r.failErr != nil {
			return r.failErr
		}
		return errInjected
	}
	return nil
}

func (r *recordRunner) names() []string {
	names := make([]string, len(r.commands))
	for i, command := range r.commands {
		names[i] = strings.Join(command[:min(2, len(command))], " ")
	}
	return names
}

func dirEntries(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return -1
	}
	return len(entries)
}
