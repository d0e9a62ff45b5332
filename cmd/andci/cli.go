// Where: cmd/andci/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"code.cloudfoundry.org/clock"
	"github.com/poruru/andci/internal/app"
	"github.com/poruru/andci/internal/runner"
)

var getwd = os.Getwd

// buildDependencies constructs the runtime dependencies of the CLI: the
// project directory, an os/exec backed runner and the wall clock.
func buildDependencies() (app.Dependencies, error) {
	projectDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}
	return app.Dependencies{
		ProjectDir: projectDir,
		Out:        os.Stdout,
		Runner:     runner.ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr},
		Clock:      clock.NewClock(),
	}, nil
}
