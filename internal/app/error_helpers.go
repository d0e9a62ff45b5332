// Where: internal/app/error_helpers.go
// What: Shared CLI error rendering.
// Why: Keep failure output and exit-code mapping consistent.
package app

import (
	"io"

	"github.com/poruru/andci/internal/meta"
	"github.com/poruru/andci/internal/ports"
	"github.com/poruru/andci/internal/runner"
)

// exitWithError prints err and returns the exit code it carries.
func exitWithError(out io.Writer, err error) int {
	ports.NewPlainUI(out).Error(err.Error())
	return runner.ExitCode(err)
}

// handleParseError reports a command-line parse failure with a hint.
func handleParseError(err error, out io.Writer) int {
	ui := ports.NewPlainUI(out)
	ui.Error(err.Error())
	ui.Info("Try: " + meta.AppName + " --help")
	return 1
}
