// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher that maps pipeline results to exit codes.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/clock"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru/andci/internal/buildtype"
	"github.com/poruru/andci/internal/config"
	"github.com/poruru/andci/internal/meta"
	"github.com/poruru/andci/internal/ports"
	"github.com/poruru/andci/internal/runner"
	"github.com/poruru/andci/internal/version"
	"github.com/poruru/andci/internal/workflows"
)

// Dependencies holds all injected dependencies required for CLI execution.
// This structure enables dependency injection for testing and allows swapping
// the command runner and clock.
type Dependencies struct {
	ProjectDir string
	Out        io.Writer
	Runner     runner.CommandRunner
	Clock      clock.Clock
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Configurations []string `arg:"" optional:"" name:"configuration" help:"Build configuration: Release or Debug (default: Release)"`

	EnvFile     string           `name:"env-file" help:"Path to .env file (default: .env in the project directory)"`
	OutputDir   string           `name:"output-dir" short:"o" help:"Build output directory relative to the project directory"`
	NDKVersion  string           `name:"ndk-version" help:"NDK version directory under $ANDROID_HOME/ndk"`
	ABI         string           `name:"abi" help:"Target Android ABI"`
	Serial      string           `name:"serial" short:"s" help:"Serial of the device to deploy to"`
	BuildOnly   bool             `name:"build-only" help:"Configure and build without touching a device"`
	DryRun      bool             `name:"dry-run" help:"Print commands instead of running them"`
	PrintConfig bool             `name:"print-config" help:"Print the effective settings as YAML and exit"`
	Version     kong.VersionFlag `name:"version" help:"Show version information"`
}

const description = "Configure and build the native project for Android with the NDK " +
	"toolchain, then push and run the test binary on an attached device."

// Run is the main entry point for CLI execution. It parses args, selects
// the build configuration and runs the pipeline. The return value is the
// process exit code: the exit status of the first failing tool, 1 for other
// failures and 0 otherwise.
func Run(ctx context.Context, args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	plain := ports.NewPlainUI(out)

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description(description),
		kong.Writers(out, out),
		kong.Vars{"version": version.GetVersion()},
	)
	if err != nil {
		return exitWithError(out, err)
	}
	if token, positionals := findUnknownFlag(args, parser.Model); token != "" {
		_, err := buildtype.Select(append(positionals, token))
		return selectionFailed(plain, out, err)
	}
	if _, err := parser.Parse(args); err != nil {
		return handleParseError(err, out)
	}

	projectDir, err := resolveProjectDir(deps.ProjectDir)
	if err != nil {
		return exitWithError(out, err)
	}
	loadEnvFile(cli.EnvFile, projectDir, plain)

	selection, err := buildtype.Select(cli.Configurations)
	if err != nil {
		return selectionFailed(plain, out, err)
	}
	printNotices(plain, selection.Notices)

	settings := config.Resolve(config.Overrides{
		OutputDir:  cli.OutputDir,
		NDKVersion: cli.NDKVersion,
		ABI:        cli.ABI,
		Serial:     cli.Serial,
	})
	if cli.PrintConfig {
		if err := settings.WriteYAML(out); err != nil {
			return exitWithError(out, err)
		}
		return 0
	}

	cmdRunner := deps.Runner
	if cli.DryRun {
		cmdRunner = runner.DryRunner{Out: out}
	}

	workflow := workflows.NewPipelineWorkflow(cmdRunner, ports.NewConsoleUI(out), deps.Clock)
	request := workflows.PipelineRequest{
		ProjectDir: projectDir,
		BuildType:  selection.Type,
		Settings:   settings,
		BuildOnly:  cli.BuildOnly,
		DryRun:     cli.DryRun,
	}
	if err := workflow.Run(ctx, request); err != nil {
		return exitWithError(out, err)
	}
	return 0
}

// selectionFailed prints the notices gathered before the bad token and its
// diagnostic. An unexpected configuration stops the run without a failure
// status.
func selectionFailed(ui ports.UserInterface, out io.Writer, err error) int {
	var unexpected *buildtype.UnexpectedError
	if !errors.As(err, &unexpected) {
		return exitWithError(out, err)
	}
	printNotices(ui, unexpected.Notices)
	ui.Info(unexpected.Error())
	return 0
}

func printNotices(ui ports.UserInterface, notices []string) {
	for _, notice := range notices {
		ui.Info(notice)
	}
}

func resolveProjectDir(dir string) (string, error) {
	if dir == "" {
		return os.Getwd()
	}
	return filepath.Abs(dir)
}

// loadEnvFile loads the explicit env file, or the project's .env when it
// exists. Variables already present in the environment win.
func loadEnvFile(path, projectDir string, ui ports.UserInterface) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			ui.Warn(fmt.Sprintf("Warning: failed to load env file %s: %v", path, err))
		}
		return
	}
	defaultPath := filepath.Join(projectDir, meta.EnvFile)
	if _, err := os.Stat(defaultPath); err == nil {
		if err := godotenv.Load(defaultPath); err != nil {
			ui.Warn(fmt.Sprintf("Warning: failed to load %s: %v", meta.EnvFile, err))
		}
	}
}
