// Where: internal/workflows/pipeline.go
// What: Build-and-device-test workflow orchestration.
// Why: Sequence workspace, cmake and adb steps with explicit, fail-fast error returns.
package workflows

import (
	"context"
	"fmt"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/poruru/andci/internal/adb"
	"github.com/poruru/andci/internal/buildtype"
	"github.com/poruru/andci/internal/cmake"
	"github.com/poruru/andci/internal/config"
	"github.com/poruru/andci/internal/ports"
	"github.com/poruru/andci/internal/runner"
	"github.com/poruru/andci/internal/workspace"
)

// Step names a single pipeline stage.
type Step string

const (
	StepPrepare   Step = "prepare"
	StepConfigure Step = "configure"
	StepBuild     Step = "build"
	StepDevices   Step = "devices"
	StepPush      Step = "push"
	StepChmod     Step = "chmod"
	StepRun       Step = "run"
)

// StepError reports the step that stopped the pipeline.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// PipelineRequest captures the inputs required to run a pipeline.
type PipelineRequest struct {
	ProjectDir string
	BuildType  buildtype.BuildType
	Settings   config.Settings
	BuildOnly  bool
	DryRun     bool
}

// PipelineWorkflow executes the build and device test steps.
type PipelineWorkflow struct {
	Runner        runner.CommandRunner
	UserInterface ports.UserInterface
	Clock         clock.Clock
}

// NewPipelineWorkflow constructs a PipelineWorkflow.
func NewPipelineWorkflow(r runner.CommandRunner, ui ports.UserInterface, clk clock.Clock) PipelineWorkflow {
	return PipelineWorkflow{
		Runner:        r,
		UserInterface: ui,
		Clock:         clk,
	}
}

type pipelineStep struct {
	step  Step
	title string
	run   func(ctx context.Context) error
}

// Run executes the steps in order. The first failing step aborts the run
// and is returned as a *StepError; nothing after it is attempted.
func (w PipelineWorkflow) Run(ctx context.Context, req PipelineRequest) error {
	if w.Runner == nil {
		return fmt.Errorf("command runner is not configured")
	}
	if req.BuildType == "" {
		return fmt.Errorf("build type is required")
	}
	clk := w.Clock
	if clk == nil {
		clk = clock.NewClock()
	}

	w.block(req)

	settings := req.Settings
	bridge := adb.NewBridge(w.Runner, settings.Serial)
	var ws workspace.Workspace

	steps := []pipelineStep{
		{StepPrepare, "Prepare " + settings.OutputDir, func(context.Context) error {
			var err error
			if req.DryRun {
				ws, err = workspace.Resolve(req.ProjectDir, settings.OutputDir)
			} else {
				ws, err = workspace.Prepare(req.ProjectDir, settings.OutputDir)
			}
			return err
		}},
		{StepConfigure, "Configure (cmake)", func(ctx context.Context) error {
			source, err := ws.SourceDir(req.ProjectDir)
			if err != nil {
				return err
			}
			return cmake.Configure(ctx, w.Runner, ws, cmake.ConfigureOptions{
				BuildType:     req.BuildType,
				ABI:           settings.ABI,
				NDKDir:        settings.NDKDir(),
				ToolchainFile: settings.ToolchainFile(),
				Generator:     settings.Generator,
				SourceDir:     source,
			})
		}},
		{StepBuild, "Build (cmake --build)", func(ctx context.Context) error {
			return cmake.Build(ctx, w.Runner, ws)
		}},
	}
	if !req.BuildOnly {
		remote := settings.RemoteArtifact()
		steps = append(steps,
			pipelineStep{StepDevices, "List devices", func(ctx context.Context) error {
				return bridge.Devices(ctx, ws)
			}},
			pipelineStep{StepPush, "Push " + settings.Artifact, func(ctx context.Context) error {
				return bridge.Push(ctx, ws, settings.Artifact, settings.RemoteDir)
			}},
			pipelineStep{StepChmod, "Mark executable", func(ctx context.Context) error {
				return bridge.MakeExecutable(ctx, ws, remote)
			}},
			pipelineStep{StepRun, "Run " + remote, func(ctx context.Context) error {
				return bridge.Exec(ctx, ws, remote)
			}},
		)
	}

	for i, s := range steps {
		if err := ctx.Err(); err != nil {
			return &StepError{Step: s.step, Err: err}
		}
		w.info(fmt.Sprintf("[%d/%d] %s", i+1, len(steps), s.title))
		start := clk.Now()
		if err := s.run(ctx); err != nil {
			return &StepError{Step: s.step, Err: err}
		}
		w.success(fmt.Sprintf("%s (%s)", s.title, clk.Since(start).Round(time.Millisecond)))
	}
	return nil
}

func (w PipelineWorkflow) block(req PipelineRequest) {
	if w.UserInterface == nil {
		return
	}
	device := req.Settings.Serial
	if device == "" {
		device = "(adb default)"
	}
	rows := []ports.KeyValue{
		{Key: "Configuration", Value: req.BuildType},
		{Key: "ABI", Value: req.Settings.ABI},
		{Key: "NDK", Value: req.Settings.NDKDir()},
		{Key: "Output", Value: req.Settings.OutputDir},
		{Key: "Device", Value: device},
	}
	if req.DryRun {
		rows = append(rows, ports.KeyValue{Key: "Mode", Value: "dry-run"})
	}
	w.UserInterface.Block("🔧", "Android build", rows)
}

func (w PipelineWorkflow) info(msg string) {
	if w.UserInterface != nil {
		w.UserInterface.Info(msg)
	}
}

func (w PipelineWorkflow) success(msg string) {
	if w.UserInterface != nil {
		w.UserInterface.Success(msg)
	}
}
