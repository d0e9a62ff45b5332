// Where: internal/cmake/cmake.go
// What: CMake configure and build invocations for the Android NDK toolchain.
// Why: Keep generator options as a typed argument list instead of a shell string.
package cmake

import (
	"context"
	"fmt"

	"github.com/poruru/andci/internal/buildtype"
	"github.com/poruru/andci/internal/runner"
	"github.com/poruru/andci/internal/workspace"
)

const binary = "cmake"

// ConfigureOptions contains the inputs of the generator invocation.
type ConfigureOptions struct {
	BuildType     buildtype.BuildType
	ABI           string
	NDKDir        string
	ToolchainFile string
	Generator     string
	SourceDir     string
}

// ConfigureArgs returns the cmake arguments for opts.
func ConfigureArgs(opts ConfigureOptions) []string {
	return []string{
		"-DCMAKE_EXPORT_COMPILE_COMMANDS=ON",
		"-DCMAKE_BUILD_TYPE=" + opts.BuildType.String(),
		"-DANDROID_ABI=" + opts.ABI,
		"-DANDROID_NDK=" + opts.NDKDir,
		"-DCMAKE_TOOLCHAIN_FILE=" + opts.ToolchainFile,
		"-G", opts.Generator,
		"-S", opts.SourceDir,
	}
}

// BuildArgs returns the arguments that build everything in the current
// binary directory.
func BuildArgs() []string {
	return []string{"--build", "."}
}

// Configure runs the generator inside the workspace.
func Configure(ctx context.Context, r runner.CommandRunner, ws workspace.Workspace, opts ConfigureOptions) error {
	if r == nil {
		return fmt.Errorf("command runner is nil")
	}
	if opts.BuildType == "" {
		return fmt.Errorf("build type is required")
	}
	return r.Run(ctx, ws.Dir, binary, ConfigureArgs(opts)...)
}

// Build runs the native build driver inside the workspace.
func Build(ctx context.Context, r runner.CommandRunner, ws workspace.Workspace) error {
	if r == nil {
		return fmt.Errorf("command runner is nil")
	}
	return r.Run(ctx, ws.Dir, binary, BuildArgs()...)
}
