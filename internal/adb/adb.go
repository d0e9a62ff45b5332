// Where: internal/adb/adb.go
// What: Device bridge invocations used to deploy and run the test binary.
// Why: Build each adb call as an explicit argument list, escaping remote shell operands.
package adb

import (
	"context"
	"fmt"

	"github.com/poruru/andci/internal/runner"
	"github.com/poruru/andci/internal/shutil"
	"github.com/poruru/andci/internal/workspace"
)

const binary = "adb"

// Bridge runs adb against one device. An empty Serial leaves device
// selection to adb.
type Bridge struct {
	Runner runner.CommandRunner
	Serial string
}

// NewBridge constructs a Bridge.
func NewBridge(r runner.CommandRunner, serial string) Bridge {
	return Bridge{Runner: r, Serial: serial}
}

// Args prefixes the subcommand arguments with the device selector.
func (b Bridge) Args(args ...string) []string {
	if b.Serial == "" {
		return args
	}
	return append([]string{"-s", b.Serial}, args...)
}

// ShellArgs builds an "adb shell" invocation. Each operand is escaped
// because adb hands the joined operands to the device shell.
func (b Bridge) ShellArgs(command ...string) []string {
	return b.Args("shell", shutil.EscapeSlice(command))
}

// Devices lists attached devices. The output is informational only.
func (b Bridge) Devices(ctx context.Context, ws workspace.Workspace) error {
	return b.run(ctx, ws, b.Args("devices"))
}

// Push copies local (relative to the workspace) into remoteDir.
func (b Bridge) Push(ctx context.Context, ws workspace.Workspace, local, remoteDir string) error {
	return b.run(ctx, ws, b.Args("push", local, remoteDir))
}

// MakeExecutable marks remotePath executable on the device.
func (b Bridge) MakeExecutable(ctx context.Context, ws workspace.Workspace, remotePath string) error {
	return b.run(ctx, ws, b.ShellArgs("chmod", "+x", remotePath))
}

// Exec runs remotePath on the device. Its output and exit status pass
// through to the caller.
func (b Bridge) Exec(ctx context.Context, ws workspace.Workspace, remotePath string) error {
	return b.run(ctx, ws, b.ShellArgs(remotePath))
}

func (b Bridge) run(ctx context.Context, ws workspace.Workspace, args []string) error {
	if b.Runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	return b.Runner.Run(ctx, ws.Dir, binary, args...)
}
