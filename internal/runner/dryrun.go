package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/poruru/andci/internal/shutil"
)

// DryRunner prints each command instead of executing it.
type DryRunner struct {
	Out io.Writer
}

func (r DryRunner) Run(_ context.Context, dir, name string, args ...string) error {
	if r.Out == nil {
		return fmt.Errorf("dry runner output is nil")
	}
	_, err := fmt.Fprintf(r.Out, "(cd %s && %s)\n", shutil.Escape(dir), shutil.CommandLine(name, args...))
	return err
}
