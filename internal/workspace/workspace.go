// Where: internal/workspace/workspace.go
// What: Scoped build output directory handle.
// Why: Give every step an explicit working directory instead of chdir'ing the process.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Workspace is a prepared output directory. Steps run their tools with Dir
// as the working directory.
type Workspace struct {
	Dir string
}

// Resolve returns the handle for dir under root without touching the
// filesystem. dir must name a directory strictly inside root, since
// Prepare deletes it.
func Resolve(root, dir string) (Workspace, error) {
	if strings.TrimSpace(dir) == "" {
		return Workspace{}, fmt.Errorf("output directory is required")
	}
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return Workspace{}, err
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(rootAbs, dir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Workspace{}, err
	}
	if !isInside(rootAbs, abs) {
		return Workspace{}, fmt.Errorf("refusing to use %s as output directory: not inside %s", abs, rootAbs)
	}
	return Workspace{Dir: abs}, nil
}

func isInside(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || rel == ".." {
		return false
	}
	return !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

// Prepare removes any previous tree at dir and recreates it empty.
func Prepare(root, dir string) (Workspace, error) {
	ws, err := Resolve(root, dir)
	if err != nil {
		return Workspace{}, err
	}
	if err := removeDir(ws.Dir); err != nil {
		return Workspace{}, fmt.Errorf("clean output directory: %w", err)
	}
	if err := ensureDir(ws.Dir); err != nil {
		return Workspace{}, fmt.Errorf("create output directory: %w", err)
	}
	return ws, nil
}

// SourceDir returns the project root relative to the workspace, the form
// cmake expects for -S when run from inside it.
func (w Workspace) SourceDir(root string) (string, error) {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(w.Dir, rootAbs)
	if err != nil {
		return "", fmt.Errorf("source directory: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

func ensureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

func removeDir(path string) error {
	if err := os.RemoveAll(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
