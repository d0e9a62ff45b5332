package adb

import "context"

type fakeRunner struct {
	dirs     []string
	commands [][]string
	err      error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.dirs = append(f.dirs, dir)
	f.commands = append(f.commands, append([]string{name}, args...))
	return f.err
}
