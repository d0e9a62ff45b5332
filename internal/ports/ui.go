// Where: internal/ports/ui.go
// What: User interface abstraction for workflows.
// Why: Provide a single output surface so workflows stay UI-agnostic.
package ports

import (
	"fmt"
	"io"

	"github.com/poruru/andci/internal/ui"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by workflows.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Error(msg string)
	Block(emoji, title string, rows []KeyValue)
}

// NewConsoleUI returns a UserInterface backed by the console helper.
func NewConsoleUI(out io.Writer) UserInterface {
	return consoleUI{console: ui.New(out)}
}

// NewPlainUI returns a UserInterface that writes messages verbatim, one
// per line. Used where the exact wording is part of the contract.
func NewPlainUI(out io.Writer) UserInterface {
	return plainUI{
		out:     out,
		console: ui.NewWithEmoji(out, false),
	}
}

type consoleUI struct {
	console *ui.Console
}

func (c consoleUI) Info(msg string) {
	c.console.Info(msg)
}

func (c consoleUI) Warn(msg string) {
	c.console.Warn(msg)
}

func (c consoleUI) Success(msg string) {
	c.console.Success(msg)
}

func (c consoleUI) Error(msg string) {
	c.console.Error(msg)
}

func (c consoleUI) Block(emoji, title string, rows []KeyValue) {
	c.console.BlockStart(emoji, title)
	for _, kv := range rows {
		c.console.Item(kv.Key, kv.Value)
	}
	c.console.BlockEnd()
}

type plainUI struct {
	out     io.Writer
	console *ui.Console
}

func (p plainUI) Info(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p plainUI) Warn(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p plainUI) Success(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p plainUI) Error(msg string) {
	fmt.Fprintf(p.out, "✗ %s\n", msg)
}

func (p plainUI) Block(emoji, title string, rows []KeyValue) {
	p.console.BlockStart(emoji, title)
	for _, kv := range rows {
		p.console.Item(kv.Key, kv.Value)
	}
	p.console.BlockEnd()
}
