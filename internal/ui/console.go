// Where: internal/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize emojis, indentation, and styling across pipeline steps.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Console provides helper methods for formatted output.
// Styling degrades to plain text when Out is not a terminal.
type Console struct {
	Out          io.Writer
	EmojiEnabled bool

	header  lipgloss.Style
	key     lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	errorS  lipgloss.Style
}

// New creates a new Console writing to the provided writer.
func New(out io.Writer) *Console {
	return NewWithEmoji(out, true)
}

// NewWithEmoji creates a new Console with explicit emoji settings.
func NewWithEmoji(out io.Writer, enabled bool) *Console {
	renderer := lipgloss.NewRenderer(out)
	return &Console{
		Out:          out,
		EmojiEnabled: enabled,
		header:       renderer.NewStyle().Bold(true),
		key:          renderer.NewStyle().Faint(true),
		success:      renderer.NewStyle().Foreground(lipgloss.Color("2")),
		warn:         renderer.NewStyle().Foreground(lipgloss.Color("3")),
		errorS:       renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// Header prints a section header with an emoji.
// Example: 🔧 Build settings
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.emojiPrefix(emoji), c.header.Render(title))
}

// BlockStart starts a logical block of information with an emoji header.
func (c *Console) BlockStart(emoji, title string) {
	fmt.Fprintln(c.Out)
	c.Header(emoji, title)
}

// BlockEnd ends a logical block.
func (c *Console) BlockEnd() {
	fmt.Fprintln(c.Out)
}

// Item prints a key-value item with indentation.
// Example:    Key:               Value
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %s %v\n", c.key.Render(fmt.Sprintf("%-18s", key+":")), value)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	prefix := c.emojiPrefix("✅")
	if prefix == "" {
		prefix = "[ok] "
	}
	fmt.Fprintf(c.Out, "%s%s\n", prefix, c.success.Render(msg))
}

// Info prints an info message with an arrow.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "➜ %s\n", msg)
}

// Warn prints a warning message with an emoji.
func (c *Console) Warn(msg string) {
	prefix := c.emojiPrefix("⚠️")
	if prefix == "" {
		prefix = "[warn] "
	}
	fmt.Fprintf(c.Out, "%s%s\n", prefix, c.warn.Render(msg))
}

// Error prints an error message.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.Out, "%s\n", c.errorS.Render("✗ "+msg))
}

func (c *Console) emojiPrefix(emoji string) string {
	if !c.EmojiEnabled || emoji == "" {
		return ""
	}
	return emoji + " "
}
