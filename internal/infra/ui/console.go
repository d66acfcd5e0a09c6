// Where: internal/infra/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Route progress logging through one place so --quiet can silence it.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// Console provides helper methods for formatted output.
type Console struct {
	Out          io.Writer
	EmojiEnabled bool
	Quiet        bool
}

// NewWithOptions creates a Console with explicit emoji and quiet settings.
func NewWithOptions(out io.Writer, emoji, quiet bool) *Console {
	return &Console{Out: out, EmojiEnabled: emoji, Quiet: quiet}
}

// Header prints a section header with an emoji.
// Example: 📦 Downloading Halide source.
func (c *Console) Header(emoji, title string) {
	c.printf("%s%s\n", c.emojiPrefix(emoji), title)
}

// Item prints a key-value item with indentation.
// Example:    Output:                        ./halide-1700000000000.
func (c *Console) Item(key string, value any) {
	c.printf("   %-30s %v\n", key+":", value)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	c.printf("%s%s\n", c.prefix("✅", "[ok] "), msg)
}

// Info prints an info message.
func (c *Console) Info(msg string) {
	c.printf("%s\n", msg)
}

// Infof formats and prints an info message.
func (c *Console) Infof(format string, args ...any) {
	c.Info(fmt.Sprintf(format, args...))
}

// Warn prints a warning message with an emoji.
func (c *Console) Warn(msg string) {
	c.printf("%s%s\n", c.prefix("⚠️", "[warn] "), msg)
}

// Error prints an error message with an emoji.
func (c *Console) Error(msg string) {
	c.printf("%s%s\n", c.prefix("❌", "[error] "), msg)
}

func (c *Console) printf(format string, args ...any) {
	if c == nil || c.Quiet || c.Out == nil {
		return
	}
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Console) prefix(emoji, fallback string) string {
	if p := c.emojiPrefix(emoji); p != "" {
		return p
	}
	return fallback
}

func (c *Console) emojiPrefix(emoji string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return ""
	}
	return emoji + " "
}
