// Where: cmd/halide/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"
	"time"

	"github.com/poruru/halide-build/internal/app"
	"github.com/poruru/halide-build/internal/infra/interaction"
	"github.com/poruru/halide-build/internal/infra/runner"
)

var isTerminal = interaction.IsTerminal

// buildDependencies constructs all runtime dependencies required by the CLI.
func buildDependencies() app.Dependencies {
	return app.Dependencies{
		Out:           os.Stdout,
		ErrOut:        os.Stderr,
		Runner:        runner.ExecRunner{Out: os.Stdout, ErrOut: os.Stderr, In: os.Stdin},
		Prompter:      newPrompter(),
		Now:           time.Now,
		IsInteractive: func() bool { return isTerminal(os.Stdin) },
		Emoji:         isTerminal(os.Stderr),
		Exit:          os.Exit,
	}
}

// newPrompter falls back to a plain y/N prompt on dumb terminals,
// where huh cannot draw its form.
func newPrompter() interaction.Prompter {
	if os.Getenv("TERM") == "dumb" {
		return interaction.LinePrompter{In: os.Stdin, Out: os.Stderr}
	}
	return interaction.HuhPrompter{}
}
