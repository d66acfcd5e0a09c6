// Where: internal/app/command_context.go
// What: Shared state handed to every command handler.
// Why: Resolve the Halide path, runner, and clock the same way for each command.
package app

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/poruru/halide-build/internal/envutil"
	"github.com/poruru/halide-build/internal/halide"
	"github.com/poruru/halide-build/internal/infra/config"
	"github.com/poruru/halide-build/internal/infra/runner"
	"github.com/poruru/halide-build/internal/infra/ui"
)

type commandContext struct {
	ctx         context.Context
	cli         CLI
	deps        Dependencies
	out         io.Writer
	console     *ui.Console
	cfg         config.Config
	cfgPath     string
	passthrough []string
}

// halidePath prefers the flag/env value and falls back to the config file.
func (c commandContext) halidePath() (string, error) {
	if path := strings.TrimSpace(c.cli.HalidePath); path != "" {
		return path, nil
	}
	return c.cfg.ResolveHalidePath()
}

func (c commandContext) runner() runner.CommandRunner {
	if c.deps.Runner != nil {
		return c.deps.Runner
	}
	return runner.ExecRunner{}
}

func (c commandContext) now() time.Time {
	if c.deps.Now != nil {
		return c.deps.Now()
	}
	return time.Now()
}

func (c commandContext) interactive() bool {
	return c.deps.IsInteractive != nil && c.deps.IsInteractive()
}

// newBuild assembles a halide.Build from toolchain flags and inputs.
func (c commandContext) newBuild(tc ToolchainFlags, output string, inputs []string) (halide.Build, error) {
	path, err := c.halidePath()
	if err != nil {
		return halide.Build{}, err
	}
	build := halide.NewBuild(path, output)
	build.Sources = inputs
	build.Compiler = envutil.FirstNonEmpty(tc.CXX, c.cfg.Build.CXX)
	build.CXXFlags = tc.CXXFlags
	build.LDFlags = tc.LDFlags
	build.TermInfo = envutil.FirstNonEmpty(tc.TermInfo, c.cfg.Build.TermInfo)
	build.Generator = tc.Generator
	return build, nil
}
