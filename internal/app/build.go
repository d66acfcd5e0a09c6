// Where: internal/app/build.go
// What: The build and run commands.
// Why: Compile kernels against the Halide checkout and optionally execute them.
package app

import (
	"fmt"
	"strings"

	"github.com/poruru/halide-build/internal/halide"
	"github.com/poruru/halide-build/internal/meta"
)

func runBuild(c commandContext) int {
	cmd := c.cli.Build
	build, err := c.newBuild(cmd.Toolchain, cmd.Name, cmd.Input)
	if err != nil {
		return exitWithError(c.console, err)
	}
	build.Keep = true
	build.BuildArgs = c.passthrough

	c.console.Infof("Compiling %s to %s", strings.Join(build.Sources, ", "), build.Output)
	if err := build.Compile(c.ctx, c.runner()); err != nil {
		return fail(c.console, fmt.Sprintf("Unable to build %s", build.Output), err)
	}

	if code := c.compileShared(cmd.Toolchain); code != 0 {
		return code
	}
	c.console.Success(fmt.Sprintf("Built %s", build.Output))
	return 0
}

func runRun(c commandContext) int {
	cmd := c.cli.Run
	output := fmt.Sprintf("./%s%d", meta.RunOutputPrefix, c.now().UnixMilli())
	build, err := c.newBuild(cmd.Toolchain, output, cmd.Input)
	if err != nil {
		return exitWithError(c.console, err)
	}
	build.Keep = cmd.Keep
	build.RunArgs = c.passthrough

	c.console.Infof("Compiling %s to %s", strings.Join(build.Sources, ", "), output)
	if err := build.Compile(c.ctx, c.runner()); err != nil {
		return fail(c.console, fmt.Sprintf("Failure building %s", strings.Join(build.Sources, ", ")), err)
	}

	c.console.Infof("Running %s", output)
	if err := build.Run(c.ctx, c.runner()); err != nil {
		return fail(c.console, fmt.Sprintf("Failure while running %s", output), err)
	}

	return c.compileShared(cmd.Toolchain)
}

// compileShared runs the optional --shared step. It returns 0 when there
// is nothing to do.
func (c commandContext) compileShared(tc ToolchainFlags) int {
	input := strings.TrimSpace(tc.Shared)
	if input == "" {
		return 0
	}
	lib := halide.SharedLibraryPath(input)
	c.console.Infof("Building shared library: %s -> %s", input, lib)
	if err := halide.CompileSharedLibrary(c.ctx, c.runner(), tc.CXX, lib, input); err != nil {
		return fail(c.console, "Unable to compile shared library", err)
	}
	return 0
}
