package app

import (
	"fmt"

	"github.com/poruru/halide-build/internal/infra/runner"
	"github.com/poruru/halide-build/internal/infra/ui"
)

// exitWithError logs err and returns the exit code it maps to.
func exitWithError(console *ui.Console, err error) int {
	console.Error(err.Error())
	return runner.ExitCode(err)
}

// fail logs msg with its cause and returns the exit code err maps to.
func fail(console *ui.Console, msg string, err error) int {
	console.Error(fmt.Sprintf("%s: %v", msg, err))
	return runner.ExitCode(err)
}
