// Where: cmd/halide/main.go
// What: CLI entrypoint.
// Why: Execute halide commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru/halide-build/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
