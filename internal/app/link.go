package app

import (
	"fmt"
	"strings"

	"github.com/poruru/halide-build/internal/halide"
)

// runLink prints one line of linker flags (or a cgo directive) per library.
func runLink(c commandContext) int {
	for _, lib := range c.cli.Link.Libraries {
		directive, err := halide.ParseLibrary(lib)
		if err != nil {
			return exitWithError(c.console, err)
		}
		if c.cli.Link.Cgo {
			fmt.Fprintln(c.out, directive.CgoDirective())
			continue
		}
		fmt.Fprintln(c.out, strings.Join(directive.Flags(), " "))
	}
	return 0
}
