// Where: internal/app/new.go
// What: The new command.
// Why: Scaffold a Halide generator source file.
package app

import (
	"fmt"

	"github.com/poruru/halide-build/internal/domain/template"
	"github.com/poruru/halide-build/internal/infra/fileops"
)

func runNew(c commandContext) int {
	cmd := c.cli.New
	name := cmd.Name
	if name == "" {
		name = template.NameFromPath(cmd.Path)
	}

	content, err := template.RenderGenerator(template.GeneratorSpec{
		Name:       name,
		Type:       cmd.Type,
		Dimensions: cmd.Dims,
	})
	if err != nil {
		return exitWithError(c.console, err)
	}

	if fileops.Exists(cmd.Path) && !cmd.Force {
		ok, err := c.confirmOverwrite(cmd.Path)
		if err != nil {
			return exitWithError(c.console, err)
		}
		if !ok {
			c.console.Warn(fmt.Sprintf("%s already exists; use --force to overwrite", cmd.Path))
			return 1
		}
	}

	if err := fileops.WriteFile(cmd.Path, content); err != nil {
		return fail(c.console, "Unable to write new file", err)
	}
	c.console.Success(fmt.Sprintf("Created generator %s", cmd.Path))
	return 0
}

// confirmOverwrite asks the user only when a prompter and a terminal are available.
func (c commandContext) confirmOverwrite(path string) (bool, error) {
	if c.deps.Prompter == nil || !c.interactive() {
		return false, nil
	}
	return c.deps.Prompter.Confirm(fmt.Sprintf("Overwrite %s?", path))
}
