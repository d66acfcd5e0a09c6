// Where: internal/app/src.go
// What: The src command.
// Why: Clone or update the Halide checkout, then build it with make.
package app

import (
	"fmt"

	"github.com/poruru/halide-build/internal/halide"
)

func runSrc(c commandContext) int {
	path, err := c.halidePath()
	if err != nil {
		return exitWithError(c.console, err)
	}

	source := halide.Source{
		Path:      path,
		Repo:      c.cli.Src.URL,
		Branch:    c.cli.Src.Branch,
		Make:      c.cli.Src.Make,
		MakeFlags: c.makeFlags(),
	}
	r := c.runner()

	if source.Exists() {
		c.console.Header("🔄", fmt.Sprintf("Updating Halide source in %s", path))
		if err := source.Update(c.ctx, r); err != nil {
			return fail(c.console, "Failed to update git repository", err)
		}
	} else {
		c.console.Header("📥", fmt.Sprintf("Downloading Halide source to %s", path))
		if err := source.Download(c.ctx, r); err != nil {
			return fail(c.console, "Failed to clone git repository", err)
		}
	}

	c.console.Header("🔨", fmt.Sprintf("Building Halide in %s", path))
	if err := source.Build(c.ctx, r); err != nil {
		return fail(c.console, "Halide build failed", err)
	}
	c.console.Success(fmt.Sprintf("Halide built successfully in %s", path))
	if rev, err := source.Revision(c.ctx, r); err == nil {
		c.console.Item("Revision", rev)
	}
	return 0
}

// makeFlags prefers passthrough args over configured make_flags.
func (c commandContext) makeFlags() []string {
	if len(c.passthrough) > 0 {
		return c.passthrough
	}
	return c.cfg.Source.MakeFlags
}
