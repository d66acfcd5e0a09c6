// Where: internal/app/config_cmd.go
// What: The config command group.
// Why: Inspect and initialize ~/.halide-build/config.yaml.
package app

import (
	"fmt"

	"github.com/poruru/halide-build/internal/infra/config"
	"gopkg.in/yaml.v3"
)

func runConfigPath(c commandContext) int {
	fmt.Fprintln(c.out, c.cfgPath)
	return 0
}

func runConfigShow(c commandContext) int {
	cfg := c.cfg
	if path, err := c.halidePath(); err == nil {
		cfg.HalidePath = path
	}
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return exitWithError(c.console, fmt.Errorf("encode config: %w", err))
	}
	_, _ = c.out.Write(payload)
	return 0
}

func runConfigInit(c commandContext) int {
	created, err := config.Ensure(c.cfgPath)
	if err != nil {
		return exitWithError(c.console, err)
	}
	if created {
		c.console.Success(fmt.Sprintf("Wrote default configuration to %s", c.cfgPath))
		return 0
	}
	c.console.Infof("Configuration already exists at %s", c.cfgPath)
	return 0
}
