// Where: internal/app/args.go
// What: Raw argument helpers that run before Kong parsing.
// Why: Passthrough args, the env file, and kong defaults must be known before parse.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru/halide-build/internal/envutil"
	"github.com/poruru/halide-build/internal/infra/config"
	"github.com/poruru/halide-build/internal/meta"
)

// splitPassthrough splits args at the first "--". Everything after it is
// handed verbatim to make, the compiler, or the kernel.
func splitPassthrough(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

// flagsWithValue lists global flags whose value is the next argument.
var flagsWithValue = map[string]bool{
	"-p":            true,
	"--halide-path": true,
	"--env-file":    true,
}

// commandName extracts the first non-flag argument from the command line,
// which represents the command name. Recognizes and skips known flag pairs.
func commandName(args []string) string {
	skipNext := false
	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if strings.HasPrefix(arg, "-") {
			skipNext = flagsWithValue[arg]
			continue
		}
		return arg
	}
	return ""
}

// envFileFromArgs returns the --env-file value, if any.
func envFileFromArgs(args []string) string {
	for i, arg := range args {
		if value, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return value
		}
		if arg == "--env-file" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func hasQuietFlag(args []string) bool {
	head, _ := splitPassthrough(args)
	for _, arg := range head {
		if arg == "-q" || arg == "--quiet" {
			return true
		}
	}
	return false
}

// loadEnvFile loads path, or .env in the working directory when path is empty.
// Variables already present in the environment are not overridden.
func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
		return nil
	}
	if _, err := os.Stat(".env"); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat .env: %w", err)
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// kongVars exposes config values as flag defaults. Flags and env vars
// still take precedence.
func kongVars(cfg config.Config) kong.Vars {
	halidePath, err := cfg.ResolveHalidePath()
	if err != nil {
		halidePath = ""
	}
	return kong.Vars{
		"halide_path": halidePath,
		"make":        envutil.FirstNonEmpty(cfg.Source.Make, meta.DefaultMake),
		"source_url":  envutil.FirstNonEmpty(cfg.Source.URL, meta.DefaultRepo),
		"branch":      envutil.FirstNonEmpty(cfg.Source.Branch, meta.DefaultBranch),
		"cxx":         envutil.FirstNonEmpty(cfg.Build.CXX, meta.DefaultCompiler),
		"cxxflags":    cfg.Build.CXXFlags,
		"ldflags":     cfg.Build.LDFlags,
		"terminfo":    envutil.FirstNonEmpty(cfg.Build.TermInfo, meta.DefaultTermInfo),
	}
}
