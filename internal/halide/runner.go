// Package halide builds command lines for the Halide toolchain: fetching and
// building the framework source, compiling kernels against it, and running them.
package halide

import (
	"context"
	"strings"

	"github.com/poruru/halide-build/internal/envutil"
	"github.com/poruru/halide-build/internal/meta"
)

// Runner is the subset of runner.CommandRunner used by this package.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
	RunEnv(ctx context.Context, dir string, env []string, name string, args ...string) error
	RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ResolveCompiler picks the C++ compiler: explicit name, then $CXX, then c++.
func ResolveCompiler(name string) string {
	cxx, _ := envutil.Lookup(meta.EnvCompiler)
	return envutil.FirstNonEmpty(strings.TrimSpace(name), cxx, meta.DefaultCompiler)
}

// SplitFlags splits a shell-style flag string on whitespace.
// Quoting is not interpreted.
func SplitFlags(flags string) []string {
	return strings.Fields(flags)
}
