// Where: internal/halide/build.go
// What: Kernel compile and run steps.
// Why: Turn a Build description into compiler and executable invocations.
package halide

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/poruru/halide-build/internal/envutil"
	"github.com/poruru/halide-build/internal/infra/fileops"
	"github.com/poruru/halide-build/internal/meta"
)

// Libraries linked into every kernel. The terminfo flag goes between the two groups.
var (
	linkLibsHead = []string{"-lHalide", "-lpng", "-ljpeg", "-lpthread"}
	linkLibsTail = []string{"-ldl", "-lz"}
)

// Build stores the context for compiling and running a Halide kernel.
type Build struct {
	HalidePath string
	Sources    []string
	Output     string
	Compiler   string
	CXXFlags   string
	LDFlags    string
	BuildArgs  []string
	RunArgs    []string
	TermInfo   string
	Keep       bool
	Generator  bool
}

// NewBuild creates a build with the given Halide path and output.
func NewBuild(halidePath, output string) Build {
	return Build{HalidePath: halidePath, Output: output}
}

func (b Build) IncludeDir() string { return filepath.Join(b.HalidePath, "include") }
func (b Build) ToolsDir() string   { return filepath.Join(b.HalidePath, "tools") }
func (b Build) LibDir() string     { return filepath.Join(b.HalidePath, "lib") }

// CompilerName returns the compiler that Compile will invoke.
func (b Build) CompilerName() string {
	return ResolveCompiler(b.Compiler)
}

// CompileArgs returns the compiler argv (without the compiler itself).
func (b Build) CompileArgs() []string {
	args := []string{
		meta.CxxStandard,
		"-I", b.IncludeDir(),
		"-I", b.ToolsDir(),
	}
	args = append(args, SplitFlags(b.CXXFlags)...)
	if b.Generator {
		args = append(args, filepath.Join(b.ToolsDir(), "GenGen.cpp"))
	}
	args = append(args, b.BuildArgs...)
	args = append(args, b.Sources...)
	args = append(args, "-o", b.Output)
	args = append(args, "-L", b.LibDir())
	args = append(args, linkLibsHead...)
	args = append(args, envutil.FirstNonEmpty(b.TermInfo, meta.DefaultTermInfo))
	args = append(args, linkLibsTail...)
	args = append(args, SplitFlags(b.LDFlags)...)
	return args
}

func (b Build) validate() error {
	if strings.TrimSpace(b.HalidePath) == "" {
		return ErrHalidePathEmpty
	}
	if strings.TrimSpace(b.Output) == "" {
		return ErrOutputEmpty
	}
	return nil
}

// Compile runs the compile step in the current directory.
func (b Build) Compile(ctx context.Context, runner Runner) error {
	if runner == nil {
		return ErrRunnerNil
	}
	if err := b.validate(); err != nil {
		return err
	}
	if len(b.Sources) == 0 {
		return ErrNoSources
	}
	if err := runner.Run(ctx, "", b.CompilerName(), b.CompileArgs()...); err != nil {
		return fmt.Errorf("compile %s: %w", b.Output, err)
	}
	return nil
}

// RunEnv returns the environment entries that let the executable find libHalide.
func (b Build) RunEnv() []string {
	env := []string{envutil.PrependPathList("LD_LIBRARY_PATH", b.LibDir())}
	if runtime.GOOS == "darwin" {
		env = append(env, envutil.PrependPathList("DYLD_LIBRARY_PATH", b.LibDir()))
	}
	return env
}

// Run executes the compiled output with RunArgs. Unless Keep is set the
// output is removed afterwards, whether or not the run succeeded.
func (b Build) Run(ctx context.Context, runner Runner) error {
	if runner == nil {
		return ErrRunnerNil
	}
	if err := b.validate(); err != nil {
		return err
	}
	if !fileops.Exists(b.Output) {
		return fmt.Errorf("%w: %s", ErrOutputMissing, b.Output)
	}
	if !b.Keep {
		defer func() { _ = fileops.RemoveFile(b.Output) }()
	}
	if !fileops.IsExecutable(b.Output) {
		return fmt.Errorf("%w: %s", ErrNotExecutable, b.Output)
	}
	if err := runner.RunEnv(ctx, "", b.RunEnv(), executablePath(b.Output), b.RunArgs...); err != nil {
		return fmt.Errorf("run %s: %w", b.Output, err)
	}
	return nil
}

// executablePath makes bare names explicit so exec does not search PATH.
func executablePath(output string) string {
	if filepath.IsAbs(output) || strings.ContainsRune(output, filepath.Separator) {
		return output
	}
	return "." + string(filepath.Separator) + output
}
