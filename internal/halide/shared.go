package halide

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/poruru/halide-build/internal/meta"
)

// SharedLibraryPath maps an object or source path to the shared library
// name next to it: "out/blur.o" becomes "out/libblur.so".
func SharedLibraryPath(input string) string {
	dir, file := filepath.Split(input)
	stem := strings.TrimSuffix(file, filepath.Ext(file))
	return dir + "lib" + stem + ".so"
}

// SharedLibraryArgs returns the compiler argv for a shared library build.
func SharedLibraryArgs(output string, args ...string) []string {
	argv := []string{meta.CxxStandard, "-shared", "-o", output}
	return append(argv, args...)
}

// CompileSharedLibrary compiles args into a shared library at output.
func CompileSharedLibrary(ctx context.Context, runner Runner, compiler, output string, args ...string) error {
	if runner == nil {
		return ErrRunnerNil
	}
	if strings.TrimSpace(output) == "" {
		return ErrOutputEmpty
	}
	if err := runner.Run(ctx, "", ResolveCompiler(compiler), SharedLibraryArgs(output, args...)...); err != nil {
		return fmt.Errorf("compile shared library %s: %w", output, err)
	}
	return nil
}
