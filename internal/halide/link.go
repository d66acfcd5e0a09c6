package halide

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// versionedLib matches "libfoo.so", "libfoo.so.1.2", "libfoo.a" and "libfoo.dylib".
var versionedLib = regexp.MustCompile(`\.(a|so|dylib)(\.[0-9]+)*$`)

// LinkDirective describes how to link against a library file.
type LinkDirective struct {
	Dir  string
	Name string
}

// ParseLibrary derives the search directory and -l name from a library path.
// Example: "/opt/halide/lib/libHalide.so" yields {Dir: "/opt/halide/lib", Name: "Halide"}.
func ParseLibrary(filename string) (LinkDirective, error) {
	clean := strings.TrimSpace(filename)
	if clean == "" {
		return LinkDirective{}, fmt.Errorf("%w: empty path", ErrLibraryName)
	}
	dir, file := filepath.Split(clean)
	name := versionedLib.ReplaceAllString(file, "")
	if name == file {
		name = strings.TrimSuffix(file, filepath.Ext(file))
	}
	name = strings.TrimPrefix(name, "lib")
	if name == "" {
		return LinkDirective{}, fmt.Errorf("%w: %s", ErrLibraryName, filename)
	}
	return LinkDirective{Dir: filepath.Clean(dir), Name: name}, nil
}

// Flags returns the linker flags for the directive.
func (d LinkDirective) Flags() []string {
	var flags []string
	if d.Dir != "" && d.Dir != "." {
		flags = append(flags, "-L"+d.Dir)
	}
	return append(flags, "-l"+d.Name)
}

// CgoDirective renders the directive as a cgo preamble line.
func (d LinkDirective) CgoDirective() string {
	return "#cgo LDFLAGS: " + strings.Join(d.Flags(), " ")
}
