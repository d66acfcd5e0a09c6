// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var errHomeRequired = errors.New("cannot find HOME directory")

// RelativeToHome joins path onto the user's home directory.
// Example: RelativeToHome("halide") returns "/home/me/halide".
func RelativeToHome(path string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "", errHomeRequired
	}
	return filepath.Join(home, path), nil
}

// Lookup returns the trimmed value of key and whether it was set to a non-blank value.
func Lookup(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

// FirstNonEmpty returns the first argument that is not blank.
func FirstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// PrependPathList prepends dir to an os.PathListSeparator-joined list stored in key.
// Example: PrependPathList("LD_LIBRARY_PATH", "/opt/halide/lib") returns
// "LD_LIBRARY_PATH=/opt/halide/lib:/usr/local/lib" when the variable was set.
func PrependPathList(key, dir string) string {
	current, ok := Lookup(key)
	if !ok {
		return fmt.Sprintf("%s=%s", key, dir)
	}
	return fmt.Sprintf("%s=%s%c%s", key, dir, os.PathListSeparator, current)
}
