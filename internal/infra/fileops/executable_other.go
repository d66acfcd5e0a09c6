//go:build !unix

package fileops

import "os"

// IsExecutable reports whether path is a regular file. Platforms without
// POSIX permission bits decide executability by extension at spawn time.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
