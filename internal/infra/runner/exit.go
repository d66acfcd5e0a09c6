package runner

import (
	"errors"
	"os/exec"
)

// ExitCode maps an error to a process exit status.
// A child that ran and exited non-zero yields its own status; nil yields 0;
// anything else (spawn failure, I/O error, signal) yields 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
