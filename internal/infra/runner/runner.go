// Where: internal/infra/runner/runner.go
// What: External process execution for git, make, and the C++ toolchain.
// Why: Keep os/exec behind an interface so argv construction stays testable.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// CommandRunner defines the interface for executing external commands.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
	RunEnv(ctx context.Context, dir string, env []string, name string, args ...string) error
	RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner is a concrete implementation of CommandRunner using os/exec.
// Child stdout/stderr go to Out/ErrOut, defaulting to the process streams.
type ExecRunner struct {
	Out    io.Writer
	ErrOut io.Writer
	In     io.Reader
}

func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	return r.RunEnv(ctx, dir, nil, name, args...)
}

// RunEnv runs name with env appended to the current environment.
// Later entries override earlier ones for the same key.
func (r ExecRunner) RunEnv(ctx context.Context, dir string, env []string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.stdin()
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}

func (r ExecRunner) RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("run %s: %w", name, err)
	}
	return output, nil
}

func (r ExecRunner) stdin() io.Reader {
	if r.In != nil {
		return r.In
	}
	return os.Stdin
}

func (r ExecRunner) stdout() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

func (r ExecRunner) stderr() io.Writer {
	if r.ErrOut != nil {
		return r.ErrOut
	}
	return os.Stderr
}
