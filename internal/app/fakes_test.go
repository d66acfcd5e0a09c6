package app

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"
	"time"
)

type runnerCall struct {
	dir  string
	env  []string
	name string
	args []string
}

// fakeRunner records invocations. When compile is set, any call carrying
// "-o <path>" creates an executable at path so the run step can find it.
type fakeRunner struct {
	calls   []runnerCall
	queries []runnerCall
	errs    map[string]error
	compile bool
	output  string
}

func (f *fakeRunner) record(call runnerCall) error {
	f.calls = append(f.calls, call)
	if f.compile {
		for i, arg := range call.args {
			if arg == "-o" && i+1 < len(call.args) {
				if err := os.WriteFile(call.args[i+1], []byte("#!/bin/sh\n"), 0o755); err != nil {
					return err
				}
			}
		}
	}
	return f.errs[call.name]
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	return f.record(runnerCall{dir: dir, name: name, args: args})
}

func (f *fakeRunner) RunEnv(_ context.Context, dir string, env []string, name string, args ...string) error {
	return f.record(runnerCall{dir: dir, env: env, name: name, args: args})
}

func (f *fakeRunner) RunOutput(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	f.queries = append(f.queries, runnerCall{dir: dir, name: name, args: args})
	return []byte(f.output), f.errs[name+" "+args[0]]
}

type fakePrompter struct {
	answer bool
	asked  []string
}

func (f *fakePrompter) Confirm(title string) (bool, error) {
	f.asked = append(f.asked, title)
	return f.answer, nil
}

// isolateEnv points HOME at a temp dir and unsets toolchain variables for
// the duration of the test.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{"CXX", "CXXFLAGS", "LDFLAGS", "HALIDE_PATH", "HALIDE_TERMINFO", "HALIDE_BUILD_CONFIG"} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
	return home
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	path := filepath.Join(home, ".halide-build", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func fixedNow() time.Time {
	return time.UnixMilli(1700000000000)
}

// exitError returns a real *exec.ExitError with the given status.
func exitError(t *testing.T, code int) error {
	t.Helper()
	err := exec.Command("sh", "-c", "exit "+strconv.Itoa(code)).Run()
	if err == nil {
		t.Fatalf("expected exit error")
	}
	return err
}
