// Where: internal/app/app_test.go
// What: Tests for dispatch, help, and pre-parse argument handling.
// Why: Ensure global flags, env files, and config defaults reach commands.
package app

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRunNoArgsPrintsHelp(t *testing.T) {
	isolateEnv(t)
	var out, errOut bytes.Buffer

	code := Run(nil, Dependencies{Out: &out, ErrOut: &errOut})
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	for _, want := range []string{"src", "build", "run", "new"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in help:\n%s", want, out.String())
		}
	}
}

func TestRunQuietOnlyPrintsHelp(t *testing.T) {
	isolateEnv(t)
	var out bytes.Buffer

	if code := Run([]string{"-q", "-p", "/opt/halide"}, Dependencies{Out: &out, ErrOut: &bytes.Buffer{}}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("expected usage in help:\n%s", out.String())
	}
}

func TestRunParseError(t *testing.T) {
	isolateEnv(t)
	var errOut bytes.Buffer

	code := Run([]string{"build"}, Dependencies{Out: &bytes.Buffer{}, ErrOut: &errOut, Runner: &fakeRunner{}})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(errOut.String(), "halide: error:") {
		t.Fatalf("unexpected stderr: %q", errOut.String())
	}
}

func TestRunVersion(t *testing.T) {
	isolateEnv(t)
	var out bytes.Buffer

	if code := Run([]string{"version"}, Dependencies{Out: &out, ErrOut: &bytes.Buffer{}}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatalf("expected version output")
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	home := isolateEnv(t)
	writeConfig(t, home, "build:\n  compiler: clang++\n")
	var errOut bytes.Buffer

	code := Run([]string{"version"}, Dependencies{Out: &bytes.Buffer{}, ErrOut: &errOut})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(errOut.String(), "invalid config") {
		t.Fatalf("unexpected stderr: %q", errOut.String())
	}
}

func TestEnvFileFeedsFlagDefaults(t *testing.T) {
	isolateEnv(t)
	envFile := filepath.Join(t.TempDir(), "halide.env")
	if err := os.WriteFile(envFile, []byte("CXX=clang++-17\nHALIDE_PATH=/opt/from-env\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	runner := &fakeRunner{}

	code := Run([]string{"--env-file", envFile, "build", "out", "a.cpp"}, Dependencies{
		Out: &bytes.Buffer{}, ErrOut: &bytes.Buffer{}, Runner: runner,
	})
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	call := runner.calls[0]
	if call.name != "clang++-17" {
		t.Fatalf("expected compiler from env file, got %s", call.name)
	}
	if call.args[2] != "/opt/from-env/include" {
		t.Fatalf("expected halide path from env file, got %v", call.args)
	}
}

func TestConfigFeedsFlagDefaults(t *testing.T) {
	home := isolateEnv(t)
	writeConfig(t, home, "halide_path: /srv/halide\nbuild:\n  cxx: g++-13\n  cxxflags: -O3\n  terminfo: -ltinfo\n")
	runner := &fakeRunner{}

	code := Run([]string{"build", "out", "a.cpp"}, Dependencies{Out: &bytes.Buffer{}, ErrOut: &bytes.Buffer{}, Runner: runner})
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	call := runner.calls[0]
	if call.name != "g++-13" {
		t.Fatalf("expected configured compiler, got %s", call.name)
	}
	joined := strings.Join(call.args, " ")
	for _, want := range []string{"-I /srv/halide/include", "-O3", "-lpthread -ltinfo -ldl"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in %q", want, joined)
		}
	}

	runner.calls = nil
	t.Setenv("CXX", "icpx")
	if code := Run([]string{"build", "out", "a.cpp"}, Dependencies{Out: &bytes.Buffer{}, ErrOut: &bytes.Buffer{}, Runner: runner}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if runner.calls[0].name != "icpx" {
		t.Fatalf("expected env to override config, got %s", runner.calls[0].name)
	}
}

func TestSplitPassthrough(t *testing.T) {
	head, tail := splitPassthrough([]string{"run", "a.cpp", "--", "-x", "--", "y"})
	if !reflect.DeepEqual(head, []string{"run", "a.cpp"}) {
		t.Fatalf("unexpected head: %v", head)
	}
	if !reflect.DeepEqual(tail, []string{"-x", "--", "y"}) {
		t.Fatalf("unexpected tail: %v", tail)
	}
	head, tail = splitPassthrough([]string{"src"})
	if len(head) != 1 || tail != nil {
		t.Fatalf("unexpected split: %v %v", head, tail)
	}
}

func TestCommandName(t *testing.T) {
	tests := map[string][]string{
		"":      {"-q"},
		"src":   {"-p", "/opt/halide", "src"},
		"build": {"--env-file", ".env", "-q", "build", "x"},
		"run":   {"--halide-path=/opt/halide", "run"},
	}
	for want, args := range tests {
		if got := commandName(args); got != want {
			t.Fatalf("commandName(%v) = %q, want %q", args, got, want)
		}
	}
}

func TestEnvFileFromArgs(t *testing.T) {
	if got := envFileFromArgs([]string{"--env-file", "a.env", "src"}); got != "a.env" {
		t.Fatalf("unexpected env file: %q", got)
	}
	if got := envFileFromArgs([]string{"--env-file=b.env"}); got != "b.env" {
		t.Fatalf("unexpected env file: %q", got)
	}
	if got := envFileFromArgs([]string{"src"}); got != "" {
		t.Fatalf("unexpected env file: %q", got)
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	if err := loadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected error for missing env file")
	}
}

func TestRunWarnsOnUnusedPassthrough(t *testing.T) {
	isolateEnv(t)
	var out, errOut bytes.Buffer

	code := Run([]string{"link", "libpng.a", "--", "-lz"}, Dependencies{Out: &out, ErrOut: &errOut})
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, errOut.String())
	}
	if !strings.Contains(errOut.String(), "ignoring arguments after --: -lz") {
		t.Fatalf("expected passthrough warning, got %q", errOut.String())
	}
	if out.String() != "-lpng\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestAcceptsPassthrough(t *testing.T) {
	for _, command := range []string{"src", "build <name> <input>", "run <input>"} {
		if !acceptsPassthrough(command) {
			t.Fatalf("%q should accept passthrough args", command)
		}
	}
	for _, command := range []string{"new <path>", "link <libraries>", "config show", "version"} {
		if acceptsPassthrough(command) {
			t.Fatalf("%q should not accept passthrough args", command)
		}
	}
}
