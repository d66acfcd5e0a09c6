// Where: internal/infra/config/config_test.go
// What: Tests for config load/save and schema validation.
// Why: Ensure defaults survive partial files and bad keys are rejected.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestPathHonorsOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("HALIDE_BUILD_CONFIG", "")

	path, err := Path()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if want := filepath.Join(home, ".halide-build", "config.yaml"); path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}

	t.Setenv("HALIDE_BUILD_CONFIG", "/etc/halide.yaml")
	path, err = Path()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if path != "/etc/halide.yaml" {
		t.Fatalf("unexpected path: %s", path)
	}
}

func TestSaveLoadRoundTripKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	payload := []byte("version: 1\nhalide_path: /opt/halide\nsource:\n  branch: main\n  make_flags: [\"-j8\"]\nbuild:\n  cxx: clang++\n")
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HalidePath != "/opt/halide" || cfg.Source.Branch != "main" || cfg.Build.CXX != "clang++" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Source.URL != "https://github.com/halide/halide" || cfg.Source.Make != "make" {
		t.Fatalf("expected defaults for unset source keys: %+v", cfg.Source)
	}
	if !reflect.DeepEqual(cfg.Source.MakeFlags, []string{"-j8"}) {
		t.Fatalf("unexpected make flags: %v", cfg.Source.MakeFlags)
	}

	out := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := Save(out, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}
	reloaded, err := Load(out)
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if !reflect.DeepEqual(reloaded, cfg) {
		t.Fatalf("round trip mismatch:\n got: %+v\nwant: %+v", reloaded, cfg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\nbuild:\n  compiler: clang++\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadRejectsWrongTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("source:\n  make_flags: -j8\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadEmptyFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load or default: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestEnsureCreatesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".halide-build", "config.yaml")

	created, err := Ensure(path)
	if err != nil || !created {
		t.Fatalf("expected config to be created: %v %v", created, err)
	}
	created, err = Ensure(path)
	if err != nil || created {
		t.Fatalf("expected existing config to be kept: %v %v", created, err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("load ensured config: %v", err)
	}
}

func TestResolveHalidePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultConfig().ResolveHalidePath()
	if err != nil {
		t.Fatalf("resolve halide path: %v", err)
	}
	if want := filepath.Join(home, "halide"); path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}

	path, err = Config{HalidePath: "/opt/halide"}.ResolveHalidePath()
	if err != nil || path != "/opt/halide" {
		t.Fatalf("unexpected result: %s %v", path, err)
	}
}
