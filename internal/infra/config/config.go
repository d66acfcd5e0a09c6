// Where: internal/infra/config/config.go
// What: Config load/save for ~/.halide-build/config.yaml.
// Why: Persist defaults for the source checkout and the toolchain.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/poruru/halide-build/internal/envutil"
	"github.com/poruru/halide-build/internal/meta"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config represents the ~/.halide-build/config.yaml file.
type Config struct {
	Version    int          `yaml:"version"`
	HalidePath string       `yaml:"halide_path,omitempty"`
	Source     SourceConfig `yaml:"source,omitempty"`
	Build      BuildConfig  `yaml:"build,omitempty"`
}

// SourceConfig stores defaults for the src command.
type SourceConfig struct {
	URL       string   `yaml:"url,omitempty"`
	Branch    string   `yaml:"branch,omitempty"`
	Make      string   `yaml:"make,omitempty"`
	MakeFlags []string `yaml:"make_flags,omitempty"`
}

// BuildConfig stores defaults for the build and run commands.
type BuildConfig struct {
	CXX      string `yaml:"cxx,omitempty"`
	CXXFlags string `yaml:"cxxflags,omitempty"`
	LDFlags  string `yaml:"ldflags,omitempty"`
	TermInfo string `yaml:"terminfo,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Version: 1,
		Source: SourceConfig{
			URL:    meta.DefaultRepo,
			Branch: meta.DefaultBranch,
			Make:   meta.DefaultMake,
		},
		Build: BuildConfig{
			CXX:      meta.DefaultCompiler,
			TermInfo: meta.DefaultTermInfo,
		},
	}
}

// Path returns the config location, honoring HALIDE_BUILD_CONFIG.
func Path() (string, error) {
	if path, ok := envutil.Lookup(meta.EnvConfigPath); ok {
		return path, nil
	}
	return envutil.RelativeToHome(filepath.Join(meta.HomeDir, meta.ConfigFilename))
}

// Load reads, validates, and decodes the config at path. Unset fields
// keep their built-in defaults.
func Load(path string) (Config, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(payload)) == 0 {
		return cfg, nil
	}
	if err := Validate(payload); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns defaults when the file is missing.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Ensure creates the config file with defaults if it doesn't exist.
// It reports whether a new file was written.
func Ensure(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, Save(path, DefaultConfig())
		}
		return false, fmt.Errorf("stat config: %w", err)
	}
	return false, nil
}

// ResolveHalidePath returns the configured checkout path, or ~/halide.
func (c Config) ResolveHalidePath() (string, error) {
	if c.HalidePath != "" {
		return c.HalidePath, nil
	}
	return envutil.RelativeToHome(meta.DefaultSrcDir)
}
