// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep names, env keys, and defaults in one place.
package meta

const (
	// Project Identity
	AppName     = "halide"
	Description = "Download, build, and run Halide kernels"

	// Directory Layout
	HomeDir        = ".halide-build"
	ConfigFilename = "config.yaml"
	DefaultSrcDir  = "halide"

	// Environment
	EnvConfigPath = "HALIDE_BUILD_CONFIG"
	EnvCompiler   = "CXX"

	// Source Defaults
	DefaultRepo   = "https://github.com/halide/halide"
	DefaultBranch = "master"
	DefaultMake   = "make"

	// Toolchain Defaults
	DefaultCompiler = "c++"
	DefaultTermInfo = "-lncurses"
	CxxStandard     = "-std=c++11"

	// Run Output
	RunOutputPrefix = "halide-"
)
