package halide

import "errors"

var (
	ErrRunnerNil       = errors.New("command runner is nil")
	ErrHalidePathEmpty = errors.New("halide path is required")
	ErrNoSources       = errors.New("at least one input file is required")
	ErrOutputEmpty     = errors.New("output path is required")
	ErrOutputMissing   = errors.New("output executable not found")
	ErrNotExecutable   = errors.New("output is not executable")
	ErrRepoEmpty       = errors.New("source repository is required")
	ErrLibraryName     = errors.New("invalid library filename")
)
