package halide

import (
	"context"
)

type runnerCall struct {
	dir  string
	env  []string
	name string
	args []string
}

type fakeRunner struct {
	calls  []runnerCall
	err    error
	output string
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.calls = append(f.calls, runnerCall{dir: dir, name: name, args: args})
	return f.err
}

func (f *fakeRunner) RunEnv(_ context.Context, dir string, env []string, name string, args ...string) error {
	f.calls = append(f.calls, runnerCall{dir: dir, env: env, name: name, args: args})
	return f.err
}

func (f *fakeRunner) RunOutput(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, runnerCall{dir: dir, name: name, args: args})
	return []byte(f.output), f.err
}

func (f *fakeRunner) last() runnerCall {
	if len(f.calls) == 0 {
		return runnerCall{}
	}
	return f.calls[len(f.calls)-1]
}
