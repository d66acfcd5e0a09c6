// Where: internal/halide/source.go
// What: Halide source checkout maintenance.
// Why: Clone, update, and build the framework with git and make.
package halide

import (
	"context"
	"fmt"
	"strings"

	"github.com/poruru/halide-build/internal/envutil"
	"github.com/poruru/halide-build/internal/infra/fileops"
	"github.com/poruru/halide-build/internal/meta"
)

// Source is used to maintain the Halide source directory.
type Source struct {
	Path      string
	Repo      string
	Branch    string
	Make      string
	MakeFlags []string
}

func (s Source) branch() string {
	return envutil.FirstNonEmpty(s.Branch, meta.DefaultBranch)
}

func (s Source) makeCommand() string {
	return envutil.FirstNonEmpty(s.Make, meta.DefaultMake)
}

// Exists reports whether the checkout directory is present.
func (s Source) Exists() bool {
	return fileops.Exists(s.Path)
}

// CloneArgs returns the git argv for the initial download.
func (s Source) CloneArgs() []string {
	return []string{"clone", "-b", s.branch(), s.Repo, s.Path}
}

// PullArgs returns the git argv for updating an existing checkout.
func (s Source) PullArgs() []string {
	return []string{"pull", "origin", s.branch()}
}

// Download clones the repository for the first time.
func (s Source) Download(ctx context.Context, runner Runner) error {
	if err := s.validate(runner); err != nil {
		return err
	}
	if strings.TrimSpace(s.Repo) == "" {
		return ErrRepoEmpty
	}
	if err := runner.Run(ctx, "", "git", s.CloneArgs()...); err != nil {
		return fmt.Errorf("git clone %s: %w", s.Repo, err)
	}
	return nil
}

// Update pulls the configured branch inside the checkout.
func (s Source) Update(ctx context.Context, runner Runner) error {
	if err := s.validate(runner); err != nil {
		return err
	}
	if err := runner.Run(ctx, s.Path, "git", s.PullArgs()...); err != nil {
		return fmt.Errorf("git pull %s: %w", s.branch(), err)
	}
	return nil
}

// Build runs make with MakeFlags inside the checkout.
func (s Source) Build(ctx context.Context, runner Runner) error {
	if err := s.validate(runner); err != nil {
		return err
	}
	if err := runner.Run(ctx, s.Path, s.makeCommand(), s.MakeFlags...); err != nil {
		return fmt.Errorf("%s: %w", s.makeCommand(), err)
	}
	return nil
}

// Revision returns the short commit hash checked out at Path.
func (s Source) Revision(ctx context.Context, runner Runner) (string, error) {
	if err := s.validate(runner); err != nil {
		return "", err
	}
	out, err := runner.RunOutput(ctx, s.Path, "git", "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("git rev-parse failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	rev := strings.TrimSpace(string(out))
	if rev == "" {
		return "", fmt.Errorf("git rev-parse returned empty output")
	}
	return rev, nil
}

func (s Source) validate(runner Runner) error {
	if runner == nil {
		return ErrRunnerNil
	}
	if strings.TrimSpace(s.Path) == "" {
		return ErrHalidePathEmpty
	}
	return nil
}
