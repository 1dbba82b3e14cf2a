package stow

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"

	"github.com/arthur-debert/dotstow/pkg/errors"
	"github.com/arthur-debert/dotstow/pkg/logging"
	"github.com/arthur-debert/dotstow/pkg/paths"
	"github.com/rs/zerolog"
)

// DefaultBinary is the executable looked up on PATH
const DefaultBinary = "stow"

// RunnerOptions configures a Runner
type RunnerOptions struct {
	// Binary is a name looked up on PATH or an explicit path
	Binary string

	// Verbose is the number of -v flags passed through
	Verbose int

	// ExtraArgs are appended before the package name
	ExtraArgs []string

	// Stdout and Stderr receive stow's output; nil means os.Stdout/os.Stderr
	Stdout io.Writer
	Stderr io.Writer
}

// Runner implements Linker by executing stow
type Runner struct {
	binary    string
	verbose   int
	extraArgs []string
	stdout    io.Writer
	stderr    io.Writer
	logger    zerolog.Logger
}

// NewRunner creates a Runner
func NewRunner(opts RunnerOptions) *Runner {
	r := &Runner{
		binary:    opts.Binary,
		verbose:   opts.Verbose,
		extraArgs: opts.ExtraArgs,
		stdout:    opts.Stdout,
		stderr:    opts.Stderr,
		logger:    logging.GetLogger("stow"),
	}
	if r.binary == "" {
		r.binary = DefaultBinary
	}
	if r.stdout == nil {
		r.stdout = os.Stdout
	}
	if r.stderr == nil {
		r.stderr = os.Stderr
	}
	return r
}

// Binary returns the configured executable
func (r *Runner) Binary() string {
	return r.binary
}

// Args builds the stow argument list for a request:
//
//	-d <source> -t <target> [-R] [-n] [-v...] [extra...] <package>
func (r *Runner) Args(req Request) []string {
	args := []string{"-d", req.SourceDir, "-t", req.TargetDir}
	if req.Restow {
		args = append(args, "-R")
	}
	if req.DryRun {
		args = append(args, "-n")
	}
	for i := 0; i < r.verbose; i++ {
		args = append(args, "-v")
	}
	args = append(args, r.extraArgs...)
	return append(args, req.Package)
}

// Link runs stow for one package and blocks until it exits
func (r *Runner) Link(ctx context.Context, req Request) (Status, error) {
	if err := paths.ValidatePackageName(req.Package); err != nil {
		return Status{ExitCode: -1}, err
	}

	args := r.Args(req)
	logging.LogCommand(r.logger, r.binary, args)

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err := cmd.Run()
	if err == nil {
		return Status{ExitCode: 0}, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return Status{ExitCode: -1}, ctxErr
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		r.logger.Debug().
			Str("package", req.Package).
			Int("exitCode", exitErr.ExitCode()).
			Msg("stow exited with non-zero status")
		return Status{ExitCode: exitErr.ExitCode()}, nil
	}

	return Status{ExitCode: -1}, errors.Wrapf(err, errors.ErrPackageLinkFailure,
		"failed to run %s", r.binary).WithDetail("package", req.Package)
}

// CheckAvailable resolves binary on PATH (or checks an explicit path) and
// returns its location. A missing tool is reported as ErrMissingDependency.
func CheckAvailable(binary string) (string, error) {
	if binary == "" {
		binary = DefaultBinary
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrMissingDependency,
			"%s is required but was not found; install GNU Stow and make sure it is on your PATH", binary).
			WithDetail("binary", binary)
	}
	return path, nil
}
