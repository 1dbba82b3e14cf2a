package orchestration

import (
	"context"
	"strings"

	"github.com/arthur-debert/dotstow/pkg/errors"
	"github.com/arthur-debert/dotstow/pkg/logging"
	"github.com/arthur-debert/dotstow/pkg/packs"
	"github.com/arthur-debert/dotstow/pkg/stow"
	"github.com/arthur-debert/dotstow/pkg/types"
)

// Execute links each package in order with restow semantics. A package that
// fails is recorded and the loop moves on; only a canceled context stops it
// early.
func Execute(ctx context.Context, linker stow.Linker, mode types.Mode, pkgs []packs.Package, opts Options) Result {
	logger := logging.GetLogger("orchestration")
	logger.Debug().
		Str("mode", mode.String()).
		Strs("packages", packs.Names(pkgs)).
		Str("target", opts.TargetDir).
		Bool("dryRun", opts.DryRun).
		Msg("Starting restow run")

	result := Result{
		Mode:        mode,
		DryRun:      opts.DryRun,
		PackResults: make([]PackResult, 0, len(pkgs)),
	}

	for _, pkg := range pkgs {
		if ctx.Err() != nil {
			logger.Warn().Err(ctx.Err()).Msg("Run interrupted")
			break
		}

		pr := linkOne(ctx, linker, pkg, opts)
		result.PackResults = append(result.PackResults, pr)

		if pr.Status == StatusFailed {
			logger.Error().
				Err(pr.Error).
				Str("package", pkg.Name).
				Int("exitCode", pr.ExitCode).
				Msg("Package failed")
		} else {
			logger.Info().Str("package", pkg.Name).Msg("Package linked")
		}

		if opts.OnResult != nil {
			opts.OnResult(pr)
		}
	}

	logger.Info().
		Str("mode", mode.String()).
		Int("attempted", result.Attempted()).
		Int("succeeded", len(result.Succeeded())).
		Int("failed", len(result.Failed())).
		Msg("Restow run completed")

	return result
}

func linkOne(ctx context.Context, linker stow.Linker, pkg packs.Package, opts Options) PackResult {
	req := stow.Request{
		SourceDir: pkg.SourceDir,
		Package:   pkg.Name,
		TargetDir: opts.TargetDir,
		Restow:    true,
		DryRun:    opts.DryRun,
	}

	status, err := linker.Link(ctx, req)
	if err != nil {
		return PackResult{
			Package:  pkg,
			Status:   StatusFailed,
			ExitCode: status.ExitCode,
			Error:    errors.Wrapf(err, errors.ErrPackageLinkFailure, "could not link %s", pkg.Name),
		}
	}

	if !status.Success() {
		return PackResult{
			Package:  pkg,
			Status:   StatusFailed,
			ExitCode: status.ExitCode,
			Error: errors.Newf(errors.ErrPackageLinkFailure, "stow exited with status %d for %s", status.ExitCode, pkg.Name).
				WithDetail("package", pkg.Name).
				WithDetail("exitCode", status.ExitCode),
		}
	}

	return PackResult{Package: pkg, Status: StatusSucceeded, ExitCode: 0}
}

// Err returns ErrAllPackagesFailed when every attempted package failed and
// nil otherwise. Partial failure is not an error.
func (r Result) Err() error {
	if !r.AllFailed() {
		return nil
	}
	names := r.FailedNames()
	return errors.Newf(errors.ErrAllPackagesFailed, "all %d %s package(s) failed: %s",
		len(names), r.Mode, strings.Join(names, ", ")).
		WithDetail("failed", names)
}
