package core

import (
	"context"

	"github.com/arthur-debert/dotstow/pkg/errors"
	"github.com/arthur-debert/dotstow/pkg/logging"
	"github.com/arthur-debert/dotstow/pkg/orchestration"
	"github.com/arthur-debert/dotstow/pkg/packs"
	"github.com/arthur-debert/dotstow/pkg/stow"
)

// RestowOptions contains everything a run needs
type RestowOptions struct {
	DiscoverOptions

	// TargetDir is where stow creates links
	TargetDir string

	DryRun bool

	// Only restricts the run to the named packages
	Only []string

	// Linker performs the per-package stow call
	Linker stow.Linker

	// Binary is the stow executable checked before discovery
	Binary string

	// CheckDependency defaults to stow.CheckAvailable
	CheckDependency func(binary string) (string, error)

	// OnDiscovered is called once with the packages about to be linked
	OnDiscovered func([]packs.Package)

	// OnResult is called after each package is attempted
	OnResult func(orchestration.PackResult)
}

// Restow runs one full restow pass in the requested mode. The returned
// Result holds every attempted package even when the error is non-nil.
func Restow(ctx context.Context, opts RestowOptions) (orchestration.Result, error) {
	logger := logging.GetLogger("core.restow")
	done := logging.LogOperationStart(logger, "restow "+opts.Mode.String())
	defer done()

	result := orchestration.Result{Mode: opts.Mode, DryRun: opts.DryRun}

	if opts.Linker == nil {
		return result, errors.New(errors.ErrInternal, "no linker configured")
	}

	check := opts.CheckDependency
	if check == nil {
		check = stow.CheckAvailable
	}
	path, err := check(opts.Binary)
	if err != nil {
		return result, err
	}
	logger.Debug().Str("binary", path).Msg("Found stow")

	all, err := Discover(opts.DiscoverOptions)
	if err != nil {
		return result, err
	}

	selected, err := packs.Select(all, opts.Only)
	if err != nil {
		return result, err
	}

	if len(selected) == 0 {
		return result, emptyDiscoveryError(opts.DiscoverOptions, opts.Only)
	}

	if opts.OnDiscovered != nil {
		opts.OnDiscovered(selected)
	}

	result = orchestration.Execute(ctx, opts.Linker, opts.Mode, selected, orchestration.Options{
		TargetDir: opts.TargetDir,
		DryRun:    opts.DryRun,
		OnResult:  opts.OnResult,
	})

	if err := ctx.Err(); err != nil && result.Attempted() < len(selected) {
		return result, errors.Wrap(err, errors.ErrCanceled, "run interrupted").
			WithDetail("attempted", result.Attempted()).
			WithDetail("selected", len(selected))
	}

	if err := result.Err(); err != nil {
		return result, err
	}

	if result.Partial() {
		logger.Warn().
			Strs("failed", result.FailedNames()).
			Msg("Some packages failed to link")
	}
	return result, nil
}
