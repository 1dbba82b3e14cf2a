package core

import (
	"github.com/arthur-debert/dotstow/pkg/errors"
	"github.com/arthur-debert/dotstow/pkg/filesystem"
	"github.com/arthur-debert/dotstow/pkg/packs"
	"github.com/arthur-debert/dotstow/pkg/types"
)

// DiscoverOptions selects what to discover
type DiscoverOptions struct {
	Mode     types.Mode
	RepoRoot string

	// Hostname is required for ModeHost
	Hostname string

	// FS defaults to the OS filesystem
	FS types.FS

	PackOptions packs.Options
}

// Discover lists the packages a run in the given mode would link, without
// touching stow. An empty list is not an error here.
func Discover(opts DiscoverOptions) ([]packs.Package, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	switch opts.Mode {
	case types.ModeBase:
		return packs.DiscoverBase(fsys, opts.RepoRoot, opts.PackOptions)
	case types.ModeHost:
		return packs.DiscoverHost(fsys, opts.RepoRoot, opts.Hostname, opts.PackOptions)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown mode %q", opts.Mode)
	}
}

func emptyDiscoveryError(opts DiscoverOptions, only []string) error {
	var err *errors.Error
	switch {
	case opts.Mode == types.ModeHost:
		err = errors.Newf(errors.ErrEmptyDiscovery, "no packages with files found for host %q", opts.Hostname).
			WithDetail("host", opts.Hostname)
	default:
		err = errors.Newf(errors.ErrEmptyDiscovery, "no base packages found in %s", opts.RepoRoot)
	}
	err = err.WithDetail("root", opts.RepoRoot)
	if len(only) > 0 {
		err = err.WithDetail("only", only)
	}
	return err
}
