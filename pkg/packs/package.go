package packs

import (
	"github.com/arthur-debert/dotstow/pkg/types"
)

// Package is a directory stow treats as one unit
type Package struct {
	// Name is the directory basename, used as the stow package identifier
	Name string

	// SourceDir is the directory containing the package, passed to stow -d.
	// The repository root for base packages, hosts/<hostname> for host packages.
	SourceDir string

	// Path is the absolute package directory
	Path string

	// Location tells whether the package came from the root or a host tree
	Location types.Mode

	// ContainsFiles is true when the subtree holds at least one regular file
	ContainsFiles bool
}

// Options tune discovery
type Options struct {
	// HostsDir is the directory under the root holding per-host trees
	HostsDir string

	// Exclude lists extra filepath.Match patterns of root-level directories
	// that are not base packages. ReservedDirs and the hosts root are always
	// excluded on top of these.
	Exclude []string
}

// DefaultOptions mirrors the embedded configuration defaults
func DefaultOptions() Options {
	return Options{HostsDir: DefaultHostsDir}
}

// DefaultHostsDir is the conventional name of the hosts root
const DefaultHostsDir = "hosts"

// ReservedDirs are repository infrastructure, never base packages
var ReservedDirs = []string{".git", "scripts"}

// IgnoreMarker is the file that makes discovery skip its directory
const IgnoreMarker = ".dotstowignore"

func (o Options) hostsDir() string {
	if o.HostsDir == "" {
		return DefaultHostsDir
	}
	return o.HostsDir
}

// Names returns the package names in order
func Names(pkgs []Package) []string {
	names := make([]string, len(pkgs))
	for i, p := range pkgs {
		names[i] = p.Name
	}
	return names
}
