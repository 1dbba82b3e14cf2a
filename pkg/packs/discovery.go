package packs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/dotstow/pkg/errors"
	"github.com/arthur-debert/dotstow/pkg/logging"
	"github.com/arthur-debert/dotstow/pkg/paths"
	"github.com/arthur-debert/dotstow/pkg/types"
	"github.com/rs/zerolog"
)

// DiscoverBase returns the base packages of repoRoot: every immediate child
// directory except the excluded ones, the hosts root and directories holding
// an IgnoreMarker. An empty result is not an error; the caller decides
// whether that is fatal.
func DiscoverBase(fsys types.FS, repoRoot string, opts Options) ([]Package, error) {
	logger := logging.GetLogger("packs.discovery")
	logger.Trace().Str("root", repoRoot).Msg("Discovering base packages")

	if err := requireDir(fsys, repoRoot, errors.ErrNotFound, "repository root does not exist"); err != nil {
		return nil, err
	}

	dirs, err := childDirs(fsys, repoRoot, logger)
	if err != nil {
		return nil, err
	}

	var pkgs []Package
	for _, name := range dirs {
		if excluded(name, opts) {
			logger.Trace().Str("name", name).Msg("Skipping excluded directory")
			continue
		}

		path := filepath.Join(repoRoot, name)
		if Ignored(fsys, path) {
			logger.Debug().Str("package", name).Msg("Package ignored due to " + IgnoreMarker + " file")
			continue
		}

		hasFiles, err := ContainsFiles(fsys, path)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Cannot inspect package contents")
		}

		pkgs = append(pkgs, Package{
			Name:          name,
			SourceDir:     repoRoot,
			Path:          path,
			Location:      types.ModeBase,
			ContainsFiles: hasFiles,
		})
		logger.Trace().Str("path", path).Msg("Found base package")
	}

	sortByName(pkgs)
	logger.Info().Int("count", len(pkgs)).Msg("Discovered base packages")
	return pkgs, nil
}

// DiscoverHost returns the packages under <repoRoot>/<hostsDir>/<hostname>
// whose subtree contains at least one regular file. A missing host
// directory is reported as ErrHostNotFound.
func DiscoverHost(fsys types.FS, repoRoot, hostname string, opts Options) ([]Package, error) {
	logger := logging.GetLogger("packs.discovery").With().Str("host", hostname).Logger()

	if err := paths.ValidateHostname(hostname); err != nil {
		return nil, err
	}

	hostDir := HostDir(repoRoot, opts.hostsDir(), hostname)
	logger.Trace().Str("dir", hostDir).Msg("Discovering host packages")

	info, err := fsys.Stat(hostDir)
	if err != nil || !info.IsDir() {
		herr := errors.Newf(errors.ErrHostNotFound, "no host directory for %q", hostname).
			WithDetail("path", hostDir).
			WithDetail("host", hostname)
		if err != nil && !os.IsNotExist(err) {
			herr.Wrapped = err
		}
		return nil, herr
	}

	dirs, err := childDirs(fsys, hostDir, logger)
	if err != nil {
		return nil, err
	}

	var pkgs []Package
	for _, name := range dirs {
		path := filepath.Join(hostDir, name)
		if Ignored(fsys, path) {
			logger.Debug().Str("package", name).Msg("Package ignored due to " + IgnoreMarker + " file")
			continue
		}

		hasFiles, err := ContainsFiles(fsys, path)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Cannot inspect package contents, skipping")
			continue
		}
		if !hasFiles {
			logger.Debug().Str("package", name).Msg("Skipping host package without files")
			continue
		}

		pkgs = append(pkgs, Package{
			Name:          name,
			SourceDir:     hostDir,
			Path:          path,
			Location:      types.ModeHost,
			ContainsFiles: true,
		})
		logger.Trace().Str("path", path).Msg("Found host package")
	}

	sortByName(pkgs)
	logger.Info().Int("count", len(pkgs)).Msg("Discovered host packages")
	return pkgs, nil
}

// HostDir returns the directory holding a host's packages
func HostDir(repoRoot, hostsDir, hostname string) string {
	return filepath.Join(repoRoot, hostsDir, hostname)
}

// ContainsFiles reports whether the tree rooted at dir holds at least one
// regular file. Symlinks are neither counted nor followed.
func ContainsFiles(fsys types.FS, dir string) (bool, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrFileAccess, "cannot read directory").
			WithDetail("path", dir)
	}

	var subdirs []string
	for _, entry := range entries {
		switch {
		case entry.Type().IsRegular():
			return true, nil
		case entry.IsDir():
			subdirs = append(subdirs, filepath.Join(dir, entry.Name()))
		}
	}

	for _, sub := range subdirs {
		found, err := ContainsFiles(fsys, sub)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}
	return false, nil
}

// Ignored reports whether dir holds an IgnoreMarker file
func Ignored(fsys types.FS, dir string) bool {
	_, err := fsys.Stat(filepath.Join(dir, IgnoreMarker))
	return err == nil
}

// childDirs lists the names of the immediate subdirectories of dir. A
// symlink counts when it resolves to a directory.
func childDirs(fsys types.FS, dir string, logger zerolog.Logger) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read directory").
			WithDetail("path", dir)
	}

	var names []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := fsys.Lstat(path)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Cannot stat entry, skipping")
			continue
		}

		switch {
		case info.IsDir():
			names = append(names, entry.Name())
		case info.Mode()&fs.ModeSymlink != 0:
			if target, err := fsys.Stat(path); err == nil && target.IsDir() {
				names = append(names, entry.Name())
			}
		}
	}
	return names, nil
}

func excluded(name string, opts Options) bool {
	if name == opts.hostsDir() {
		return true
	}
	for _, reserved := range ReservedDirs {
		if name == reserved {
			return true
		}
	}
	for _, pattern := range opts.Exclude {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

func requireDir(fsys types.FS, dir string, code errors.ErrorCode, msg string) error {
	info, err := fsys.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(err, code, msg).WithDetail("path", dir)
		}
		return errors.Wrap(err, errors.ErrFileAccess, "cannot access directory").WithDetail("path", dir)
	}
	if !info.IsDir() {
		return errors.New(errors.ErrInvalidInput, "not a directory").WithDetail("path", dir)
	}
	return nil
}

func sortByName(pkgs []Package) {
	sort.Slice(pkgs, func(i, j int) bool {
		return pkgs[i].Name < pkgs[j].Name
	})
}
