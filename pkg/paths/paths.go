package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotstow/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfilesRoot is the environment variable for the repository location
	EnvDotfilesRoot = "DOTFILES_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "dotstow"

	// UserConfigFile is the user-level configuration file name
	UserConfigFile = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "dotstow.log"
)

// Paths provides the repository location a run works on
type Paths interface {
	RepoRoot() string
	UsedFallback() bool
}

type paths struct {
	repoRoot     string
	usedFallback bool
}

// New creates a Paths instance. If repoRoot is empty it is determined from
// DOTFILES_ROOT, the enclosing git repository, or the current directory, in
// that order.
func New(repoRoot string) (Paths, error) {
	p := &paths{}

	if repoRoot == "" {
		root, usedFallback, err := findRepoRoot()
		if err != nil {
			return nil, err
		}
		p.repoRoot = root
		p.usedFallback = usedFallback
	} else {
		p.repoRoot = ExpandHome(repoRoot)
	}

	absRoot, err := filepath.Abs(p.repoRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for repository root")
	}
	p.repoRoot = absRoot

	return p, nil
}

// findRepoRoot returns the resolved root and whether the current working
// directory was used as a fallback.
func findRepoRoot() (string, bool, error) {
	if root := os.Getenv(EnvDotfilesRoot); root != "" {
		return ExpandHome(root), false, nil
	}

	if gitRoot, err := findGitRoot(); err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}
	return gitRoot, nil
}

func (p *paths) RepoRoot() string { return p.repoRoot }

// UsedFallback returns true if the current working directory was used as fallback
func (p *paths) UsedFallback() bool { return p.usedFallback }

// DefaultUserConfigPath returns the user config file location without
// resolving a repository root
func DefaultUserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, UserConfigFile)
}

// StateDir returns the XDG state directory for dotstow. XDG_STATE_HOME is
// read on every call so a changed environment is honored.
func StateDir() string {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns where the persistent log is written
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	if homeDir = os.Getenv(EnvHome); homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrFileAccess, "unable to determine home directory: neither os.UserHomeDir() nor HOME environment variable are available")
}

// ExpandHome expands a leading ~ or ~/ to the home directory.
// Paths it cannot expand are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~otheruser is left alone
	return path
}

// ResolveTarget returns the absolute directory packages are linked into.
// An empty value means the invoking user's home directory.
func ResolveTarget(target string) (string, error) {
	if target == "" {
		return GetHomeDirectory()
	}

	abs, err := filepath.Abs(ExpandHome(target))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for target %q", target)
	}
	return abs, nil
}

// ResolveHostname returns explicit when given, otherwise the machine's hostname.
// The result is validated with ValidateHostname.
func ResolveHostname(explicit string) (string, error) {
	hostname := explicit
	if hostname == "" {
		h, err := os.Hostname()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to determine hostname")
		}
		hostname = h
	}

	if err := ValidateHostname(hostname); err != nil {
		return "", err
	}
	return hostname, nil
}
