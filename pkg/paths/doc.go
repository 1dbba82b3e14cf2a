// Package paths resolves the directories dotstow works with.
//
// It handles:
//
//   - Repository root discovery (flag, DOTFILES_ROOT, git top-level, cwd)
//   - Target directory resolution (defaults to the user's home)
//   - Hostname lookup and validation for host packages
//   - XDG config and state locations for dotstow itself
//
// # Environment Variables
//
//   - DOTFILES_ROOT: repository root when no --dir flag or repo.root config is given
//   - XDG_CONFIG_HOME: user config lives in $XDG_CONFIG_HOME/dotstow/config.toml
//   - XDG_STATE_HOME: log file lives in $XDG_STATE_HOME/dotstow/dotstow.log
package paths
