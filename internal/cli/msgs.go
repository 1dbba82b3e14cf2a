package cli

// Command descriptions
const (
	MsgRootShort = "Restow a dotfiles repository with GNU Stow"
	MsgRootLong  = `dotstow keeps a dotfiles repository linked into your home directory.

Base packages are the directories at the repository root. Host packages live
under hosts/<hostname>/ and override or extend the base set on one machine.
Every package is linked with "stow --restow", so running a command twice is
safe. All filesystem changes are made by stow itself.`

	MsgBaseShort = "Restow the base packages at the repository root"
	MsgBaseLong  = `Restow every directory at the repository root except .git, scripts and
hosts (add more with repo.exclude). A package that stow rejects is
reported and the remaining packages are still processed. The command fails
only when every package fails.`

	MsgHostShort = "Restow the packages for one host"
	MsgHostLong  = `Restow the packages under hosts/<hostname>/. The hostname defaults to this
machine's hostname. Packages that contain no regular files are skipped.`

	MsgListShort = "List the packages a run would restow"
	MsgListLong  = `List discovered packages without running stow. With no argument both the
base packages and this machine's host packages are listed.`

	MsgConfigShort = "Print the effective configuration"
	MsgConfigLong  = `Print the configuration after merging the defaults, the user config, the
repository's .dotstow.toml, --config and DOTSTOW_* variables. With
--defaults the commented built-in defaults are printed instead, ready to be
saved as a starting .dotstow.toml.`

	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"
)

// Flag descriptions
const (
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDir      = "Dotfiles repository root (default: DOTFILES_ROOT, git top-level, or current directory)"
	MsgFlagTarget   = "Directory packages are linked into (default: home directory)"
	MsgFlagNoColor  = "Disable colored output"
	MsgFlagConfig   = "Additional config file layered over the user and repository config"
	MsgFlagDryRun   = "Ask stow to simulate without changing anything"
	MsgFlagOnly     = "Restow only the named packages (comma-separated or repeated)"
	MsgFlagFormat   = "Output format: toml or yaml"
	MsgFlagDefaults = "Print the commented built-in defaults"
)

// Output
const (
	MsgVersionFormat = "dotstow version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	MsgFallbackWarning = `Warning: not in a git repository and DOTFILES_ROOT not set.
Using current directory: %s
For better results, either:
  - Run from within a git repository containing your dotfiles
  - Set DOTFILES_ROOT or pass --dir

`
)

// Errors
const (
	MsgErrNoCommand = "no command given"
)
