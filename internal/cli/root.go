package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/dotstow/internal/version"
	"github.com/arthur-debert/dotstow/pkg/config"
	"github.com/arthur-debert/dotstow/pkg/errors"
	"github.com/arthur-debert/dotstow/pkg/logging"
	"github.com/arthur-debert/dotstow/pkg/paths"
	"github.com/arthur-debert/dotstow/pkg/stow"
	"github.com/arthur-debert/dotstow/pkg/types"
	"github.com/arthur-debert/dotstow/pkg/ui/report"
	"github.com/arthur-debert/dotstow/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Deps are the collaborators the command tree talks to. Zero values select
// the real implementations.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer

	// UserConfigPath overrides $XDG_CONFIG_HOME/dotstow/config.toml
	UserConfigPath string

	// FS is the filesystem discovery reads
	FS types.FS

	// NewLinker builds the per-run linker; the default runs stow
	NewLinker func(cfg *config.Config, stdout, stderr io.Writer) stow.Linker

	// CheckDependency verifies the stow binary; the default is stow.CheckAvailable
	CheckDependency func(binary string) (string, error)
}

func (d Deps) withDefaults() Deps {
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.Stderr == nil {
		d.Stderr = os.Stderr
	}
	if d.UserConfigPath == "" {
		d.UserConfigPath = paths.DefaultUserConfigPath()
	}
	if d.NewLinker == nil {
		d.NewLinker = newStowRunner
	}
	return d
}

func newStowRunner(cfg *config.Config, stdout, stderr io.Writer) stow.Linker {
	return stow.NewRunner(stow.RunnerOptions{
		Binary:    cfg.Stow.Binary,
		Verbose:   cfg.Stow.Verbose,
		ExtraArgs: cfg.Stow.Args,
		Stdout:    stdout,
		Stderr:    stderr,
	})
}

type globalFlags struct {
	dir        string
	target     string
	configFile string
	verbosity  int
	noColor    bool
}

type app struct {
	deps  Deps
	flags globalFlags
}

// NewRootCmd creates the root command wired to the real stow
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(Deps{})
}

// NewRootCmdWithDeps creates the root command with injected collaborators
func NewRootCmdWithDeps(deps Deps) *cobra.Command {
	a := &app{deps: deps.withDefaults()}

	rootCmd := &cobra.Command{
		Use:     "dotstow",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.flags.verbosity, a.flags.noColor)
			styles.SetColor(styles.ColorEnabled(os.Stdout, a.flags.noColor))
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New(errors.ErrUsage, MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.SetOut(a.deps.Stdout)
	rootCmd.SetErr(a.deps.Stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid arguments")
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.flags.dir, "dir", "d", "", MsgFlagDir)
	pf.StringVarP(&a.flags.target, "target", "t", "", MsgFlagTarget)
	pf.CountVarP(&a.flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.BoolVar(&a.flags.noColor, "no-color", false, MsgFlagNoColor)
	pf.StringVar(&a.flags.configFile, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(a.newBaseCmd())
	rootCmd.AddCommand(a.newHostCmd())
	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(a.newVersionCmd())

	return rootCmd
}

// Execute runs the command tree with args and returns the process exit code.
// Errors are printed to deps.Stderr; usage errors are followed by the usage
// text.
func Execute(ctx context.Context, args []string, deps Deps) int {
	deps = deps.withDefaults()
	rootCmd := NewRootCmdWithDeps(deps)
	if args == nil {
		// cobra reads os.Args when given nil
		args = []string{}
	}
	rootCmd.SetArgs(args)
	defer logging.Close()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	log.Debug().Err(err).Msg("Command failed")
	report.New(deps.Stderr).Error(err)
	if isUsageError(err) {
		_, _ = io.WriteString(deps.Stderr, "\n"+rootCmd.UsageString())
	}
	return 1
}

func isUsageError(err error) bool {
	return errors.IsErrorCode(err, errors.ErrUsage) ||
		strings.HasPrefix(err.Error(), "unknown command")
}
