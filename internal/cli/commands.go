package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotstow/internal/version"
	"github.com/arthur-debert/dotstow/pkg/config"
	"github.com/arthur-debert/dotstow/pkg/core"
	"github.com/arthur-debert/dotstow/pkg/errors"
	"github.com/arthur-debert/dotstow/pkg/packs"
	"github.com/arthur-debert/dotstow/pkg/paths"
	"github.com/arthur-debert/dotstow/pkg/types"
	"github.com/arthur-debert/dotstow/pkg/ui/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type restowFlags struct {
	dryRun bool
	only   []string
}

func (a *app) newBaseCmd() *cobra.Command {
	var flags restowFlags

	cmd := &cobra.Command{
		Use:   "base",
		Short: MsgBaseShort,
		Long:  MsgBaseLong,
		Args:  cobra.NoArgs,
		Example: `  # Restow every base package
  dotstow base

  # Preview what stow would do
  dotstow base --dry-run

  # Only some packages
  dotstow base --only git,shell`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.restow(cmd, types.ModeBase, "", flags)
		},
	}

	addRestowFlags(cmd.Flags(), &flags)
	_ = cmd.RegisterFlagCompletionFunc("only", a.completePackages(types.ModeBase))
	return cmd
}

func (a *app) newHostCmd() *cobra.Command {
	var flags restowFlags

	cmd := &cobra.Command{
		Use:   "host [hostname]",
		Short: MsgHostShort,
		Long:  MsgHostLong,
		Args:  cobra.MaximumNArgs(1),
		Example: `  # Restow the packages for this machine
  dotstow host

  # Restow another machine's packages
  dotstow host nexus-unbound`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.restow(cmd, types.ModeHost, firstArg(args), flags)
		},
	}

	addRestowFlags(cmd.Flags(), &flags)
	_ = cmd.RegisterFlagCompletionFunc("only", a.completePackages(types.ModeHost))
	return cmd
}

func addRestowFlags(fs *pflag.FlagSet, flags *restowFlags) {
	fs.BoolVarP(&flags.dryRun, "dry-run", "n", false, MsgFlagDryRun)
	fs.StringSliceVar(&flags.only, "only", nil, MsgFlagOnly)
}

func (a *app) restow(cmd *cobra.Command, mode types.Mode, hostname string, flags restowFlags) error {
	rt, err := a.loadRuntime()
	if err != nil {
		return err
	}

	if mode == types.ModeHost {
		if hostname, err = paths.ResolveHostname(hostname); err != nil {
			return err
		}
	}

	rep := report.New(a.deps.Stdout)
	result, err := core.Restow(cmd.Context(), core.RestowOptions{
		DiscoverOptions: core.DiscoverOptions{
			Mode:        mode,
			RepoRoot:    rt.paths.RepoRoot(),
			Hostname:    hostname,
			FS:          a.deps.FS,
			PackOptions: rt.packOptions(),
		},
		TargetDir:       rt.target,
		DryRun:          flags.dryRun,
		Only:            flags.only,
		Linker:          a.deps.NewLinker(rt.cfg, a.deps.Stdout, a.deps.Stderr),
		Binary:          rt.cfg.Stow.Binary,
		CheckDependency: a.deps.CheckDependency,
		OnDiscovered: func(pkgs []packs.Package) {
			rep.Start(mode, hostname, flags.dryRun, pkgs)
		},
		OnResult: rep.PackResult,
	})

	if result.Attempted() > 0 {
		rep.Summary(result)
	}
	return err
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "list [base|host [hostname]]",
		Short:     MsgListShort,
		Long:      MsgListLong,
		Args:      cobra.RangeArgs(0, 2),
		ValidArgs: []string{string(types.ModeBase), string(types.ModeHost)},
		RunE: func(cmd *cobra.Command, args []string) error {
			modes := []types.Mode{types.ModeBase, types.ModeHost}
			if len(args) > 0 {
				mode, err := types.ParseMode(args[0])
				if err != nil {
					return errors.Wrap(err, errors.ErrUsage, "invalid list argument")
				}
				if mode == types.ModeBase && len(args) > 1 {
					return errors.New(errors.ErrUsage, "list base takes no hostname")
				}
				modes = []types.Mode{mode}
			}

			rt, err := a.loadRuntime()
			if err != nil {
				return err
			}

			hostname, err := paths.ResolveHostname(argAt(args, 1))
			if err != nil {
				return err
			}

			rep := report.New(a.deps.Stdout)
			for _, mode := range modes {
				pkgs, err := core.Discover(core.DiscoverOptions{
					Mode:        mode,
					RepoRoot:    rt.paths.RepoRoot(),
					Hostname:    hostname,
					FS:          a.deps.FS,
					PackOptions: rt.packOptions(),
				})
				// Listing everything tolerates a machine without a host tree
				if errors.IsErrorCode(err, errors.ErrHostNotFound) && len(args) == 0 {
					pkgs, err = nil, nil
				}
				if err != nil {
					return err
				}
				rep.Packages(mode, hostname, pkgs)
			}
			return nil
		},
	}
}

func (a *app) newConfigCmd() *cobra.Command {
	var (
		format   string
		defaults bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := io.WriteString(a.deps.Stdout, config.DefaultContent())
				return err
			}

			rt, err := a.loadRuntime()
			if err != nil {
				return err
			}
			out, err := rt.cfg.Render(format)
			if err != nil {
				return err
			}
			_, err = a.deps.Stdout.Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", MsgFlagFormat)
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	cmd.MarkFlagsMutuallyExclusive("format", "defaults")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{"toml", "yaml"}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := a.deps.Stdout
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

// completePackages offers discovered package names for --only
func (a *app) completePackages(mode types.Mode) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		rt, err := a.loadRuntime()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		hostname, err := paths.ResolveHostname(firstArg(args))
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		pkgs, err := core.Discover(core.DiscoverOptions{
			Mode:        mode,
			RepoRoot:    rt.paths.RepoRoot(),
			Hostname:    hostname,
			FS:          a.deps.FS,
			PackOptions: rt.packOptions(),
		})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return packs.Names(pkgs), cobra.ShellCompDirectiveNoFileComp
	}
}

func firstArg(args []string) string {
	return argAt(args, 0)
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
