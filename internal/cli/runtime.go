package cli

import (
	"fmt"

	"github.com/arthur-debert/dotstow/pkg/config"
	"github.com/arthur-debert/dotstow/pkg/packs"
	"github.com/arthur-debert/dotstow/pkg/paths"
	"github.com/rs/zerolog/log"
)

// runtime is the resolved environment of a repository command
type runtime struct {
	cfg    *config.Config
	paths  paths.Paths
	target string
}

// loadRuntime resolves configuration, repository root and target directory.
// Configuration is loaded twice: the first pass may name the repository
// root, the second picks up the repository's own config file.
func (a *app) loadRuntime() (*runtime, error) {
	overrides := map[string]interface{}{}
	if a.flags.dir != "" {
		overrides["repo.root"] = a.flags.dir
	}
	if a.flags.target != "" {
		overrides["stow.target"] = a.flags.target
	}

	opts := config.LoadOptions{
		UserConfigPath: a.deps.UserConfigPath,
		ExtraFile:      a.flags.configFile,
		Overrides:      overrides,
	}
	cfg, err := config.Load(opts)
	if err != nil {
		return nil, err
	}

	p, err := paths.New(cfg.Repo.Root)
	if err != nil {
		return nil, err
	}
	if p.UsedFallback() {
		_, _ = fmt.Fprintf(a.deps.Stderr, MsgFallbackWarning, p.RepoRoot())
	}

	opts.RepoRoot = p.RepoRoot()
	if cfg, err = config.Load(opts); err != nil {
		return nil, err
	}

	target, err := paths.ResolveTarget(cfg.Stow.Target)
	if err != nil {
		return nil, err
	}

	cfg.Repo.Root = p.RepoRoot()
	cfg.Stow.Target = target

	log.Info().
		Str("root", p.RepoRoot()).
		Str("target", target).
		Bool("fallback", p.UsedFallback()).
		Msg("Resolved repository")

	return &runtime{cfg: cfg, paths: p, target: target}, nil
}

func (rt *runtime) packOptions() packs.Options {
	return packs.Options{
		HostsDir: rt.cfg.Repo.HostsDir,
		Exclude:  rt.cfg.Repo.Exclude,
	}
}
