// Test Type: Unit Test
// Description: Tests for base and host package discovery

package packs_test

import (
	"testing"

	"github.com/arthur-debert/dotstow/pkg/errors"
	"github.com/arthur-debert/dotstow/pkg/packs"
	"github.com/arthur-debert/dotstow/pkg/testutil"
	"github.com/arthur-debert/dotstow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverBase(t *testing.T) {
	t.Run("excludes infrastructure directories", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.File("scripts/install.sh", "#!/bin/sh")
		env.Dir("hosts")
		env.File("shell/.bashrc", "# bash")
		env.File(".git/HEAD", "ref: refs/heads/main")

		pkgs, err := packs.DiscoverBase(env.FS, env.RepoRoot, packs.DefaultOptions())

		require.NoError(t, err)
		assert.Equal(t, []string{"shell"}, packs.Names(pkgs))
	})

	t.Run("returns remaining children sorted with metadata", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.File("zsh/.zshrc", "")
		env.File("git/.gitconfig", "[user]")
		env.Dir("empty")
		env.File(".config-extra/foo/bar.conf", "x")
		env.File("README.md", "not a package")

		pkgs, err := packs.DiscoverBase(env.FS, env.RepoRoot, packs.DefaultOptions())

		require.NoError(t, err)
		assert.Equal(t, []string{".config-extra", "empty", "git", "zsh"}, packs.Names(pkgs))

		for _, p := range pkgs {
			assert.Equal(t, env.RepoRoot, p.SourceDir)
			assert.Equal(t, types.ModeBase, p.Location)
		}
		assert.False(t, pkgs[1].ContainsFiles, "empty has no files")
		assert.True(t, pkgs[2].ContainsFiles)
	})

	t.Run("empty root is not an error", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.Dir("scripts")

		pkgs, err := packs.DiscoverBase(env.FS, env.RepoRoot, packs.DefaultOptions())

		require.NoError(t, err)
		assert.Empty(t, pkgs)
	})

	t.Run("custom exclude patterns and hosts dir", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.File("machines/box/pkg/file", "")
		env.File("docs-site/index.md", "")
		env.File("shell/.bashrc", "")
		env.File("scripts/x", "")
		env.File(".git/HEAD", "")

		pkgs, err := packs.DiscoverBase(env.FS, env.RepoRoot, packs.Options{
			HostsDir: "machines",
			Exclude:  []string{"docs-*"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"shell"}, packs.Names(pkgs))
	})

	t.Run("zero options still exclude infrastructure", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.File(".git/HEAD", "ref: refs/heads/main")
		env.File("scripts/install.sh", "#!/bin/sh")
		env.File("hosts/box/git/.gitconfig", "")
		env.File("shell/.bashrc", "")

		pkgs, err := packs.DiscoverBase(env.FS, env.RepoRoot, packs.Options{})

		require.NoError(t, err)
		assert.Equal(t, []string{"shell"}, packs.Names(pkgs))
	})

	t.Run("ignore marker skips the directory", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.File("shell/.bashrc", "")
		env.File("wip/.config/new.conf", "")
		env.File("wip/"+packs.IgnoreMarker, "")

		pkgs, err := packs.DiscoverBase(env.FS, env.RepoRoot, packs.DefaultOptions())

		require.NoError(t, err)
		assert.Equal(t, []string{"shell"}, packs.Names(pkgs))
	})

	t.Run("missing root", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

		_, err := packs.DiscoverBase(env.FS, "/does/not/exist", packs.DefaultOptions())

		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("root is a file", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		file := env.File("afile", "")

		_, err := packs.DiscoverBase(env.FS, file, packs.DefaultOptions())

		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("symlinked directory counts as a package", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
		env.File("real/.vimrc", "")
		env.Symlink(env.Dir("real"), "linked")
		env.File("plainfile", "")

		pkgs, err := packs.DiscoverBase(env.FS, env.RepoRoot, packs.DefaultOptions())

		require.NoError(t, err)
		assert.Equal(t, []string{"linked", "real"}, packs.Names(pkgs))
	})
}

func TestDiscoverHost(t *testing.T) {
	t.Run("keeps only packages with files", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.File("hosts/nexus-unbound/hypr/.config/hypr/monitors.conf", "monitor=,preferred,auto,1")
		env.Dir("hosts/nexus-unbound/empty")

		pkgs, err := packs.DiscoverHost(env.FS, env.RepoRoot, "nexus-unbound", packs.DefaultOptions())

		require.NoError(t, err)
		require.Len(t, pkgs, 1)
		assert.Equal(t, "hypr", pkgs[0].Name)
		assert.Equal(t, env.RepoRoot+"/hosts/nexus-unbound", pkgs[0].SourceDir)
		assert.Equal(t, env.RepoRoot+"/hosts/nexus-unbound/hypr", pkgs[0].Path)
		assert.Equal(t, types.ModeHost, pkgs[0].Location)
		assert.True(t, pkgs[0].ContainsFiles)
	})

	t.Run("nested empty directories are excluded", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.Dir("hosts/box/waybar/.config/waybar/modules")
		env.Dir("hosts/box/kitty/.config")

		pkgs, err := packs.DiscoverHost(env.FS, env.RepoRoot, "box", packs.DefaultOptions())

		require.NoError(t, err)
		assert.Empty(t, pkgs)
	})

	t.Run("deep file is found", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.Dir("hosts/box/a/b/c")
		env.File("hosts/box/a/x/y/z/deep.conf", "")
		env.File("hosts/box/b/top", "")

		pkgs, err := packs.DiscoverHost(env.FS, env.RepoRoot, "box", packs.DefaultOptions())

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, packs.Names(pkgs))
	})

	t.Run("files directly in host dir are ignored", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.File("hosts/box/README", "")
		env.File("hosts/box/git/.gitconfig.local", "")

		pkgs, err := packs.DiscoverHost(env.FS, env.RepoRoot, "box", packs.DefaultOptions())

		require.NoError(t, err)
		assert.Equal(t, []string{"git"}, packs.Names(pkgs))
	})

	t.Run("missing host", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.File("hosts/nexus-unbound/hypr/x", "")

		_, err := packs.DiscoverHost(env.FS, env.RepoRoot, "ghost-machine", packs.DefaultOptions())

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrHostNotFound))
		assert.Equal(t, "ghost-machine", errors.GetErrorDetails(err)["host"])
	})

	t.Run("host path is a file", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.File("hosts/box", "")

		_, err := packs.DiscoverHost(env.FS, env.RepoRoot, "box", packs.DefaultOptions())

		assert.True(t, errors.IsErrorCode(err, errors.ErrHostNotFound))
	})

	t.Run("invalid hostname", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

		_, err := packs.DiscoverHost(env.FS, env.RepoRoot, "../..", packs.DefaultOptions())

		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("custom hosts dir", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.File("machines/box/git/.gitconfig", "")

		pkgs, err := packs.DiscoverHost(env.FS, env.RepoRoot, "box", packs.Options{HostsDir: "machines"})

		require.NoError(t, err)
		assert.Equal(t, []string{"git"}, packs.Names(pkgs))
	})

	t.Run("ignore marker skips the host package", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.File("hosts/box/git/.gitconfig", "")
		env.File("hosts/box/hypr/.config/hypr/hyprland.conf", "")
		env.File("hosts/box/hypr/"+packs.IgnoreMarker, "")

		pkgs, err := packs.DiscoverHost(env.FS, env.RepoRoot, "box", packs.DefaultOptions())

		require.NoError(t, err)
		assert.Equal(t, []string{"git"}, packs.Names(pkgs))
	})

	t.Run("symlink alone does not make a package", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
		target := env.File("elsewhere/file", "")
		env.Symlink(target, "hosts/box/linkonly/file")

		pkgs, err := packs.DiscoverHost(env.FS, env.RepoRoot, "box", packs.DefaultOptions())

		require.NoError(t, err)
		assert.Empty(t, pkgs)
	})
}

func TestIgnored(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.File("skip/"+packs.IgnoreMarker, "")
	env.File("keep/.vimrc", "")

	assert.True(t, packs.Ignored(env.FS, env.RepoRoot+"/skip"))
	assert.False(t, packs.Ignored(env.FS, env.RepoRoot+"/keep"))
	assert.False(t, packs.Ignored(env.FS, env.RepoRoot+"/missing"))
}

func TestContainsFiles(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Dir("a/b/c")
	env.File("d/e/f", "")

	got, err := packs.ContainsFiles(env.FS, env.RepoRoot+"/a")
	require.NoError(t, err)
	assert.False(t, got)

	got, err = packs.ContainsFiles(env.FS, env.RepoRoot+"/d")
	require.NoError(t, err)
	assert.True(t, got)

	_, err = packs.ContainsFiles(env.FS, env.RepoRoot+"/missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}
