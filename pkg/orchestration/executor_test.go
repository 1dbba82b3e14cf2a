package orchestration_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/dotstow/pkg/errors"
	"github.com/arthur-debert/dotstow/pkg/orchestration"
	"github.com/arthur-debert/dotstow/pkg/packs"
	"github.com/arthur-debert/dotstow/pkg/testutil"
	"github.com/arthur-debert/dotstow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basePackages(names ...string) []packs.Package {
	pkgs := make([]packs.Package, len(names))
	for i, n := range names {
		pkgs[i] = packs.Package{Name: n, SourceDir: "/repo", Path: "/repo/" + n, Location: types.ModeBase}
	}
	return pkgs
}

func TestExecute_AllSucceed(t *testing.T) {
	linker := testutil.NewFakeLinker()

	result := orchestration.Execute(context.Background(), linker, types.ModeBase,
		basePackages("git", "shell"), orchestration.Options{TargetDir: "/home/u"})

	assert.Equal(t, 2, result.Attempted())
	assert.Len(t, result.Succeeded(), 2)
	assert.Empty(t, result.Failed())
	assert.False(t, result.AllFailed())
	assert.False(t, result.Partial())
	assert.NoError(t, result.Err())
	assert.Equal(t, []string{"git", "shell"}, linker.Packages())
}

func TestExecute_RequestShape(t *testing.T) {
	linker := testutil.NewFakeLinker()
	hostPkg := packs.Package{
		Name:      "hypr",
		SourceDir: "/repo/hosts/nexus-unbound",
		Path:      "/repo/hosts/nexus-unbound/hypr",
		Location:  types.ModeHost,
	}

	orchestration.Execute(context.Background(), linker, types.ModeHost,
		[]packs.Package{hostPkg}, orchestration.Options{TargetDir: "/home/u", DryRun: true})

	reqs := linker.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/repo/hosts/nexus-unbound", reqs[0].SourceDir)
	assert.Equal(t, "hypr", reqs[0].Package)
	assert.Equal(t, "/home/u", reqs[0].TargetDir)
	assert.True(t, reqs[0].Restow)
	assert.True(t, reqs[0].DryRun)
}

// One of the packages conflicts
func TestExecute_PartialFailure(t *testing.T) {
	linker := testutil.NewFakeLinker().Fail("vim")

	var seen []string
	result := orchestration.Execute(context.Background(), linker, types.ModeBase,
		basePackages("shell", "vim"), orchestration.Options{
			TargetDir: "/home/u",
			OnResult:  func(pr orchestration.PackResult) { seen = append(seen, pr.Package.Name) },
		})

	assert.Equal(t, []string{"shell", "vim"}, seen)
	assert.True(t, result.Partial())
	assert.False(t, result.AllFailed())
	assert.NoError(t, result.Err())
	assert.Equal(t, []string{"vim"}, result.FailedNames())

	failed := result.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, 1, failed[0].ExitCode)
	assert.True(t, errors.IsErrorCode(failed[0].Error, errors.ErrPackageLinkFailure))
}

// Every package conflicts
func TestExecute_AllFail(t *testing.T) {
	linker := testutil.NewFakeLinker().Fail("shell", "vim")

	result := orchestration.Execute(context.Background(), linker, types.ModeBase,
		basePackages("shell", "vim"), orchestration.Options{TargetDir: "/home/u"})

	assert.Equal(t, []string{"shell", "vim"}, linker.Packages(), "failure must not abort the loop")
	assert.True(t, result.AllFailed())

	err := result.Err()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAllPackagesFailed))
	assert.Equal(t, []string{"shell", "vim"}, errors.GetErrorDetails(err)["failed"])
}

func TestExecute_LinkerError(t *testing.T) {
	linker := testutil.NewFakeLinker()
	linker.Errs["shell"] = stderrors.New("exec: permission denied")

	result := orchestration.Execute(context.Background(), linker, types.ModeBase,
		basePackages("git", "shell"), orchestration.Options{TargetDir: "/t"})

	failed := result.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "shell", failed[0].Package.Name)
	assert.Equal(t, -1, failed[0].ExitCode)
	assert.ErrorContains(t, failed[0].Error, "permission denied")
}

func TestExecute_Empty(t *testing.T) {
	result := orchestration.Execute(context.Background(), testutil.NewFakeLinker(), types.ModeHost,
		nil, orchestration.Options{TargetDir: "/t"})

	assert.Equal(t, 0, result.Attempted())
	assert.False(t, result.AllFailed(), "an empty run is not an all-failed run")
	assert.NoError(t, result.Err())
}

func TestExecute_StopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	linker := testutil.NewFakeLinker()

	result := orchestration.Execute(ctx, linker, types.ModeBase, basePackages("a", "b", "c"),
		orchestration.Options{
			TargetDir: "/t",
			OnResult:  func(orchestration.PackResult) { cancel() },
		})

	assert.Equal(t, 1, result.Attempted())
	assert.Equal(t, []string{"a"}, linker.Packages())
}
