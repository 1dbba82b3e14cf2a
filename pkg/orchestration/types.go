// Package orchestration runs stow across a list of packages.
// It owns the outer loop: link each package in order, record the outcome,
// and derive the aggregate verdict.
package orchestration

import (
	"github.com/arthur-debert/dotstow/pkg/packs"
	"github.com/arthur-debert/dotstow/pkg/types"
)

// Options contains execution options for a run
type Options struct {
	// TargetDir is where packages are linked
	TargetDir string

	// DryRun asks stow to simulate without touching the filesystem
	DryRun bool

	// OnResult, if set, is called after each package is attempted
	OnResult func(PackResult)
}

// PackStatus is the outcome of linking one package
type PackStatus string

const (
	StatusSucceeded PackStatus = "succeeded"
	StatusFailed    PackStatus = "failed"
)

// PackResult contains the execution result for a single package
type PackResult struct {
	Package packs.Package
	Status  PackStatus

	// ExitCode is stow's exit status, or -1 when it could not run
	ExitCode int

	// Error is set for failed packages
	Error error
}

// Result contains the ordered per-package results of one run
type Result struct {
	Mode        types.Mode
	DryRun      bool
	PackResults []PackResult
}

// Attempted returns how many packages were tried
func (r Result) Attempted() int {
	return len(r.PackResults)
}

// Succeeded returns the results of packages that linked cleanly
func (r Result) Succeeded() []PackResult {
	return r.filter(StatusSucceeded)
}

// Failed returns the results of packages stow rejected
func (r Result) Failed() []PackResult {
	return r.filter(StatusFailed)
}

// FailedNames returns the names of failed packages in run order
func (r Result) FailedNames() []string {
	failed := r.Failed()
	names := make([]string, len(failed))
	for i, pr := range failed {
		names[i] = pr.Package.Name
	}
	return names
}

// AllFailed is true when at least one package was attempted and none succeeded
func (r Result) AllFailed() bool {
	return r.Attempted() > 0 && len(r.Failed()) == r.Attempted()
}

// Partial is true when some, but not all, packages failed
func (r Result) Partial() bool {
	failed := len(r.Failed())
	return failed > 0 && failed < r.Attempted()
}

func (r Result) filter(status PackStatus) []PackResult {
	var out []PackResult
	for _, pr := range r.PackResults {
		if pr.Status == status {
			out = append(out, pr)
		}
	}
	return out
}
