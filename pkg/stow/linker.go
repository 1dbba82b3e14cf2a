package stow

import (
	"context"
)

// Request describes one stow invocation for a single package
type Request struct {
	// SourceDir is the stow directory (-d) containing the package
	SourceDir string

	// Package is the bare package name; stow does not accept path
	// separators here
	Package string

	// TargetDir is where links are created (-t)
	TargetDir string

	// Restow asks for idempotent refresh semantics (-R)
	Restow bool

	// DryRun asks stow to only simulate (-n)
	DryRun bool
}

// Status is the outcome of an invocation that ran to completion
type Status struct {
	ExitCode int
}

// Success reports a zero exit code
func (s Status) Success() bool {
	return s.ExitCode == 0
}

// Linker links one package into a target directory.
//
// A non-nil error means the tool could not be run at all. A tool that ran
// and refused the package (for example because a real file is in the way)
// reports a non-zero Status.ExitCode with a nil error.
type Linker interface {
	Link(ctx context.Context, req Request) (Status, error)
}
