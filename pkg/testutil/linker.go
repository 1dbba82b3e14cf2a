package testutil

import (
	"context"
	"sync"

	"github.com/arthur-debert/dotstow/pkg/stow"
)

// FakeLinker is a stow.Linker that records every request. Exit codes are
// looked up by package name; packages not listed succeed.
type FakeLinker struct {
	ExitCodes map[string]int

	// Errs makes Link return an error for the named packages, as if the
	// binary could not be started
	Errs map[string]error

	mu       sync.Mutex
	requests []stow.Request
}

// NewFakeLinker returns a linker where every package succeeds
func NewFakeLinker() *FakeLinker {
	return &FakeLinker{
		ExitCodes: make(map[string]int),
		Errs:      make(map[string]error),
	}
}

// Fail makes the named packages exit with status 1
func (f *FakeLinker) Fail(names ...string) *FakeLinker {
	for _, name := range names {
		f.ExitCodes[name] = 1
	}
	return f
}

func (f *FakeLinker) Link(_ context.Context, req stow.Request) (stow.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, req)
	if err := f.Errs[req.Package]; err != nil {
		return stow.Status{ExitCode: -1}, err
	}
	return stow.Status{ExitCode: f.ExitCodes[req.Package]}, nil
}

// Requests returns a copy of the recorded requests in call order
func (f *FakeLinker) Requests() []stow.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]stow.Request, len(f.requests))
	copy(out, f.requests)
	return out
}

// Packages returns the package names in call order
func (f *FakeLinker) Packages() []string {
	reqs := f.Requests()
	names := make([]string, len(reqs))
	for i, r := range reqs {
		names[i] = r.Package
	}
	return names
}
