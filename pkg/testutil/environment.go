package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotstow/pkg/filesystem"
	"github.com/arthur-debert/dotstow/pkg/types"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment is a dotfiles repository plus a target home directory
type TestEnvironment struct {
	RepoRoot string
	HomeDir  string

	// FS is what discovery reads through
	FS types.FS

	Type EnvType

	t   *testing.T
	afs afero.Fs
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.afs = afero.NewMemMapFs()
		env.FS = filesystem.NewAferoFS(env.afs)
		env.RepoRoot = "/dotfiles"
		env.HomeDir = "/home/user"
	case EnvIsolated:
		base := t.TempDir()
		env.afs = afero.NewOsFs()
		env.FS = filesystem.NewOS()
		env.RepoRoot = filepath.Join(base, "dotfiles")
		env.HomeDir = filepath.Join(base, "home")
	}

	env.mkdir(env.RepoRoot)
	env.mkdir(env.HomeDir)
	return env
}

// Dir creates a directory relative to the repository root and returns its path
func (e *TestEnvironment) Dir(rel string) string {
	e.t.Helper()
	path := filepath.Join(e.RepoRoot, rel)
	e.mkdir(path)
	return path
}

// File creates a file relative to the repository root, including parents
func (e *TestEnvironment) File(rel, content string) string {
	e.t.Helper()
	path := filepath.Join(e.RepoRoot, rel)
	e.mkdir(filepath.Dir(path))
	if err := afero.WriteFile(e.afs, path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// HomeFile creates a file relative to the home directory
func (e *TestEnvironment) HomeFile(rel, content string) string {
	e.t.Helper()
	path := filepath.Join(e.HomeDir, rel)
	e.mkdir(filepath.Dir(path))
	if err := afero.WriteFile(e.afs, path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// Symlink creates a symlink relative to the repository root. Only
// available in EnvIsolated.
func (e *TestEnvironment) Symlink(target, rel string) string {
	e.t.Helper()
	if e.Type != EnvIsolated {
		e.t.Fatalf("Symlink requires EnvIsolated")
	}
	path := filepath.Join(e.RepoRoot, rel)
	e.mkdir(filepath.Dir(path))
	if err := os.Symlink(target, path); err != nil {
		e.t.Fatalf("Failed to create symlink %s -> %s: %v", path, target, err)
	}
	return path
}

func (e *TestEnvironment) mkdir(path string) {
	e.t.Helper()
	if err := e.afs.MkdirAll(path, 0755); err != nil {
		e.t.Fatalf("Failed to create directory %s: %v", path, err)
	}
}
