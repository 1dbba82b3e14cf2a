// Package testutil provides utilities for testing dotstow components.
//
// Key components:
//   - TestEnvironment: a repository root and home directory, either in
//     memory (afero MemMapFs) or on the real filesystem under t.TempDir()
//   - FakeLinker: a stow.Linker that records requests and returns scripted
//     exit codes, so orchestration can be tested without stow installed
//
// Most tests should use EnvMemoryOnly. EnvIsolated exists for code that
// shells out and needs real paths.
package testutil
