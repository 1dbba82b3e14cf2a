// Package stow wraps the GNU Stow executable.
//
// Creating and removing links happens inside stow, and so does conflict
// detection. This package only builds the command line, runs it,
// and reports the exit status through the narrow Linker interface so callers
// can substitute a fake in tests.
package stow
