// Package core implements the restow run for dotstow.
//
// A run moves through a fixed sequence of states:
//
//  1. Dependency check: the stow binary must be on PATH (ErrMissingDependency)
//  2. Discovery: base packages at the repository root, or host packages under
//     hosts/<hostname> (ErrHostNotFound when the host tree is missing)
//  3. Selection: the optional --only subset (ErrPackageNotFound)
//  4. Empty check: nothing to link is fatal (ErrEmptyDiscovery)
//  5. Linking: one stow --restow per package, in order, failures recorded
//  6. Aggregation: ErrAllPackagesFailed only when every package failed
//
// Only the first four abort before stow is ever invoked for a package. A
// partial failure returns a nil error; the caller reports it as a warning.
//
// Filesystem mutation is left entirely to stow. Running the same mode twice
// is idempotent because every package is requested with restow semantics.
package core
