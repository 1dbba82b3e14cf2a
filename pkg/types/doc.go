// Package types defines the small set of types shared across dotstow
// packages: the filesystem interface used by discovery and the run mode.
package types
