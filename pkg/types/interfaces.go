package types

import (
	"io/fs"
)

// FS is the read-only filesystem view package discovery needs
type FS interface {
	Stat(name string) (fs.FileInfo, error)

	// Lstat does not follow a trailing symlink. Implementations without
	// symlink support may fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)

	ReadDir(name string) ([]fs.DirEntry, error)
}
