// Package packs discovers the packages of a dotfiles repository.
//
// A package is a directory whose contents stow links file-for-file into the
// target directory. Two kinds exist:
//
//   - base packages: immediate children of the repository root, minus the
//     infrastructure directories (.git, scripts, the hosts root)
//   - host packages: immediate children of <root>/hosts/<hostname>, kept only
//     when their subtree holds at least one regular file
//
// Discovery never mutates the filesystem and returns packages sorted by name.
package packs
