package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for projbuild operations.
// All names are relative to the working directory the FS is bound to.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	OpenFile(name string, flag int, perm fs.FileMode) (io.WriteCloser, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Removal. Remove must refuse non-empty directories.
	Remove(name string) error
	RemoveAll(path string) error
}

// Confirmer gates destructive actions behind an explicit yes/no answer.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a plain function to the Confirmer interface
type ConfirmFunc func(prompt string) (bool, error)

// Confirm calls f(prompt)
func (f ConfirmFunc) Confirm(prompt string) (bool, error) {
	return f(prompt)
}

// AlwaysConfirm approves every prompt; used for --yes
var AlwaysConfirm Confirmer = ConfirmFunc(func(string) (bool, error) { return true, nil })
