package filesystem

import (
	"errors"
	"io"
	"io/fs"

	"github.com/arthur-debert/projbuild/pkg/types"
	"github.com/spf13/afero"
)

// ErrDirNotEmpty is returned by the afero implementation when removing a
// directory that still has entries
var ErrDirNotEmpty = errors.New("directory not empty")

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) OpenFile(name string, flag int, perm fs.FileMode) (io.WriteCloser, error) {
	return a.fs.OpenFile(name, flag, perm)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	dirEntries := make([]fs.DirEntry, len(entries))
	for i, entry := range entries {
		dirEntries[i] = fs.FileInfoToDirEntry(entry)
	}
	return dirEntries, nil
}

func (a *aferoFS) Remove(name string) error {
	// MemMapFs happily drops directories with children; match the OS instead.
	info, err := a.fs.Stat(name)
	if err != nil {
		return err
	}
	if info.IsDir() {
		entries, err := afero.ReadDir(a.fs, name)
		if err != nil {
			return err
		}
		if len(entries) > 0 {
			return &fs.PathError{Op: "remove", Path: name, Err: ErrDirNotEmpty}
		}
	}
	return a.fs.Remove(name)
}

func (a *aferoFS) RemoveAll(path string) error {
	return a.fs.RemoveAll(path)
}
