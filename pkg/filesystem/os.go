package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/projbuild/pkg/types"
)

// osFS implements types.FS using the OS filesystem, resolving every name
// against a fixed root directory.
type osFS struct {
	root string
}

// NewOS creates a new OS filesystem implementation rooted at root
func NewOS(root string) types.FS {
	return &osFS{root: root}
}

func (o *osFS) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(o.root, name)
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(o.path(name))
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(o.path(name))
}

func (o *osFS) OpenFile(name string, flag int, perm fs.FileMode) (io.WriteCloser, error) {
	return os.OpenFile(o.path(name), flag, perm)
}

func (o *osFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(o.path(path), perm)
}

func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(o.path(name))
}

func (o *osFS) Remove(name string) error {
	return os.Remove(o.path(name))
}

func (o *osFS) RemoveAll(path string) error {
	return os.RemoveAll(o.path(path))
}
