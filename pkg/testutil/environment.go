// pkg/testutil/environment.go
// DEPENDENCIES: filesystem, types
// PURPOSE: Provide an isolated working directory for builder and core tests

package testutil

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/arthur-debert/projbuild/pkg/filesystem"
	"github.com/arthur-debert/projbuild/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// String names the environment type, for subtest names
func (e EnvType) String() string {
	if e == EnvIsolated {
		return "isolated"
	}
	return "memory"
}

// memoryBase is where in-memory working directories live
const memoryBase = "/work"

// TestEnvironment is a working directory whose base name is RootName
type TestEnvironment struct {
	// WorkDir is the working directory path; its base is RootName
	WorkDir  string
	RootName string

	// FS is rooted at WorkDir
	FS types.FS

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a working directory named rootName
func NewTestEnvironment(t *testing.T, envType EnvType, rootName string) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		RootName: rootName,
		Type:     envType,
		t:        t,
	}

	switch envType {
	case EnvIsolated:
		env.WorkDir = filepath.Join(t.TempDir(), rootName)
		require.NoError(t, os.MkdirAll(env.WorkDir, 0755))
		env.FS = filesystem.NewOS(env.WorkDir)
	default:
		env.WorkDir = path.Join(memoryBase, rootName)
		mem := afero.NewMemMapFs()
		require.NoError(t, mem.MkdirAll(env.WorkDir, 0755))
		env.FS = filesystem.NewAferoFS(afero.NewBasePathFs(mem, env.WorkDir))
	}

	return env
}

// NewTestFS creates a new in-memory filesystem for testing, rooted at an
// empty directory.
func NewTestFS() types.FS {
	mem := afero.NewMemMapFs()
	_ = mem.MkdirAll(memoryBase, 0755)
	return filesystem.NewAferoFS(afero.NewBasePathFs(mem, memoryBase))
}

// WriteFile writes content at name, creating parent directories
func (e *TestEnvironment) WriteFile(name, content string) {
	e.t.Helper()
	WriteFile(e.t, e.FS, name, content)
}

// Mkdir creates name and its parents
func (e *TestEnvironment) Mkdir(name string) {
	e.t.Helper()
	require.NoError(e.t, e.FS.MkdirAll(name, 0755))
}

// Exists reports whether anything exists at name
func (e *TestEnvironment) Exists(name string) bool {
	_, err := e.FS.Stat(name)
	return err == nil
}

// IsDir reports whether name is a directory
func (e *TestEnvironment) IsDir(name string) bool {
	info, err := e.FS.Stat(name)
	return err == nil && info.IsDir()
}

// ReadFile returns the content of name
func (e *TestEnvironment) ReadFile(name string) string {
	e.t.Helper()
	data, err := e.FS.ReadFile(name)
	require.NoError(e.t, err)
	return string(data)
}

// Tree lists every entry below the working directory as "./"-prefixed
// paths, directories with a trailing slash, sorted.
func (e *TestEnvironment) Tree() []string {
	e.t.Helper()
	return ListTree(e.t, e.FS)
}

// WriteFile writes content at name through fsys, creating parent directories
func WriteFile(t *testing.T, fsys types.FS, name, content string) {
	t.Helper()
	if dir := path.Dir(filepath.ToSlash(name)); dir != "." && dir != "/" {
		require.NoError(t, fsys.MkdirAll(dir, 0755))
	}
	f, err := fsys.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

// ListTree walks fsys from "." and returns every entry, see TestEnvironment.Tree
func ListTree(t *testing.T, fsys types.FS) []string {
	t.Helper()
	var out []string
	var walk func(dir string)
	walk = func(dir string) {
		entries, err := fsys.ReadDir(dir)
		require.NoError(t, err)
		for _, entry := range entries {
			rel := path.Join(dir, entry.Name())
			if entry.IsDir() {
				out = append(out, "./"+rel+"/")
				walk(rel)
				continue
			}
			out = append(out, "./"+rel)
		}
	}
	walk(".")
	sort.Strings(out)
	return out
}

// PathStrings flattens resolved paths for comparisons
func PathStrings(paths []types.ResolvedPath) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.RelativePath
	}
	return out
}

// Lines joins structure file lines with newlines
func Lines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

