package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/projbuild/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir(), nil)
	require.NoError(t, err)

	assert.Equal(t, "project-structure", cfg.StructureFile)
	assert.Equal(t, "project-builder", cfg.EntryPoint)
	assert.Empty(t, cfg.Protected)
	assert.Equal(t, []string{"__pycache__", ".git", ".vscode", ".idea", ".DS_Store"}, cfg.Ignore)
	assert.False(t, cfg.Diagnostics)
	assert.False(t, cfg.AssumeYes)
	assert.Empty(t, cfg.Source)
}

func TestLoad_ProjectTOML(t *testing.T) {
	dir := t.TempDir()
	content := `structure_file = "layout.txt"
protected = ["notes.md"]
diagnostics = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".projbuild.toml"), []byte(content), 0644))

	cfg, err := config.Load(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, "layout.txt", cfg.StructureFile)
	assert.Equal(t, []string{"notes.md"}, cfg.Protected)
	assert.True(t, cfg.Diagnostics)
	assert.Equal(t, filepath.Join(dir, ".projbuild.toml"), cfg.Source)
	// untouched keys keep their defaults
	assert.Equal(t, "project-builder", cfg.EntryPoint)
}

func TestLoad_ProjectYAML(t *testing.T) {
	dir := t.TempDir()
	content := "entry_point: build.sh\nignore:\n  - node_modules\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".projbuild.yaml"), []byte(content), 0644))

	cfg, err := config.Load(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, "build.sh", cfg.EntryPoint)
	assert.Equal(t, []string{"node_modules"}, cfg.Ignore)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".projbuild.toml"), []byte(`structure_file = "from-file"`), 0644))
	t.Setenv("PROJBUILD_STRUCTURE_FILE", "from-env")
	t.Setenv("PROJBUILD_PROTECTED", "a.txt,b.txt")

	cfg, err := config.Load(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.StructureFile)
	assert.Equal(t, []string{"a.txt", "b.txt"}, cfg.Protected)
}

func TestLoad_OverridesWin(t *testing.T) {
	t.Setenv("PROJBUILD_DIAGNOSTICS", "false")

	cfg, err := config.Load(t.TempDir(), map[string]interface{}{
		"diagnostics":    true,
		"structure_file": "tree.txt",
	})
	require.NoError(t, err)

	assert.True(t, cfg.Diagnostics)
	assert.Equal(t, "tree.txt", cfg.StructureFile)
}

func TestLoad_InvalidStructureFile(t *testing.T) {
	_, err := config.Load(t.TempDir(), map[string]interface{}{"structure_file": "/abs/path"})
	assert.Error(t, err)
}

func TestLoad_MalformedProjectFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".projbuild.toml"), []byte("structure_file = ["), 0644))

	_, err := config.Load(dir, nil)
	assert.Error(t, err)
}

func TestProtectedNames(t *testing.T) {
	cfg := config.Default()
	cfg.Protected = []string{"project-builder", "LICENSE", " "}

	assert.Equal(t, []string{"project-structure", "project-builder", "LICENSE"}, cfg.ProtectedNames())
}

func TestProtectedNames_NestedStructureFile(t *testing.T) {
	cfg := config.Default()
	cfg.StructureFile = "./docs/tree"

	assert.Equal(t, []string{"docs/tree", "project-builder"}, cfg.ProtectedNames())
}
