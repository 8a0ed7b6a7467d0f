package display_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/arthur-debert/projbuild/pkg/display"
	"github.com/arthur-debert/projbuild/pkg/errors"
	"github.com/arthur-debert/projbuild/pkg/structure"
	"github.com/arthur-debert/projbuild/pkg/style"
	"github.com/arthur-debert/projbuild/pkg/testutil"
	"github.com/arthur-debert/projbuild/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func init() {
	style.DisableColor()
}

func parse(t *testing.T, lines ...string) *types.Structure {
	t.Helper()
	s, err := structure.Parse("project-structure", testutil.Lines(lines...))
	require.NoError(t, err)
	return s
}

func TestRenderTree(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, "src/main.go", "")
	testutil.WriteFile(t, fsys, "src/util.go", "")
	testutil.WriteFile(t, fsys, "README.md", "")
	testutil.WriteFile(t, fsys, ".git/HEAD", "")
	testutil.WriteFile(t, fsys, "src/__pycache__/x.pyc", "")

	got := display.RenderTree(fsys, "demo", []string{".git", "__pycache__"})

	want := strings.Join([]string{
		"demo",
		"├── README.md",
		"└── src",
		"    ├── main.go",
		"    └── util.go",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderTree_Empty(t *testing.T) {
	got := display.RenderTree(testutil.NewTestFS(), "demo", nil)
	assert.Equal(t, "demo\n", got)
}

func TestRenderPaths_FlagsOrphans(t *testing.T) {
	s := parse(t,
		"root/",
		"├── a.txt",
		"stray.txt",
	)

	out := display.RenderPaths(s)
	assert.Contains(t, out, "./a.txt\n")
	assert.Contains(t, out, "stray.txt  (no parent)")
}

func TestRenderAnalysis(t *testing.T) {
	s := parse(t,
		"root/",
		"├── src/",
		"│   └── main.go",
		"└── README.md",
	)

	out := display.RenderAnalysis(s)
	rows := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, rows, 5)

	assert.True(t, strings.HasPrefix(rows[0], "line"))
	assert.Contains(t, rows[1], "(root)")
	assert.Contains(t, rows[3], "2 src/")
	assert.Contains(t, rows[4], "1 root/")

	// box-drawing art is single width, so the start column lines up
	col := strings.Index(rows[0], "start")
	for _, row := range rows[1:] {
		assert.GreaterOrEqual(t, len([]rune(row)), col)
	}
}

func TestEncode(t *testing.T) {
	s := parse(t,
		"root/",
		"└── a.txt",
	)

	t.Run("json", func(t *testing.T) {
		data, err := display.Encode(s, display.FormatJSON)
		require.NoError(t, err)
		var back types.Structure
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, "./a.txt", back.Paths[0].RelativePath)
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := display.Encode(s, display.FormatYAML)
		require.NoError(t, err)
		var back types.Structure
		require.NoError(t, yaml.Unmarshal(data, &back))
		assert.Equal(t, "./a.txt", back.Paths[0].RelativePath)
	})

	t.Run("toml", func(t *testing.T) {
		data, err := display.Encode(s, display.FormatTOML)
		require.NoError(t, err)
		var back types.Structure
		require.NoError(t, toml.Unmarshal(data, &back))
		assert.Equal(t, "./a.txt", back.Paths[0].RelativePath)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := display.Encode(s, "xml")
		assert.Error(t, err)
	})
}

func TestRenderCreateReport(t *testing.T) {
	updated := &types.CreateReport{Created: []string{"./a.txt"}}
	assert.Equal(t, "Project structure updated.\n", display.RenderCreateReport(updated, false))

	unchanged := &types.CreateReport{
		Existing: []string{"./a.txt"},
		Failures: []types.EntryFailure{{Path: "./b", Err: errors.New(errors.ErrPathCollision, "occupied")}},
	}
	out := display.RenderCreateReport(unchanged, true)
	assert.Contains(t, out, "Project structure no changes made.")
	assert.Contains(t, out, "./b")
}

func TestRenderCleanupReport(t *testing.T) {
	assert.Equal(t, "Aborting cleanup operation.\n",
		display.RenderCleanupReport(&types.CleanupReport{Aborted: true}, false))

	standard := display.RenderCleanupReport(&types.CleanupReport{RemovedFiles: []string{"./a.txt"}}, false)
	assert.Equal(t, "project-structure based cleanup complete.\n", standard)

	forceful := display.RenderCleanupReport(&types.CleanupReport{
		Forceful:    true,
		ForcedFiles: []string{"stray.log"},
		ForcedDirs:  []string{"build"},
	}, false)
	assert.Contains(t, forceful, "Forcefully deleted file: stray.log")
	assert.Contains(t, forceful, "Forcefully deleted directory: build")
	assert.True(t, strings.HasSuffix(forceful, "FORCEFUL cleanup complete.\n"))
}

func TestRenderRootMismatch(t *testing.T) {
	out := display.RenderRootMismatch("project-structure", "demo", "elsewhere")
	assert.Contains(t, out, "Root as per project-structure: demo")
	assert.Contains(t, out, "Current working directory: elsewhere")
}

func TestMarkdownRenderer_FallsBackOnBadStyle(t *testing.T) {
	r := &display.MarkdownRenderer{Style: "/does/not/exist.json", Width: 60}
	assert.Equal(t, "# hi", r.Render("# hi"))
}

func TestMarkdownRenderer_RendersGuide(t *testing.T) {
	r := &display.MarkdownRenderer{Style: "notty", Width: 80}
	out := r.Render(display.FormatGuide())
	assert.Contains(t, out, "project-structure")
}
