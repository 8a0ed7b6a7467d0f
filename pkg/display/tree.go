package display

import (
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/projbuild/pkg/logging"
	"github.com/arthur-debert/projbuild/pkg/style"
	"github.com/arthur-debert/projbuild/pkg/types"
)

// Tree branch glyphs
const (
	branchMid  = "├── "
	branchLast = "└── "
	indentMid  = "│   "
	indentLast = "    "
)

// TreeLegend explains the tree colors
func TreeLegend() string {
	return "[" + style.DirectoryStyle.Render("  directories    ") + style.FileStyle.Render("files") + "  ]"
}

// RenderTree draws the working directory behind fsys as a tree headed by
// rootLabel. Entries are sorted by name; names in ignore are skipped
// along with their contents.
func RenderTree(fsys types.FS, rootLabel string, ignore []string) string {
	skip := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		skip[name] = true
	}

	var b strings.Builder
	b.WriteString(style.DirectoryStyle.Render(rootLabel))
	b.WriteString("\n")
	walkTree(&b, fsys, ".", "", skip)
	return b.String()
}

func walkTree(b *strings.Builder, fsys types.FS, dir, prefix string, skip map[string]bool) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		logger := logging.GetLogger("display.tree")
		logger.Debug().Err(err).Str("dir", dir).Msg("Error walking directory")
		b.WriteString(prefix + style.ErrorStyle.Render("error walking "+dir+": "+err.Error()) + "\n")
		return
	}

	visible := entries[:0:0]
	for _, entry := range entries {
		if !skip[entry.Name()] {
			visible = append(visible, entry)
		}
	}
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].Name() < visible[j].Name()
	})

	for i, entry := range visible {
		last := i == len(visible)-1
		pointer, extension := branchMid, indentMid
		if last {
			pointer, extension = branchLast, indentLast
		}
		b.WriteString(prefix + pointer + style.Entry(entry.Name(), entry.IsDir()) + "\n")
		if entry.IsDir() {
			walkTree(b, fsys, path.Join(dir, entry.Name()), prefix+extension, skip)
		}
	}
}
