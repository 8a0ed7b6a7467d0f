package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/projbuild/pkg/style"
	"github.com/arthur-debert/projbuild/pkg/types"
	"github.com/mattn/go-runewidth"
)

// RenderPaths lists every resolved path, flagging orphans
func RenderPaths(s *types.Structure) string {
	var b strings.Builder
	b.WriteString(style.TitleStyle.Render("Parsed project structure paths:"))
	b.WriteString("\n")
	for _, p := range s.Paths {
		b.WriteString("  ")
		b.WriteString(style.Entry(p.RelativePath, p.IsDirectory))
		if p.Orphan {
			b.WriteString("  " + style.WarningStyle.Render("(no parent)"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

var analysisHeader = []string{"line", "text", "start", "length", "anchor", "blocks", "parent"}

// RenderAnalysis renders the per-line position table. The text column is
// padded by display width so box-drawing art lines up.
func RenderAnalysis(s *types.Structure) string {
	rows := make([][]string, 0, len(s.Lines)+1)
	rows = append(rows, analysisHeader)
	for _, line := range s.Lines {
		rows = append(rows, []string{
			strconv.Itoa(line.LineNumber),
			line.RawText,
			strconv.Itoa(line.NameStart),
			strconv.Itoa(line.NameLength),
			column(line.ArtAnchor, types.NoAnchor),
			strconv.Itoa(line.ArtBlockCount),
			parentLabel(s, line),
		})
	}

	widths := make([]int, len(analysisHeader))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for r, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
		text := strings.TrimRight(strings.Join(cells, "  "), " ")
		if r == 0 {
			text = style.TitleStyle.Render(text)
		} else if s.Lines[r-1].Resolution == types.ResolvedOrphan {
			text = style.WarningStyle.Render(text)
		}
		b.WriteString(text + "\n")
	}
	return b.String()
}

func column(v, none int) string {
	if v == none {
		return "-"
	}
	return strconv.Itoa(v)
}

// parentLabel names the parent by its line number; "~" marks an
// indentation match
func parentLabel(s *types.Structure, line types.SourceLine) string {
	switch line.Resolution {
	case types.ResolvedRoot:
		return "(root)"
	case types.ResolvedOrphan:
		return "(none)"
	}
	label := fmt.Sprintf("%d %s", s.Lines[line.ParentIndex].LineNumber, line.ParentName)
	if line.Resolution == types.ResolvedIndent {
		label = "~" + label
	}
	return label
}
