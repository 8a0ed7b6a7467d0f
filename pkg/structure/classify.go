package structure

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/projbuild/pkg/types"
)

// CommentMarker starts a trailing comment in a structure file
const CommentMarker = "#"

// Classify splits content into lines and keeps only those carrying a name.
//
// Each physical line is cut at the first comment marker and right-trimmed;
// lines left empty or without any letter or digit are discarded. Survivors keep
// their original 1-based line number. The first survivor becomes the root and
// is always a directory.
func Classify(content string) []types.SourceLine {
	var lines []types.SourceLine
	for i, raw := range strings.Split(content, "\n") {
		if idx := strings.Index(raw, CommentMarker); idx >= 0 {
			raw = raw[:idx]
		}
		raw = strings.TrimRightFunc(raw, unicode.IsSpace)
		if raw == "" || !strings.ContainsFunc(raw, isAlnum) {
			continue
		}
		lines = append(lines, types.SourceLine{
			LineNumber:  i + 1,
			RawText:     raw,
			IsDirectory: strings.HasSuffix(raw, "/"),
			ArtAnchor:   types.NoAnchor,
			ParentIndex: types.NoParent,
		})
	}
	if len(lines) > 0 {
		lines[0].IsDirectory = true
		lines[0].Resolution = types.ResolvedRoot
	}
	return lines
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isArt reports whether r is decorative: neither a name character nor a space.
func isArt(r rune) bool {
	return !isAlnum(r) && r != ' '
}
