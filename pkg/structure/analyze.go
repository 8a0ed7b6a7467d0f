package structure

import (
	"github.com/arthur-debert/projbuild/pkg/types"
)

// Analyze fills in the positional fields of every line in place.
//
// All lines get NameStart and NameLength. Non-root lines also get their art
// anchor and art block count; the root keeps types.NoAnchor.
func Analyze(lines []types.SourceLine) {
	for i := range lines {
		line := &lines[i]
		runes := []rune(line.RawText)

		line.NameStart = nameStart(runes)
		line.NameLength = len(runes) - line.NameStart

		if i == 0 {
			continue
		}
		line.ArtAnchor = artAnchor(runes, line.NameStart)
		line.ArtBlockCount = artBlocks(runes[:line.NameStart])
	}
}

// nameStart returns the column of the first letter or digit. Classified lines
// always contain one.
func nameStart(runes []rune) int {
	for i, r := range runes {
		if isAlnum(r) {
			return i
		}
	}
	return len(runes)
}
