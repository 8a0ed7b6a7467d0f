package structure

import (
	"unicode"

	"github.com/arthur-debert/projbuild/pkg/types"
)

// anchorState tracks the leftward scan from a name toward column 0
type anchorState int

const (
	// nothing seen yet
	seekSpaceAndArt anchorState = iota
	// the space next to the name was consumed, still looking for art
	seekArt
	// art was found before any space
	seekSpace
	// both seen; the next space (or column 0) closes the art block
	seekTrailingSpace
)

// artAnchor returns the leftmost column owned by the art in front of the name
// starting at nameStart, or types.NoAnchor.
//
// The first space met only marks that a space was seen and is otherwise
// skipped. The first art rune marks art as seen. Once both are seen, a space
// at column c yields c+1 and reaching column 0 yields 0.
func artAnchor(runes []rune, nameStart int) int {
	state := seekSpaceAndArt
	for col := nameStart - 1; col >= 0; col-- {
		r := runes[col]
		space := r == ' '

		switch state {
		case seekSpaceAndArt:
			if space {
				state = seekArt
				continue
			}
			if isArt(r) {
				state = seekSpace
			}
		case seekArt:
			if isArt(r) {
				state = seekTrailingSpace
			}
		case seekSpace:
			if space {
				// this is the first space; it does not close the block
				state = seekTrailingSpace
				continue
			}
		case seekTrailingSpace:
			if space {
				return col + 1
			}
		}

		if state == seekTrailingSpace && col == 0 {
			return 0
		}
	}
	return types.NoAnchor
}

// artBlocks counts maximal runs of runes that are neither name characters nor
// whitespace in prefix.
func artBlocks(prefix []rune) int {
	count := 0
	inBlock := false
	for _, r := range prefix {
		if !isAlnum(r) && !unicode.IsSpace(r) {
			if !inBlock {
				count++
			}
			inBlock = true
			continue
		}
		inBlock = false
	}
	return count
}
