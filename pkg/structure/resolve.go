package structure

import (
	"github.com/arthur-debert/projbuild/pkg/errors"
	"github.com/arthur-debert/projbuild/pkg/logging"
	"github.com/arthur-debert/projbuild/pkg/types"
)

// Resolve links every non-root line to its parent and returns the arena
// indices of lines left without one.
//
// A line with an art anchor takes the nearest earlier line whose name span
// contains the anchor column. Scanning strictly upward means a deeper sibling
// wins over an ancestor whose span would also fit.
//
// A line without an anchor (plain indentation, no art) takes the nearest
// earlier line that starts further left.
//
// Orphans are not errors: they keep types.NoParent and assemble into bare,
// un-rooted paths. Callers decide whether to surface them.
func Resolve(lines []types.SourceLine) []int {
	logger := logging.GetLogger("structure.resolve")

	var orphans []int
	for i := 1; i < len(lines); i++ {
		line := &lines[i]

		parent := types.NoParent
		resolution := types.ResolvedOrphan
		if line.ArtAnchor != types.NoAnchor {
			if j := enclosingLine(lines, i); j != types.NoParent {
				parent, resolution = j, types.ResolvedAnchor
			}
		} else if j := indentParent(lines, i); j != types.NoParent {
			parent, resolution = j, types.ResolvedIndent
		}

		line.ParentIndex = parent
		line.Resolution = resolution
		if parent == types.NoParent {
			orphans = append(orphans, i)
			logger.Debug().
				Str("code", string(errors.ErrUnresolvedParent)).
				Int("line", line.LineNumber).
				Str("name", line.Name()).
				Int("anchor", line.ArtAnchor).
				Msg("No parent found; entry will be created un-rooted")
			continue
		}

		line.ParentName = lines[parent].Name()
		if !lines[parent].IsDirectory {
			logger.Debug().
				Int("line", line.LineNumber).
				Str("parent", line.ParentName).
				Msg("Parent is not marked as a directory")
		}
		logger.Trace().
			Int("line", line.LineNumber).
			Int("parentLine", lines[parent].LineNumber).
			Str("resolution", string(resolution)).
			Msg("Resolved parent")
	}
	return orphans
}

// enclosingLine scans upward from i for the first line whose name span
// contains i's anchor.
func enclosingLine(lines []types.SourceLine, i int) int {
	anchor := lines[i].ArtAnchor
	for j := i - 1; j >= 0; j-- {
		if lines[j].Contains(anchor) {
			return j
		}
	}
	return types.NoParent
}

// indentParent scans upward from i for the first line starting strictly to
// its left.
func indentParent(lines []types.SourceLine, i int) int {
	start := lines[i].NameStart
	if start == 0 {
		return types.NoParent
	}
	for j := i - 1; j >= 0; j-- {
		if lines[j].NameStart < start {
			return j
		}
	}
	return types.NoParent
}
