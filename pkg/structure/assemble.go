package structure

import (
	"strings"

	"github.com/arthur-debert/projbuild/pkg/types"
)

// RootPrefix replaces the root's own name at the front of every rooted path
const RootPrefix = "./"

// Assemble builds one ResolvedPath per non-root line, in line order.
//
// A path is the line's name with each ancestor's name prepended, separated by
// "/" unless the ancestor already ends in one. When the chain reaches the root
// (index 0) the root segment is dropped and RootPrefix is used instead; the
// root is recognized by index, so a nested entry sharing the root's name is
// left untouched. Chains ending at an orphan stay un-rooted.
func Assemble(lines []types.SourceLine) []types.ResolvedPath {
	paths := make([]types.ResolvedPath, 0, len(lines))
	for i := 1; i < len(lines); i++ {
		path, rooted := assemblePath(lines, i)
		paths = append(paths, types.ResolvedPath{
			RelativePath: path,
			IsDirectory:  lines[i].IsDirectory,
			LineNumber:   lines[i].LineNumber,
			Orphan:       !rooted,
		})
	}
	return paths
}

func assemblePath(lines []types.SourceLine, i int) (string, bool) {
	path := lines[i].Name()
	idx := lines[i].ParentIndex
	for idx != types.NoParent {
		if idx == 0 {
			return RootPrefix + path, true
		}
		parent := lines[idx].Name()
		if !strings.HasSuffix(parent, "/") {
			parent += "/"
		}
		path = parent + path
		idx = lines[idx].ParentIndex
	}
	return path, false
}
