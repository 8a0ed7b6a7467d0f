package structure

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/projbuild/pkg/errors"
	"github.com/arthur-debert/projbuild/pkg/logging"
	"github.com/arthur-debert/projbuild/pkg/types"
)

// Parse runs the full pipeline over the text of a structure file.
// source names the file for diagnostics.
func Parse(source, content string) (*types.Structure, error) {
	logger := logging.GetLogger("structure")

	lines := Classify(content)
	if len(lines) == 0 {
		return nil, errors.Newf(errors.ErrStructureEmpty, "%s has no entries", source).
			WithDetail("source", source)
	}

	Analyze(lines)
	orphans := Resolve(lines)
	paths := Assemble(lines)

	logger.Debug().
		Str("source", source).
		Str("root", lines[0].Name()).
		Int("lines", len(lines)).
		Int("paths", len(paths)).
		Int("orphans", len(orphans)).
		Msg("Parsed structure file")

	return &types.Structure{
		Source:  source,
		Lines:   lines,
		Paths:   paths,
		Orphans: orphans,
	}, nil
}

// Load reads name through fsys and parses it. A missing file yields
// ErrStructureNotFound, which callers treat as fatal.
func Load(fsys types.FS, name string) (*types.Structure, error) {
	data, err := fsys.ReadFile(name)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrStructureNotFound, "%s not found", name).
				WithDetail("source", name)
		}
		return nil, errors.Wrapf(err, errors.ErrStructureRead, "failed to read %s", name).
			WithDetail("source", name)
	}
	return Parse(name, string(data))
}
