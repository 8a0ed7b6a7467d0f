package types

// NoParent marks a SourceLine without a resolved parent
const NoParent = -1

// NoAnchor marks a SourceLine whose art scan never found an anchor column
const NoAnchor = -1

// Resolution records how a line's parent was decided
type Resolution string

const (
	ResolvedRoot   Resolution = "root"
	ResolvedAnchor Resolution = "anchor"
	ResolvedIndent Resolution = "indent"
	ResolvedOrphan Resolution = "orphan"
)

// SourceLine is one surviving line of a structure file.
//
// Lines live in an arena ([]SourceLine) owned by Structure; ParentIndex points
// into the same arena. Column fields count runes, not bytes, so box-drawing
// art occupies one column per glyph.
type SourceLine struct {
	// LineNumber is the original 1-based line number in the structure file.
	// Gaps left by discarded lines are preserved.
	LineNumber int `json:"line" yaml:"line" toml:"line"`

	// RawText is the line with its comment removed and right-trimmed
	RawText string `json:"text" yaml:"text" toml:"text"`

	IsDirectory bool `json:"directory" yaml:"directory" toml:"directory"`

	// NameStart is the column of the first letter or digit
	NameStart int `json:"name_start" yaml:"name_start" toml:"name_start"`

	// NameLength is the rune count from NameStart to the end of the line
	NameLength int `json:"name_length" yaml:"name_length" toml:"name_length"`

	// ArtAnchor is the leftmost column owned by this line's connecting art,
	// or NoAnchor.
	ArtAnchor int `json:"art_anchor" yaml:"art_anchor" toml:"art_anchor"`

	// ArtBlockCount counts runs of art left of the name. Diagnostic only.
	ArtBlockCount int `json:"art_blocks" yaml:"art_blocks" toml:"art_blocks"`

	ParentIndex int        `json:"parent_index" yaml:"parent_index" toml:"parent_index"`
	ParentName  string     `json:"parent_name,omitempty" yaml:"parent_name,omitempty" toml:"parent_name,omitempty"`
	Resolution  Resolution `json:"resolution" yaml:"resolution" toml:"resolution"`
}

// Name returns the name token: everything from NameStart to the end of the line
func (l SourceLine) Name() string {
	runes := []rune(l.RawText)
	if l.NameStart < 0 || l.NameStart > len(runes) {
		return ""
	}
	return string(runes[l.NameStart:])
}

// HasParent reports whether the line has a resolved parent
func (l SourceLine) HasParent() bool {
	return l.ParentIndex != NoParent
}

// Contains reports whether column falls inside the line's name span,
// inclusive at both ends.
func (l SourceLine) Contains(column int) bool {
	return column >= l.NameStart && column <= l.NameStart+l.NameLength
}

// Structure is the parsed model of one structure file. It is rebuilt from
// scratch on every invocation and never persisted.
type Structure struct {
	// Source is the structure file name the model was read from
	Source string `json:"source" yaml:"source" toml:"source"`

	// Lines is the arena; index 0 is always the root
	Lines []SourceLine `json:"lines" yaml:"lines" toml:"lines"`

	// Paths holds one entry per non-root line, in line order
	Paths []ResolvedPath `json:"paths" yaml:"paths" toml:"paths"`

	// Orphans lists arena indices of lines without a resolvable parent
	Orphans []int `json:"orphans,omitempty" yaml:"orphans,omitempty" toml:"orphans,omitempty"`
}

// Root returns the root line
func (s *Structure) Root() SourceLine {
	return s.Lines[0]
}

// RootName returns the stated project root name without its trailing slash
func (s *Structure) RootName() string {
	name := s.Root().Name()
	for len(name) > 1 && name[len(name)-1] == '/' {
		name = name[:len(name)-1]
	}
	return name
}
