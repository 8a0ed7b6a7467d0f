package types

// ResolvedPath is a relative path assembled from a SourceLine's parent chain
type ResolvedPath struct {
	RelativePath string `json:"path" yaml:"path" toml:"path"`
	IsDirectory  bool   `json:"directory" yaml:"directory" toml:"directory"`

	// LineNumber links back to the structure file line
	LineNumber int `json:"line" yaml:"line" toml:"line"`

	// Orphan is set when the chain never reached the root; such paths are
	// left un-rooted.
	Orphan bool `json:"orphan,omitempty" yaml:"orphan,omitempty" toml:"orphan,omitempty"`
}

// String returns the relative path
func (p ResolvedPath) String() string {
	return p.RelativePath
}
