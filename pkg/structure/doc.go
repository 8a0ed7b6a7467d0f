// Package structure turns a hand-drawn ASCII tree diagram into a list of
// relative paths.
//
// Parent/child relationships are recovered from column positions alone. The
// decorative art in front of each name ("├──", "└──", "│", plain indentation)
// is never tokenized; it only contributes an anchor column, and a line's parent
// is the nearest earlier line whose name span contains that column:
//
//	my-project/
//	├── src/
//	│   └── main.py
//	└── README.md        # entry point
//
// resolves to ./src/, ./src/main.py and ./README.md.
//
// The pipeline runs in four passes over an arena of types.SourceLine:
// Classify, Analyze, Resolve and Assemble. Parse chains them; Load reads the
// structure file through a types.FS first.
package structure
