package display

import (
	_ "embed"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

//go:embed guide/format.md
var formatGuide string

// FormatGuide returns the structure file format guide as markdown
func FormatGuide() string {
	return formatGuide
}

// MarkdownRenderer renders markdown for the terminal with glamour
type MarkdownRenderer struct {
	Style string // "dark", "light", "notty", "auto" or a style file path
	Width int    // 0 = detect from stdout, falling back to 80
}

// NewMarkdownRenderer creates a renderer with auto-detected style and width
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "auto"}
}

// Render converts markdown to styled terminal text. Rendering errors fall
// back to the raw markdown.
func (r *MarkdownRenderer) Render(content string) string {
	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	options = append(options, glamour.WithWordWrap(r.width()))

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func (r *MarkdownRenderer) width() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
