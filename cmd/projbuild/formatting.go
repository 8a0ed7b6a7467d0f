package projbuild

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// stdoutIsTerminal reports whether help output goes to a terminal
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// helpBold renders section headings in bold on terminals only
func helpBold(s string) string {
	if !stdoutIsTerminal() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// initTemplateFormatting registers the usage template helpers
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":  helpBold,
		"upper": strings.ToUpper,
	})
}
