package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/projbuild/pkg/style"
	"github.com/arthur-debert/projbuild/pkg/types"
)

// RenderCreateReport summarizes a create run. Failures are only listed in
// diagnostics mode.
func RenderCreateReport(r *types.CreateReport, diagnostics bool) string {
	var b strings.Builder
	b.WriteString(style.TitleStyle.Render(fmt.Sprintf("Project structure %s.", r.Outcome())))
	b.WriteString("\n")
	if diagnostics {
		for _, p := range r.Created {
			b.WriteString("  " + style.SuccessStyle.Render("+") + " " + p + "\n")
		}
		writeFailures(&b, r.Failures)
	}
	return b.String()
}

// RenderCleanupReport summarizes a cleanup run. Forceful deletions are
// always listed.
func RenderCleanupReport(r *types.CleanupReport, diagnostics bool) string {
	var b strings.Builder
	if r.Aborted {
		b.WriteString(style.WarningStyle.Render("Aborting cleanup operation."))
		b.WriteString("\n")
		return b.String()
	}

	for _, name := range r.ForcedFiles {
		b.WriteString(style.ErrorStyle.Render("Forcefully deleted file: "+name) + "\n")
	}
	for _, name := range r.ForcedDirs {
		b.WriteString(style.ErrorStyle.Render("Forcefully deleted directory: "+name) + "\n")
	}

	if diagnostics {
		for _, p := range r.RemovedFiles {
			b.WriteString("  - " + p + "\n")
		}
		for _, p := range r.RemovedDirs {
			b.WriteString("  - " + p + "\n")
		}
		for _, p := range r.Retained {
			b.WriteString("  " + style.MutedStyle.Render("kept "+p+" (not empty)") + "\n")
		}
		writeFailures(&b, r.Failures)
	}

	message := "project-structure based"
	if r.Forceful {
		message = "FORCEFUL"
	}
	b.WriteString(style.WarningStyle.Render(message + " cleanup complete."))
	b.WriteString("\n")
	return b.String()
}

// RenderRootMismatch explains a root guard failure and how to recover
func RenderRootMismatch(source, stated, actual string) string {
	var b strings.Builder
	b.WriteString(style.ErrorStyle.Render(fmt.Sprintf("Project root in %s does not match working directory.", source)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Root as per %s: %s\n", source, style.TitleStyle.Render(stated))
	fmt.Fprintf(&b, "  Current working directory: %s\n", style.TitleStyle.Render(actual))
	fmt.Fprintf(&b, "Please update the %s file to match the current working directory.\n", source)
	b.WriteString("    OR\n")
	b.WriteString("Move operations to the correct directory.\n")
	return b.String()
}

func writeFailures(b *strings.Builder, failures []types.EntryFailure) {
	for _, f := range failures {
		b.WriteString("  " + style.ErrorStyle.Render("! "+f.Path+": "+f.Err.Error()) + "\n")
	}
}
