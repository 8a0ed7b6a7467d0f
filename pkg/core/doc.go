// Package core implements the projbuild pipeline entry points.
//
// Every entry point re-reads and re-parses the structure file, so the model
// always reflects the file as it is now:
//
//	Analyze         load + parse, no filesystem changes
//	CreateProject   load + root guard + builder.Create
//	CleanupProject  load + root guard + confirmation + builder.Cleanup
//
// # Root guard
//
// The first line of the structure file names the project root. It must equal
// the base name of the working directory, otherwise CreateProject and
// CleanupProject stop with ErrRootMismatch before touching anything. The
// mismatch is recoverable: fix the file or move, then retry.
//
// # Confirmation
//
// CleanupProject asks its Confirmer before deleting anything. A declined
// prompt returns a report with Aborted set and no error.
package core
