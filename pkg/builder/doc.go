// Package builder reconciles a working directory with a list of resolved
// paths. Create adds what is missing without touching what exists; Cleanup
// removes what the list names, optionally followed by a forceful wipe.
//
// Both run to completion: an error on one entry is recorded in the report and
// the remaining entries are still processed. Nothing is rolled back.
package builder
