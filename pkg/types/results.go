package types

// Outcome strings reported by a create run
const (
	OutcomeUpdated   = "updated"
	OutcomeNoChanges = "no changes made"
)

// EntryFailure records a per-entry filesystem error that was skipped
type EntryFailure struct {
	Path string
	Err  error
}

// CreateReport summarizes one run of the synthesizer
type CreateReport struct {
	Created  []string
	Existing []string
	Failures []EntryFailure
}

// Updated reports whether at least one entry was created
func (r *CreateReport) Updated() bool {
	return len(r.Created) > 0
}

// Outcome returns "updated" or "no changes made"
func (r *CreateReport) Outcome() string {
	if r.Updated() {
		return OutcomeUpdated
	}
	return OutcomeNoChanges
}

// CleanupReport summarizes one run of the destroyer
type CleanupReport struct {
	Forceful bool

	// Aborted is set when the confirmation gate was declined
	Aborted bool

	RemovedFiles []string
	RemovedDirs  []string

	// Retained lists directories that still held unlisted entries
	Retained []string

	// ForcedFiles and ForcedDirs are removed by the forceful wipe
	ForcedFiles []string
	ForcedDirs  []string

	Failures []EntryFailure
}

// Removed returns the number of entries the run deleted
func (r *CleanupReport) Removed() int {
	return len(r.RemovedFiles) + len(r.RemovedDirs) + len(r.ForcedFiles) + len(r.ForcedDirs)
}
