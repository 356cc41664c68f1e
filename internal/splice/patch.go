package splice

import "strings"

// PatchOutcome reports what a guarded insertion did.
type PatchOutcome int

const (
	// PatchApplied means the block was inserted.
	PatchApplied PatchOutcome = iota
	// PatchSkipped means the guard substring was already present.
	PatchSkipped
	// PatchMarkerMissing means the insertion marker was not found; the
	// document is returned unchanged.
	PatchMarkerMissing
)

// InsertAfter inserts block immediately after the first occurrence of
// marker unless guard is already present in document. Repeated runs are
// no-ops once the guard lands with the first insertion.
func InsertAfter(document, marker, guard, block string) (string, PatchOutcome) {
	if strings.Contains(document, guard) {
		return document, PatchSkipped
	}
	idx := strings.Index(document, marker)
	if idx == -1 {
		return document, PatchMarkerMissing
	}
	cut := idx + len(marker)
	return document[:cut] + block + document[cut:], PatchApplied
}

// InsertBefore inserts block immediately before the first occurrence of
// marker unless guard is already present in document.
func InsertBefore(document, marker, guard, block string) (string, PatchOutcome) {
	if strings.Contains(document, guard) {
		return document, PatchSkipped
	}
	idx := strings.Index(document, marker)
	if idx == -1 {
		return document, PatchMarkerMissing
	}
	return document[:idx] + block + document[idx:], PatchApplied
}
