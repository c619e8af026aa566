package reconcile

import "math"

// Progress describes the completion of one authoritative record.
type Progress struct {
	// Index is the zero-based position of the record just processed.
	Index int

	// Total is the authoritative input length.
	Total int

	// Percent is the completion fraction rounded half-away-from-zero to the
	// nearest integer.
	Percent int

	// DisplayName is the directory name of the record just processed.
	DisplayName string
}

// Reporter receives progress notifications during a reconciliation pass.
// Delivery is fire-and-forget: the engine neither depends on it succeeding
// nor blocks on it.
type Reporter interface {
	Report(p Progress)
}

// ReporterFunc adapts an ordinary function to the Reporter interface.
type ReporterFunc func(p Progress)

// Report calls f(p).
func (f ReporterFunc) Report(p Progress) { f(p) }

// percentDone computes the rounded completion percentage after processing the
// record at the given zero-based index.
func percentDone(index, total int) int {
	if total <= 0 {
		return 100
	}
	return int(math.Round(float64(index+1) / float64(total) * 100))
}
