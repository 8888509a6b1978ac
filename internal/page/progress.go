package page

import "math"

// ProgressTracker keeps a monotonic completion percentage for a session.
// Wrapping inserts terminators that were never in the source, so every
// synthetic break grows the expected total alongside the consumed count;
// otherwise the percentage would drift past 100 on wrapped streams.
type ProgressTracker struct {
	totalExpected int
	consumed      int
	breaks        int
}

// NewProgressTracker starts tracking against the stream's initial size,
// as obtained by the caller at session start.
func NewProgressTracker(size int) *ProgressTracker {
	return &ProgressTracker{totalExpected: size}
}

// Observe folds one page result into the running totals.
func (t *ProgressTracker) Observe(res Result) {
	t.consumed += res.ConsumedChars
	t.breaks += res.SyntheticBreaks
	t.totalExpected += res.SyntheticBreaks
}

// Percentage reports completion in percent, rounded to two decimals.
func (t *ProgressTracker) Percentage() float64 {
	if t.totalExpected <= 0 {
		return 100
	}
	pct := float64(t.consumed) / float64(t.totalExpected) * 100
	return math.Round(pct*100) / 100
}

// Complete reports whether everything expected has been consumed.
func (t *ProgressTracker) Complete() bool {
	return t.consumed >= t.totalExpected
}

// SyntheticBreaks returns the cumulative count of inserted terminators.
func (t *ProgressTracker) SyntheticBreaks() int {
	return t.breaks
}
