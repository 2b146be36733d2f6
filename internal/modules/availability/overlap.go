package availability

import "time"

// Overlaps reports whether the half-open date ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Ranges touching at a boundary do not overlap:
// a checkout date equal to another check-in date is a valid back-to-back
// stay. Callers reject degenerate ranges (start >= end) before calling;
// this predicate assumes well-formed input.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// BeforeCutoff reports whether a stay starting on start is blocked by the
// cutoff date. The cutoff is inclusive: it blocks the start date itself.
func BeforeCutoff(start, cutoff time.Time) bool {
	return !start.After(cutoff)
}
