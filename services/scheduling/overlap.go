package scheduling

import "time"

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) overlap. An interval that ends exactly when the other
// starts does not overlap it, so back-to-back appointments are legal.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// overlapsMinutes is the same predicate over minutes-from-midnight
// intervals on a single day.
func overlapsMinutes(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
