package analytics

import "time"

const millisPerDay = 24 * 60 * 60 * 1000

// DaysBetween returns the whole-day distance from one instant to
// another, rounded up on millisecond arithmetic. The result is
// negative when to precedes from by more than a day, and zero when to
// is within the day immediately before from. A subscription expiring
// in a fraction of a day therefore reports one day remaining, and one
// that expired a fraction of a day ago reports zero. Thresholds
// downstream (7 and 14 days) depend on this rounding direction.
func DaysBetween(from, to time.Time) int {
	diff := to.UnixMilli() - from.UnixMilli()
	days := diff / millisPerDay
	if diff%millisPerDay > 0 {
		days++
	}
	return int(days)
}

// DaysUntil is the nil-safe form of DaysBetween for optional instants.
// It reports ok=false when the target is missing or unset; callers
// must treat that as "unknown" and skip threshold comparisons rather
// than defaulting to zero.
func DaysUntil(from time.Time, to *time.Time) (days int, ok bool) {
	if to == nil || to.IsZero() {
		return 0, false
	}
	return DaysBetween(from, *to), true
}
