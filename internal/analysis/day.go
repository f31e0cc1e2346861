package analysis

import "time"

// DayOf truncates t to its calendar day in t's own location and returns that
// day at midnight UTC, so dates coming from different providers compare equal.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayIn is DayOf after converting t to loc. A nil loc means UTC.
func DayIn(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return DayOf(t.In(loc))
}
