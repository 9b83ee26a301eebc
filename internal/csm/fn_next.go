package csm

import "time"

// NextMinute returns the start of the minute one minute after t, unless it
// is past MaxTime.
func NextMinute(t time.Time) (time.Time, bool) {
	next := Floor(t.Add(time.Minute))
	return next, !next.After(MaxTime)
}

// PreviousMinute returns the start of the minute one minute before t, unless
// it is before MinTime.
func PreviousMinute(t time.Time) (time.Time, bool) {
	prev := Floor(t.Add(-time.Minute))
	return prev, !prev.Before(MinTime)
}
