package cron

import (
	"iter"
	"time"

	"github.com/reugn/go-cronmask/internal/csm"
	"github.com/reugn/go-cronmask/logger"
)

type boundKind uint8

const (
	unbounded boundKind = iota
	included
	excluded
)

// Bound is one end of an iteration range.
type Bound struct {
	kind boundKind
	t    time.Time
}

// Included returns a bound containing the minute of t.
func Included(t time.Time) Bound {
	return Bound{kind: included, t: t}
}

// Excluded returns a bound excluding the minute of t.
func Excluded(t time.Time) Bound {
	return Bound{kind: excluded, t: t}
}

// Unbounded returns a bound at the corresponding limit of [MinTime] and
// [MaxTime].
func Unbounded() Bound {
	return Bound{}
}

func (b Bound) start() (time.Time, bool) {
	switch b.kind {
	case included:
		if b.t.Before(csm.MinTime) {
			return csm.MinTime, true
		}
		return csm.Floor(b.t), true
	case excluded:
		if b.t.Before(csm.MinTime) {
			return csm.MinTime, true
		}
		return csm.NextMinute(b.t)
	default:
		return csm.MinTime, true
	}
}

func (b Bound) end() (time.Time, bool) {
	switch b.kind {
	case included:
		if b.t.After(csm.MaxTime) {
			return csm.MaxTime, true
		}
		return csm.Floor(b.t), true
	case excluded:
		if b.t.After(csm.MaxTime) {
			return csm.MaxTime, true
		}
		return csm.PreviousMinute(b.t)
	default:
		return csm.MaxTime, true
	}
}

// Iterator yields the matching minutes of a schedule within a range in
// ascending order. An Iterator is not safe for concurrent use.
type Iterator struct {
	schedule csm.Schedule
	next     time.Time
	end      time.Time
	done     bool
}

// Iter returns an iterator over the matching minutes between start and end.
// The iterator is exhausted from the start if the range is empty or the
// schedule never matches.
func (c Cron) Iter(start, end Bound) *Iterator {
	it := &Iterator{schedule: c.schedule}
	var startOK, endOK bool
	it.next, startOK = start.start()
	it.end, endOK = end.end()
	it.done = !startOK || !endOK || it.next.After(it.end) || !c.schedule.Any()
	return it
}

// IterFrom returns an unbounded iterator starting at the minute of t.
func (c Cron) IterFrom(t time.Time) *Iterator {
	return c.Iter(Included(t), Unbounded())
}

// IterAfter returns an unbounded iterator starting after the minute of t.
func (c Cron) IterAfter(t time.Time) *Iterator {
	return c.Iter(Excluded(t), Unbounded())
}

// Next returns the next matching minute, or false once the iterator is
// exhausted.
func (it *Iterator) Next() (time.Time, bool) {
	if it.done {
		return time.Time{}, false
	}
	t, ok := it.schedule.FindNext(it.next, it.end)
	if !ok {
		it.done = true
		if logger.Enabled(logger.LevelTrace) {
			logger.Trace("Cron iterator exhausted", "schedule", it.schedule.String(),
				"from", it.next, "to", it.end)
		}
		return time.Time{}, false
	}
	it.next, ok = csm.NextMinute(t)
	it.done = !ok
	return t, true
}

// All returns a sequence over the remaining matching minutes.
func (it *Iterator) All() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for {
			t, ok := it.Next()
			if !ok || !yield(t) {
				return
			}
		}
	}
}
