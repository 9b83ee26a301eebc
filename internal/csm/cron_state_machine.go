package csm

import (
	"time"

	"github.com/reugn/go-cronmask/expr"
)

// Months with 31 and 30 days, bit 0 is January.
const (
	months31 uint16 = 0b1010_1101_0101
	months30 uint16 = 0b0101_0010_1000
)

// Schedule is a compiled cron expression.
// It is a comparable value and safe for concurrent use.
type Schedule struct {
	minutes     uint64
	hours       uint32
	daysOfMonth daysOfMonth
	months      uint16 // bit 0 is January
	daysOfWeek  daysOfWeek
}

// Compile reduces a parsed expression into a Schedule.
func Compile(e *expr.CronExpr) Schedule {
	return Schedule{
		minutes:     fieldBits(e.Minutes),
		hours:       uint32(fieldBits(e.Hours)),
		daysOfMonth: compileDaysOfMonth(e.DaysOfMonth),
		months:      uint16(fieldBits(e.Months)),
		daysOfWeek:  compileDaysOfWeek(e.DaysOfWeek),
	}
}

// Any reports whether the schedule can ever match an instant.
// The zero Schedule matches nothing.
func (s Schedule) Any() bool {
	if s.minutes == 0 || s.hours == 0 || s.months == 0 {
		return false
	}
	if s.daysOfWeek.kind != dowStar || s.daysOfMonth.kind == domStar {
		return true
	}
	longest := 29
	switch {
	case s.months&months31 != 0:
		longest = 31
	case s.months&months30 != 0:
		longest = 30
	}
	return s.daysOfMonth.min() <= longest
}

// Contains reports whether the minute of t matches the schedule.
func (s Schedule) Contains(t time.Time) bool {
	t = t.UTC()
	return hasBit(s.minutes, t.Minute()) &&
		hasBit(s.hours, t.Hour()) &&
		s.containsDate(dateOf(t))
}

func (s Schedule) hasMonth(month time.Month) bool {
	return hasBit(s.months, int(month)-1)
}

// containsDate checks the month and the day fields, where a restricted
// day-of-month and a restricted day-of-week match if either one does.
func (s Schedule) containsDate(d date) bool {
	if !s.hasMonth(d.month) {
		return false
	}
	domStarred := s.daysOfMonth.kind == domStar
	dowStarred := s.daysOfWeek.kind == dowStar
	if domStarred && dowStarred {
		return true
	}
	weekday := d.weekday()
	switch {
	case dowStarred:
		return s.daysOfMonth.contains(d, weekday)
	case domStarred:
		return s.daysOfWeek.contains(d, weekday)
	default:
		return s.daysOfMonth.contains(d, weekday) || s.daysOfWeek.contains(d, weekday)
	}
}
