package csm

import "time"

// The range of instants the search operates on.
var (
	MinTime = time.Date(-262143, time.January, 1, 0, 0, 0, 0, time.UTC)
	MaxTime = time.Date(262142, time.December, 31, 23, 59, 0, 0, time.UTC)
)

// Floor truncates t to the start of its minute in UTC.
func Floor(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// date is a calendar day.
type date struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) date {
	year, month, day := t.Date()
	return date{year, month, day}
}

func (d date) before(other date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

func (d date) after(other date) bool {
	return other.before(d)
}

func (d date) weekday() time.Weekday {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d date) daysInMonth() int {
	return daysInMonth(d.year, d.month)
}

// next returns the following day.
func (d date) next() date {
	switch {
	case d.day < d.daysInMonth():
		return date{d.year, d.month, d.day + 1}
	case d.month < time.December:
		return date{d.year, d.month + 1, 1}
	default:
		return date{d.year + 1, time.January, 1}
	}
}

func (d date) at(c clock) time.Time {
	return time.Date(d.year, d.month, d.day, c.hour, c.minute, 0, 0, time.UTC)
}

// clock is a time of day with minute precision.
type clock struct {
	hour   int
	minute int
}

func clockOf(t time.Time) clock {
	return clock{t.Hour(), t.Minute()}
}

func (c clock) after(other clock) bool {
	if c.hour != other.hour {
		return c.hour > other.hour
	}
	return c.minute > other.minute
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if isLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// weekdayForDay returns the weekday of the given day of ref's month, where
// refWeekday is the weekday of ref.
func weekdayForDay(day int, ref date, refWeekday time.Weekday) time.Weekday {
	return time.Weekday(((int(refWeekday)+day-ref.day)%7 + 7) % 7)
}

// firstWeekday returns the first day of ref's month falling on weekday.
func firstWeekday(weekday time.Weekday, ref date, refWeekday time.Weekday) int {
	offset := (int(weekday) - int(refWeekday) + 7) % 7
	return (ref.day-1+offset)%7 + 1
}

// closestWeekday returns the weekday (Monday through Friday) closest to day
// within its month. A Saturday moves back to Friday unless it is the first
// day of the month, a Sunday moves forward to Monday unless it is the last.
func closestWeekday(day, daysInMonth int, weekday time.Weekday) int {
	switch weekday {
	case time.Saturday:
		if day == 1 {
			return 3
		}
		return day - 1
	case time.Sunday:
		if day == daysInMonth {
			return day - 2
		}
		return day + 1
	default:
		return day
	}
}
