package csm

import (
	"time"

	"github.com/reugn/go-cronmask/expr"
)

type dayOfMonthKind uint8

const (
	domStar dayOfMonthKind = iota
	domPattern
	domLast
	domLastWeekday
	domWeekday
)

// daysOfMonth is the compiled day-of-month field.
type daysOfMonth struct {
	kind    dayOfMonthKind
	pattern uint32 // bit d-1 is day d
	value   uint8  // offset of domLast and domLastWeekday, day of domWeekday
}

func compileDaysOfMonth(e expr.DayOfMonthExpr) daysOfMonth {
	switch e.Kind() {
	case expr.DayOfMonthLast:
		if e.Weekday() {
			return daysOfMonth{kind: domLastWeekday, value: uint8(e.Offset())}
		}
		return daysOfMonth{kind: domLast, value: uint8(e.Offset())}
	case expr.DayOfMonthClosestWeekday:
		return daysOfMonth{kind: domWeekday, value: uint8(e.Day())}
	case expr.DayOfMonthList:
		list, _ := e.List()
		return daysOfMonth{kind: domPattern, pattern: uint32(listBits(list))}
	default:
		return daysOfMonth{}
	}
}

// target resolves a last or closest weekday kind to a day of ref's month.
func (n daysOfMonth) target(ref date, refWeekday time.Weekday) (int, bool) {
	dim := ref.daysInMonth()
	switch n.kind {
	case domLast:
		day := dim - int(n.value)
		return day, day >= 1
	case domLastWeekday:
		day := dim - int(n.value)
		if day < 1 {
			return 0, false
		}
		return closestWeekday(day, dim, weekdayForDay(day, ref, refWeekday)), true
	case domWeekday:
		day := int(n.value)
		if day > dim {
			return 0, false
		}
		return closestWeekday(day, dim, weekdayForDay(day, ref, refWeekday)), true
	default:
		return 0, false
	}
}

func (n daysOfMonth) contains(d date, weekday time.Weekday) bool {
	switch n.kind {
	case domStar:
		return true
	case domPattern:
		return hasBit(n.pattern, d.day-1)
	default:
		day, ok := n.target(d, weekday)
		return ok && day == d.day
	}
}

// next returns the first permitted day of start's month at or after start.
func (n daysOfMonth) next(start date, weekday time.Weekday) (int, bool) {
	switch n.kind {
	case domStar:
		return start.day, true
	case domPattern:
		i, ok := nextBit(n.pattern, start.day-1)
		return i + 1, ok && i < start.daysInMonth()
	default:
		day, ok := n.target(start, weekday)
		return day, ok && day >= start.day
	}
}

// min returns the lowest day of the month the field can ever match.
func (n daysOfMonth) min() int {
	switch n.kind {
	case domPattern:
		i, _ := nextBit(n.pattern, 0)
		return i + 1
	case domLast, domLastWeekday:
		if n.value == 0 {
			return 28
		}
		return int(n.value) + 1
	case domWeekday:
		return int(n.value)
	default:
		return 1
	}
}

type dayOfWeekKind uint8

const (
	dowStar dayOfWeekKind = iota
	dowPattern
	dowLast
	dowNth
)

// daysOfWeek is the compiled day-of-week field.
type daysOfWeek struct {
	kind    dayOfWeekKind
	pattern uint8 // bit 0 is Sunday
	weekday time.Weekday
	nth     uint8
}

func compileDaysOfWeek(e expr.DayOfWeekExpr) daysOfWeek {
	switch e.Kind() {
	case expr.DayOfWeekLast:
		return daysOfWeek{kind: dowLast, weekday: e.Day().Weekday()}
	case expr.DayOfWeekNth:
		return daysOfWeek{kind: dowNth, weekday: e.Day().Weekday(), nth: uint8(e.Nth())}
	case expr.DayOfWeekList:
		list, _ := e.List()
		return daysOfWeek{kind: dowPattern, pattern: uint8(listBits(list))}
	default:
		return daysOfWeek{}
	}
}

func (n daysOfWeek) contains(d date, weekday time.Weekday) bool {
	switch n.kind {
	case dowPattern:
		return hasBit(n.pattern, int(weekday))
	case dowLast:
		return weekday == n.weekday && d.day+7 > d.daysInMonth()
	case dowNth:
		return weekday == n.weekday && (d.day-1)/7+1 == int(n.nth)
	default:
		return true
	}
}

// next returns the first permitted day of start's month at or after start.
func (n daysOfWeek) next(start date, weekday time.Weekday) (int, bool) {
	var day int
	switch n.kind {
	case dowStar:
		return start.day, true
	case dowPattern:
		if i, ok := nextBit(n.pattern, int(weekday)); ok {
			day = start.day + i - int(weekday)
		} else {
			i, _ = nextBit(n.pattern, 0)
			day = start.day + 7 - int(weekday) + i
		}
	case dowLast:
		day = firstWeekday(n.weekday, start, weekday) + 21
		if day+7 <= start.daysInMonth() {
			day += 7
		}
	case dowNth:
		day = firstWeekday(n.weekday, start, weekday) + 7*(int(n.nth)-1)
	}
	return day, day >= start.day && day <= start.daysInMonth()
}
