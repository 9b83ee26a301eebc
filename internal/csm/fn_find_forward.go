package csm

import "time"

type result int

const (
	found result = iota
	notFound
	outOfBound
)

// FindNext returns the first instant in [start, end] matching the schedule.
// Both bounds must be UTC instants floored to the minute.
func (s Schedule) FindNext(start, end time.Time) (time.Time, bool) {
	if start.After(end) {
		return time.Time{}, false
	}
	next, r := s.findNext(start, end)
	return next, r == found
}

func (s Schedule) findNext(start, end time.Time) (time.Time, result) {
	startDate, endDate := dateOf(start), dateOf(end)
	if s.containsDate(startDate) {
		c, r := s.findNextTime(clockOf(start), timeBound(startDate, end))
		switch r {
		case found:
			return startDate.at(c), found
		case outOfBound:
			return time.Time{}, outOfBound
		}
	}

	day := startDate.next()
	if day.after(endDate) {
		return time.Time{}, outOfBound
	}
	for {
		d, r := s.findNextDate(day, endDate)
		switch r {
		case found:
			c, r := s.findNextTime(clock{}, timeBound(d, end))
			if r != found {
				return time.Time{}, outOfBound
			}
			return d.at(c), found
		case outOfBound:
			return time.Time{}, outOfBound
		}

		// nothing left in this year
		day = date{day.year + 1, time.January, 1}
		if day.after(endDate) {
			return time.Time{}, outOfBound
		}
	}
}

// timeBound returns the time of end if it falls on d.
func timeBound(d date, end time.Time) *clock {
	if dateOf(end) != d {
		return nil
	}
	c := clockOf(end)
	return &c
}

// findNextTime returns the first permitted time of day at or after from.
func (s Schedule) findNextTime(from clock, bound *clock) (clock, result) {
	if hasBit(s.hours, from.hour) {
		if minute, ok := nextBit(s.minutes, from.minute); ok {
			return checkClock(clock{from.hour, minute}, bound)
		}
	}
	if from.hour < 23 {
		if hour, ok := nextBit(s.hours, from.hour+1); ok {
			minute, _ := nextBit(s.minutes, 0)
			return checkClock(clock{hour, minute}, bound)
		}
	}
	return clock{}, notFound
}

func checkClock(c clock, bound *clock) (clock, result) {
	if bound != nil && c.after(*bound) {
		return clock{}, outOfBound
	}
	return c, found
}

// findNextDate returns the first permitted date of start's year at or after
// start.
func (s Schedule) findNextDate(start, end date) (date, result) {
	if s.hasMonth(start.month) {
		if d, ok := s.findNextDay(start); ok {
			return checkDate(d, end)
		}
	}
	for {
		if start.month == time.December {
			return date{}, notFound
		}
		start = date{start.year, start.month + 1, 1}
		if start.after(end) {
			return date{}, outOfBound
		}
		month, ok := s.findNextMonth(start.month)
		if !ok {
			return date{}, notFound
		}
		start.month = month
		if start.after(end) {
			return date{}, outOfBound
		}
		if d, ok := s.findNextDay(start); ok {
			return checkDate(d, end)
		}
	}
}

func checkDate(d, end date) (date, result) {
	if d.after(end) {
		return date{}, outOfBound
	}
	return d, found
}

// findNextMonth returns the first permitted month at or after month.
func (s Schedule) findNextMonth(month time.Month) (time.Month, bool) {
	i, ok := nextBit(s.months, int(month)-1)
	return time.Month(i + 1), ok
}

// findNextDay returns the first permitted day of start's month at or after
// start.
func (s Schedule) findNextDay(start date) (date, bool) {
	domStarred := s.daysOfMonth.kind == domStar
	dowStarred := s.daysOfWeek.kind == dowStar
	if domStarred && dowStarred {
		return start, true
	}

	weekday := start.weekday()
	var (
		day int
		ok  bool
	)
	switch {
	case dowStarred:
		day, ok = s.daysOfMonth.next(start, weekday)
	case domStarred:
		day, ok = s.daysOfWeek.next(start, weekday)
	default:
		domDay, domOK := s.daysOfMonth.next(start, weekday)
		dowDay, dowOK := s.daysOfWeek.next(start, weekday)
		switch {
		case domOK && dowOK:
			day, ok = min(domDay, dowDay), true
		case domOK:
			day, ok = domDay, true
		default:
			day, ok = dowDay, dowOK
		}
	}
	if !ok {
		return date{}, false
	}
	return date{start.year, start.month, day}, true
}
