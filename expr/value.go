package expr

import "time"

// Minute is a minute of the hour, 0 through 59.
type Minute uint8

// Hour is an hour of the day, 0 through 23.
type Hour uint8

// DayOfMonth is a day of the month, 1 through 31.
type DayOfMonth uint8

// DayOfMonthOffset is the distance from the last day of the month,
// 1 through 30.
type DayOfMonthOffset uint8

// Month is a month of the year, 1 (January) through 12 (December).
type Month uint8

// NthDay is the ordinal of a weekday occurrence within a month, 1 through 5.
type NthDay uint8

// DayOfWeek is a day of the week, 1 (Sunday) through 7 (Saturday).
type DayOfWeek uint8

func (Minute) Bounds() (lo, hi uint8)           { return 0, 59 }
func (Hour) Bounds() (lo, hi uint8)             { return 0, 23 }
func (DayOfMonth) Bounds() (lo, hi uint8)       { return 1, 31 }
func (DayOfMonthOffset) Bounds() (lo, hi uint8) { return 1, 30 }
func (Month) Bounds() (lo, hi uint8)            { return 1, 12 }
func (NthDay) Bounds() (lo, hi uint8)           { return 1, 5 }
func (DayOfWeek) Bounds() (lo, hi uint8)        { return 1, 7 }

// Month returns the calendar month.
func (m Month) Month() time.Month {
	return time.Month(m)
}

// Weekday returns the day of the week.
func (d DayOfWeek) Weekday() time.Weekday {
	return time.Weekday(d - 1)
}

// Value is the set of bounded expression values.
type Value interface {
	Minute | Hour | DayOfMonth | DayOfMonthOffset | Month | NthDay | DayOfWeek
	Bounds() (lo, hi uint8)
}

// Field is the set of values addressed by one of the five schedule fields.
type Field interface {
	Minute | Hour | DayOfMonth | Month | DayOfWeek
	Bounds() (lo, hi uint8)
}

// NewValue validates v against the bounds of V.
func NewValue[V Value](v int) (V, error) {
	var zero V
	lo, hi := zero.Bounds()
	if v < int(lo) || v > int(hi) {
		return zero, valueOutOfRangeError(v, int(lo), int(hi))
	}
	return V(v), nil
}

// MinOf returns the lowest value of the field F.
func MinOf[F Field]() F {
	var zero F
	lo, _ := zero.Bounds()
	return F(lo)
}

// MaxOf returns the highest value of the field F.
func MaxOf[F Field]() F {
	var zero F
	_, hi := zero.Bounds()
	return F(hi)
}

// Step is the stride of a stepped range over the field F.
// Valid strides are 1 through the width of the field minus one.
type Step[F Field] uint8

// NewStep validates v as a stride over the field F.
func NewStep[F Field](v int) (Step[F], error) {
	var zero F
	lo, hi := zero.Bounds()
	if v < 1 || v > int(hi-lo) {
		return 0, valueOutOfRangeError(v, 1, int(hi-lo))
	}
	return Step[F](v), nil
}
