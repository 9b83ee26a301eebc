// Package expr implements the parsed form of a five-field cron expression
// and its grammar.
//
//	┌───────────── minute (0-59)
//	│ ┌───────────── hour (0-23)
//	│ │ ┌───────────── day of the month (1-31, L, L-N, LW, L-NW, NW)
//	│ │ │ ┌───────────── month (1-12 or JAN-DEC)
//	│ │ │ │ ┌───────────── day of the week (1-7 or SUN-SAT, DL, D#N)
//	│ │ │ │ │
//	* * * * *
//
// Every field accepts '*', '*/N', comma separated lists of values, ranges
// and stepped ranges. A range whose start is greater than its end wraps
// around the field, i.e. "FRI-SUN" covers Friday, Saturday and Sunday.
//
// Note that a bare 'L' in the day-of-week field means Saturday (7), not the
// last day of the week. Use "DL" for the last occurrence of weekday D in a
// month.
package expr

// OrsKind is the shape of an OrsExpr.
type OrsKind uint8

const (
	OrsOne OrsKind = iota
	OrsRange
	OrsStep
)

// OrsExpr is one value, an inclusive range or a stepped range of a field.
// A range or step with Start greater than End wraps past the field maximum
// back to its minimum.
type OrsExpr[F Field] struct {
	Kind  OrsKind
	Start F
	End   F
	Step  Step[F]
}

// One returns a single value expression.
func One[F Field](value F) OrsExpr[F] {
	return OrsExpr[F]{Kind: OrsOne, Start: value, End: value}
}

// Range returns an inclusive range expression.
func Range[F Field](start, end F) OrsExpr[F] {
	return OrsExpr[F]{Kind: OrsRange, Start: start, End: end}
}

// Stepped returns a stepped range expression.
func Stepped[F Field](start, end F, step Step[F]) OrsExpr[F] {
	return OrsExpr[F]{Kind: OrsStep, Start: start, End: end, Step: step}
}

// Normalize collapses a range or step with equal endpoints into a single
// value and a step of 1 into a plain range.
func (e OrsExpr[F]) Normalize() OrsExpr[F] {
	switch e.Kind {
	case OrsRange:
		if e.Start == e.End {
			return One(e.Start)
		}
	case OrsStep:
		if e.Start == e.End {
			return One(e.Start)
		}
		if e.Step == 1 {
			return Range(e.Start, e.End)
		}
	}
	return e
}

// Exprs is a non-empty ordered list of OrsExpr.
type Exprs[F Field] struct {
	First OrsExpr[F]
	Tail  []OrsExpr[F]
}

// Items returns the expressions of the list in order.
func (e Exprs[F]) Items() []OrsExpr[F] {
	items := make([]OrsExpr[F], 0, len(e.Tail)+1)
	items = append(items, e.First)
	return append(items, e.Tail...)
}

// Expr is a field expression, either '*' or a list of expressions.
// The zero value is '*'.
type Expr[F Field] struct {
	many  bool
	exprs Exprs[F]
}

// AllOf returns the '*' expression.
func AllOf[F Field]() Expr[F] {
	return Expr[F]{}
}

// ListOf returns a list expression.
func ListOf[F Field](first OrsExpr[F], tail ...OrsExpr[F]) Expr[F] {
	return Expr[F]{many: true, exprs: Exprs[F]{First: first, Tail: tail}}
}

// IsAll reports whether the expression is '*'.
func (e Expr[F]) IsAll() bool {
	return !e.many
}

// List returns the list of expressions, if any.
func (e Expr[F]) List() (Exprs[F], bool) {
	return e.exprs, e.many
}

// DayOfMonthKind is the kind of a DayOfMonthExpr.
type DayOfMonthKind uint8

const (
	DayOfMonthAll DayOfMonthKind = iota
	DayOfMonthLast
	DayOfMonthClosestWeekday
	DayOfMonthList
)

// DayOfMonthExpr is the day-of-month field expression.
// The zero value is '*'.
type DayOfMonthExpr struct {
	kind    DayOfMonthKind
	offset  DayOfMonthOffset
	weekday bool
	day     DayOfMonth
	exprs   Exprs[DayOfMonth]
}

// AllDaysOfMonth returns the '*' day-of-month expression.
func AllDaysOfMonth() DayOfMonthExpr {
	return DayOfMonthExpr{}
}

// LastDay returns the "L" expression.
func LastDay() DayOfMonthExpr {
	return DayOfMonthExpr{kind: DayOfMonthLast}
}

// LastDayOffset returns the "L-N" expression.
func LastDayOffset(offset DayOfMonthOffset) DayOfMonthExpr {
	return DayOfMonthExpr{kind: DayOfMonthLast, offset: offset}
}

// LastWeekday returns the "LW" expression.
func LastWeekday() DayOfMonthExpr {
	return DayOfMonthExpr{kind: DayOfMonthLast, weekday: true}
}

// LastWeekdayOffset returns the "L-NW" expression.
func LastWeekdayOffset(offset DayOfMonthOffset) DayOfMonthExpr {
	return DayOfMonthExpr{kind: DayOfMonthLast, offset: offset, weekday: true}
}

// ClosestWeekday returns the "NW" expression.
func ClosestWeekday(day DayOfMonth) DayOfMonthExpr {
	return DayOfMonthExpr{kind: DayOfMonthClosestWeekday, day: day}
}

// DaysOfMonth returns a list expression.
func DaysOfMonth(first OrsExpr[DayOfMonth], tail ...OrsExpr[DayOfMonth]) DayOfMonthExpr {
	return DayOfMonthExpr{kind: DayOfMonthList, exprs: Exprs[DayOfMonth]{First: first, Tail: tail}}
}

// Kind returns the kind of the expression.
func (e DayOfMonthExpr) Kind() DayOfMonthKind { return e.kind }

// Offset returns the distance from the last day of the month of a
// DayOfMonthLast expression. It is zero for the last day itself.
func (e DayOfMonthExpr) Offset() DayOfMonthOffset { return e.offset }

// Weekday reports whether a DayOfMonthLast expression targets the closest
// weekday.
func (e DayOfMonthExpr) Weekday() bool { return e.weekday }

// Day returns the target day of a DayOfMonthClosestWeekday expression.
func (e DayOfMonthExpr) Day() DayOfMonth { return e.day }

// List returns the list of expressions, if any.
func (e DayOfMonthExpr) List() (Exprs[DayOfMonth], bool) {
	return e.exprs, e.kind == DayOfMonthList
}

// DayOfWeekKind is the kind of a DayOfWeekExpr.
type DayOfWeekKind uint8

const (
	DayOfWeekAll DayOfWeekKind = iota
	DayOfWeekLast
	DayOfWeekNth
	DayOfWeekList
)

// DayOfWeekExpr is the day-of-week field expression.
// The zero value is '*'.
type DayOfWeekExpr struct {
	kind  DayOfWeekKind
	day   DayOfWeek
	nth   NthDay
	exprs Exprs[DayOfWeek]
}

// AllDaysOfWeek returns the '*' day-of-week expression.
func AllDaysOfWeek() DayOfWeekExpr {
	return DayOfWeekExpr{}
}

// LastDayOfWeek returns the "DL" expression.
func LastDayOfWeek(day DayOfWeek) DayOfWeekExpr {
	return DayOfWeekExpr{kind: DayOfWeekLast, day: day}
}

// NthDayOfWeek returns the "D#N" expression.
func NthDayOfWeek(day DayOfWeek, nth NthDay) DayOfWeekExpr {
	return DayOfWeekExpr{kind: DayOfWeekNth, day: day, nth: nth}
}

// DaysOfWeek returns a list expression.
func DaysOfWeek(first OrsExpr[DayOfWeek], tail ...OrsExpr[DayOfWeek]) DayOfWeekExpr {
	return DayOfWeekExpr{kind: DayOfWeekList, exprs: Exprs[DayOfWeek]{First: first, Tail: tail}}
}

// Kind returns the kind of the expression.
func (e DayOfWeekExpr) Kind() DayOfWeekKind { return e.kind }

// Day returns the weekday of a DayOfWeekLast or DayOfWeekNth expression.
func (e DayOfWeekExpr) Day() DayOfWeek { return e.day }

// Nth returns the ordinal of a DayOfWeekNth expression.
func (e DayOfWeekExpr) Nth() NthDay { return e.nth }

// List returns the list of expressions, if any.
func (e DayOfWeekExpr) List() (Exprs[DayOfWeek], bool) {
	return e.exprs, e.kind == DayOfWeekList
}

// CronExpr is a parsed cron expression.
type CronExpr struct {
	Minutes     Expr[Minute]
	Hours       Expr[Hour]
	DaysOfMonth DayOfMonthExpr
	Months      Expr[Month]
	DaysOfWeek  DayOfWeekExpr
}

// Language formats a parsed expression into a human readable description.
type Language interface {
	Describe(e *CronExpr) string
}

// Describe returns the description of the expression in the given language.
func (e *CronExpr) Describe(lang Language) string {
	return lang.Describe(e)
}
