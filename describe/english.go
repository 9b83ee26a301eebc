// Package describe renders parsed cron expressions as human readable text.
package describe

import (
	"fmt"
	"strings"
	"time"

	"github.com/reugn/go-cronmask/expr"
)

// HourFormat selects the clock used to display times.
type HourFormat uint8

const (
	// Hour12 formats times with a 12 hour clock, e.g. 6:30 PM.
	Hour12 HourFormat = iota
	// Hour24 formats times with a 24 hour clock, e.g. 18:30.
	Hour24
)

// English describes cron expressions in English.
// The zero value uses a 12 hour clock.
type English struct {
	Hour HourFormat
}

var _ expr.Language = English{}

// Describe implements [expr.Language].
func (l English) Describe(e *expr.CronExpr) string {
	var b strings.Builder
	l.writeTime(&b, e)
	l.writeDaysOfMonth(&b, e.DaysOfMonth)
	if e.DaysOfMonth.Kind() != expr.DayOfMonthAll && e.DaysOfWeek.Kind() != expr.DayOfWeekAll {
		b.WriteString(" and")
	}
	l.writeDaysOfWeek(&b, e.DaysOfWeek)
	l.writeMonths(&b, e)
	return b.String()
}

func (l English) writeTime(b *strings.Builder, e *expr.CronExpr) {
	minutes, minutesOK := e.Minutes.List()
	hours, hoursOK := e.Hours.List()
	switch {
	case !minutesOK && !hoursOK:
		b.WriteString("Every minute")
	case !minutesOK:
		b.WriteString("Every minute ")
		b.WriteString(describeAll(hours, l.hour))
	case !hoursOK:
		b.WriteString(minutesPastTheHour(minutes))
	default:
		m, h := minutes.First.Normalize(), hours.First.Normalize()
		if len(minutes.Tail) == 0 && len(hours.Tail) == 0 && m.Kind == expr.OrsOne && h.Kind == expr.OrsOne {
			b.WriteString("At ")
			b.WriteString(l.time(h.Start, uint8(m.Start)))
			return
		}
		fmt.Fprintf(b, "At %s minutes past the hour, ", describeAll(minutes, minute))
		b.WriteString(describeAll(hours, l.hour))
	}
}

func minutesPastTheHour(minutes expr.Exprs[expr.Minute]) string {
	first := minutes.First.Normalize()
	if len(minutes.Tail) > 0 {
		return fmt.Sprintf("At %s minutes past the hour", describeAll(minutes, minute))
	}
	switch first.Kind {
	case expr.OrsRange:
		return fmt.Sprintf("Minutes %d through %d past the hour", first.Start, first.End)
	case expr.OrsStep:
		return fmt.Sprintf("Every %s minute starting from minute %d to minute %d past the hour",
			ordinal(int(first.Step)), first.Start, first.End)
	}
	switch first.Start {
	case 0:
		return "Every hour"
	case 1:
		return "At 1 minute past the hour"
	default:
		return fmt.Sprintf("At %d minutes past the hour", first.Start)
	}
}

func (l English) writeDaysOfMonth(b *strings.Builder, e expr.DayOfMonthExpr) {
	switch e.Kind() {
	case expr.DayOfMonthClosestWeekday:
		fmt.Fprintf(b, " on the closest weekday to the %s", ordinal(int(e.Day())))
	case expr.DayOfMonthLast:
		switch {
		case e.Offset() == 0 && e.Weekday():
			b.WriteString(" on the last weekday")
		case e.Offset() == 0:
			b.WriteString(" on the last day")
		case e.Weekday():
			fmt.Fprintf(b, " on the closest weekday to the %s to last day", ordinal(int(e.Offset())+1))
		default:
			fmt.Fprintf(b, " on the %s to last day", ordinal(int(e.Offset())+1))
		}
	case expr.DayOfMonthList:
		list, _ := e.List()
		b.WriteString(" on the ")
		b.WriteString(describeAll(list, dayOfMonth))
	}
}

func (l English) writeDaysOfWeek(b *strings.Builder, e expr.DayOfWeekExpr) {
	switch e.Kind() {
	case expr.DayOfWeekLast:
		fmt.Fprintf(b, " on the last %s", e.Day().Weekday())
	case expr.DayOfWeekNth:
		fmt.Fprintf(b, " on the %s %s", ordinal(int(e.Nth())), e.Day().Weekday())
	case expr.DayOfWeekList:
		list, _ := e.List()
		b.WriteString(" on ")
		b.WriteString(describeAll(list, dayOfWeek))
	}
}

func (l English) writeMonths(b *strings.Builder, e *expr.CronExpr) {
	domAll := e.DaysOfMonth.Kind() == expr.DayOfMonthAll
	dowKind := e.DaysOfWeek.Kind()
	months, ok := e.Months.List()
	switch {
	case !ok && domAll && (dowKind == expr.DayOfWeekAll || dowKind == expr.DayOfWeekList):
		// every month is implied
	case !ok:
		b.WriteString(" of every month")
	case domAll && dowKind == expr.DayOfWeekAll:
		b.WriteString(" every day in ")
		b.WriteString(describeAll(months, month))
	default:
		b.WriteString(" of ")
		b.WriteString(describeAll(months, month))
	}
}

// describeAll describes every item of the list and joins them.
func describeAll[F expr.Field](list expr.Exprs[F], describe func(expr.OrsExpr[F]) string) string {
	items := list.Items()
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = describe(item.Normalize())
	}
	return join(parts)
}

// join joins "a", "a and b" or "a, b, and c".
func join(parts []string) string {
	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
	}
}

func minute(e expr.OrsExpr[expr.Minute]) string {
	switch e.Kind {
	case expr.OrsRange:
		return fmt.Sprintf("%d through %d", e.Start, e.End)
	case expr.OrsStep:
		return fmt.Sprintf("every %s minute from %d through %d", ordinal(int(e.Step)), e.Start, e.End)
	default:
		return fmt.Sprintf("%d", e.Start)
	}
}

func (l English) hour(e expr.OrsExpr[expr.Hour]) string {
	switch e.Kind {
	case expr.OrsRange:
		return fmt.Sprintf("between %s and %s", l.time(e.Start, 0), l.time(e.End, 59))
	case expr.OrsStep:
		return fmt.Sprintf("every %s hour between %s and %s",
			ordinal(int(e.Step)), l.time(e.Start, 0), l.time(e.End, 59))
	default:
		return fmt.Sprintf("between %s and %s", l.time(e.Start, 0), l.time(e.Start, 59))
	}
}

func dayOfMonth(e expr.OrsExpr[expr.DayOfMonth]) string {
	switch e.Kind {
	case expr.OrsRange:
		return fmt.Sprintf("%s to %s", ordinal(int(e.Start)), ordinal(int(e.End)))
	case expr.OrsStep:
		return fmt.Sprintf("every %s day from the %s to the %s",
			ordinal(int(e.Step)), ordinal(int(e.Start)), ordinal(int(e.End)))
	default:
		return ordinal(int(e.Start))
	}
}

func month(e expr.OrsExpr[expr.Month]) string {
	switch e.Kind {
	case expr.OrsRange:
		return fmt.Sprintf("%s to %s", e.Start.Month(), e.End.Month())
	case expr.OrsStep:
		return fmt.Sprintf("every %s month from %s to %s", ordinal(int(e.Step)), e.Start.Month(), e.End.Month())
	default:
		return e.Start.Month().String()
	}
}

func dayOfWeek(e expr.OrsExpr[expr.DayOfWeek]) string {
	switch e.Kind {
	case expr.OrsRange:
		return fmt.Sprintf("%s through %s", e.Start.Weekday(), e.End.Weekday())
	case expr.OrsStep:
		return fmt.Sprintf("every %s weekday %s through %s", ordinal(int(e.Step)), e.Start.Weekday(), e.End.Weekday())
	default:
		return e.Start.Weekday().String()
	}
}

func (l English) time(hour expr.Hour, minute uint8) string {
	t := time.Date(0, time.January, 1, int(hour), int(minute), 0, 0, time.UTC)
	if l.Hour == Hour24 {
		return t.Format("15:04")
	}
	return t.Format("3:04 PM")
}

// ordinal returns x with its English ordinal suffix: 1st, 2nd, 3rd, 4th,
// 11th, 21st.
func ordinal(x int) string {
	suffix := "th"
	switch x % 100 {
	case 11, 12, 13:
	default:
		switch x % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", x, suffix)
}
