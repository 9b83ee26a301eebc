// Package cron provides compiled cron schedules with Quartz-style
// extensions to the day fields.
//
// A schedule is built from a five-field expression:
//
//	<minute> <hour> <day-of-month> <month> <day-of-week>
//
// On top of lists, ranges and steps, the day-of-month field accepts L, L-n,
// LW, L-nW and nW, and the day-of-week field accepts dL and d#n. Ranges whose
// start is greater than their end wrap around the field. When both day
// fields are restricted, an instant matches if either one of them does.
//
// All instants are evaluated in UTC with minute precision.
package cron

import (
	"fmt"
	"time"

	"github.com/reugn/go-cronmask/expr"
	"github.com/reugn/go-cronmask/internal/csm"
	"github.com/reugn/go-cronmask/logger"
)

// The range of instants a schedule can produce.
var (
	MinTime = csm.MinTime
	MaxTime = csm.MaxTime
)

// Cron is a compiled cron schedule.
//
// Cron is a small comparable value, safe to copy and to use concurrently.
// Use [Parse], [MustParse] or [Compile] to obtain one; the zero value
// matches nothing.
type Cron struct {
	schedule csm.Schedule
}

// Parse parses and compiles a cron expression.
// The returned error unwraps to [ErrParse].
func Parse(expression string) (Cron, error) {
	e, err := expr.Parse(expression)
	if err != nil {
		logger.Debug("Failed to parse cron expression", "expression", expression)
		return Cron{}, err
	}
	return Compile(e), nil
}

// MustParse is like [Parse] but panics if the expression cannot be parsed.
func MustParse(expression string) Cron {
	c, err := Parse(expression)
	if err != nil {
		panic(fmt.Sprintf("cron: %v", err))
	}
	return c
}

// Compile compiles a parsed expression.
func Compile(e *expr.CronExpr) Cron {
	return Cron{schedule: csm.Compile(e)}
}

// Any reports whether the schedule matches at least one instant.
// Schedules such as "0 0 30 2 *" never do.
func (c Cron) Any() bool {
	return c.schedule.Any()
}

// Contains reports whether the minute of t matches the schedule.
func (c Cron) Contains(t time.Time) bool {
	return c.schedule.Contains(t)
}

// NextFrom returns the first matching minute at or after the minute of t.
func (c Cron) NextFrom(t time.Time) (time.Time, bool) {
	return c.IterFrom(t).Next()
}

// NextAfter returns the first matching minute strictly after the minute
// of t.
func (c Cron) NextAfter(t time.Time) (time.Time, bool) {
	return c.IterAfter(t).Next()
}

// String returns the canonical expression of the schedule, which parses to
// an equal Cron.
func (c Cron) String() string {
	if c == (Cron{}) {
		return ""
	}
	return c.schedule.String()
}

// MarshalText implements [encoding.TextMarshaler].
func (c Cron) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Empty text yields the zero Cron.
func (c *Cron) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = Cron{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
