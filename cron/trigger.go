package cron

import (
	"fmt"
	"math"
	"time"

	"github.com/reugn/go-cronmask/logger"
)

// maxFireTime is the latest instant representable in Unix nanoseconds.
var maxFireTime = time.Unix(0, math.MaxInt64).UTC()

// Trigger computes the fire times of a cron schedule as Unix nanoseconds,
// for use by schedulers that track time as int64 values.
type Trigger struct {
	expression string
	cron       Cron
}

// NewTrigger returns a new [Trigger] for the given expression.
func NewTrigger(expression string) (*Trigger, error) {
	c, err := Parse(expression)
	if err != nil {
		return nil, err
	}
	return &Trigger{
		expression: expression,
		cron:       c,
	}, nil
}

// NextFireTime returns the first matching minute strictly after the minute
// of prev, in Unix nanoseconds. It returns an error which unwraps to
// [ErrTriggerExpired] when the schedule has no such instant within the range
// of int64 nanoseconds.
func (t *Trigger) NextFireTime(prev int64) (int64, error) {
	next, ok := t.cron.NextAfter(time.Unix(0, prev))
	if !ok || next.After(maxFireTime) {
		logger.Debug("Cron trigger expired", "expression", t.expression, "prev", prev)
		return 0, triggerExpiredError(t.expression, prev)
	}
	return next.UnixNano(), nil
}

// Description returns the description of the Trigger.
func (t *Trigger) Description() string {
	return fmt.Sprintf("CronTrigger::%s::UTC", t.expression)
}

// Cron returns the compiled schedule of the Trigger.
func (t *Trigger) Cron() Cron {
	return t.cron
}
