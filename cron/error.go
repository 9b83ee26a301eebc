package cron

import (
	"errors"
	"fmt"

	"github.com/reugn/go-cronmask/expr"
)

// Errors
var (
	ErrParse           = expr.ErrParse
	ErrValueOutOfRange = expr.ErrValueOutOfRange
	ErrTriggerExpired  = errors.New("trigger has expired")
)

// triggerExpiredError returns an error which unwraps to ErrTriggerExpired.
func triggerExpiredError(expression string, prev int64) error {
	return fmt.Errorf("%w: %q after %d", ErrTriggerExpired, expression, prev)
}
