package expr

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrParse           = errors.New("parse cron expression")
	ErrValueOutOfRange = errors.New("the expression value is out of range of valid values")
)

// parseError returns a parse error for the given expression, which unwraps
// to ErrParse.
func parseError(expression string) error {
	return fmt.Errorf("%w: %q", ErrParse, expression)
}

// valueOutOfRangeError returns an error which unwraps to ErrValueOutOfRange.
func valueOutOfRangeError(value, lo, hi int) error {
	return fmt.Errorf("%w: %d not in [%d, %d]", ErrValueOutOfRange, value, lo, hi)
}
