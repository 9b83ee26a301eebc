// "csm" is an internal package focused on solving a single task.
// Given a compiled cron expression and a bounded range of instants, what is
// the first instant within the range that fits the expression?
//
// Every field of the expression is compiled into a fixed-width bitmask where
// bit i means "value i is permitted" (minutes and hours are zero-based, days
// and months are shifted down by one). Finding the next permitted value at or
// after v is then a single trailing-zero count of (mask >> v) << v.
//
// The day-of-month and day-of-week fields are special. Their value set
// depends on the month and the year ("L", "15W", "FRI#3"), so they are
// compiled into a kind tag with a payload and resolved against a concrete
// month on demand (day_node.go).
//
// The search (fn_find_forward.go) works from least to most significant
// calendar scope. First, the remaining minutes and hours of the start date
// are scanned. If nothing fits, the remaining days and months of the current
// year are scanned, and then the following years from January 1st. Every
// step is checked against the upper bound, so the search always terminates,
// even for expressions that can never match.
package csm
