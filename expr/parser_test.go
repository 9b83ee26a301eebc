package expr_test

import (
	"testing"

	"github.com/reugn/go-cronmask/expr"
	"github.com/reugn/go-cronmask/internal/assert"
)

func step[F expr.Field](t *testing.T, v int) expr.Step[F] {
	t.Helper()
	s, err := expr.NewStep[F](v)
	assert.IsNil(t, err)
	return s
}

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		expression string
		expected   expr.CronExpr
	}{
		{
			expression: "* * * * *",
			expected:   expr.CronExpr{},
		},
		{
			expression: "5 0 23 8 *",
			expected: expr.CronExpr{
				Minutes:     expr.ListOf(expr.One[expr.Minute](5)),
				Hours:       expr.ListOf(expr.One[expr.Hour](0)),
				DaysOfMonth: expr.DaysOfMonth(expr.One[expr.DayOfMonth](23)),
				Months:      expr.ListOf(expr.One[expr.Month](8)),
			},
		},
		{
			expression: "0,15,30-45/5 */2 * * *",
			expected: expr.CronExpr{
				Minutes: expr.ListOf(
					expr.One[expr.Minute](0),
					expr.One[expr.Minute](15),
					expr.Stepped[expr.Minute](30, 45, step[expr.Minute](t, 5)),
				),
				Hours: expr.ListOf(expr.Stepped[expr.Hour](0, 23, step[expr.Hour](t, 2))),
			},
		},
		{
			expression: "59-0 23-0 31-1 12-1 *",
			expected: expr.CronExpr{
				Minutes:     expr.ListOf(expr.Range[expr.Minute](59, 0)),
				Hours:       expr.ListOf(expr.Range[expr.Hour](23, 0)),
				DaysOfMonth: expr.DaysOfMonth(expr.Range[expr.DayOfMonth](31, 1)),
				Months:      expr.ListOf(expr.Range[expr.Month](12, 1)),
			},
		},
		{
			expression: "1/3,*/5,* * * * *",
			expected: expr.CronExpr{
				Minutes: expr.ListOf(
					expr.Stepped[expr.Minute](1, 59, step[expr.Minute](t, 3)),
					expr.Stepped[expr.Minute](0, 59, step[expr.Minute](t, 5)),
					expr.One[expr.Minute](0),
				),
			},
		},
		{
			expression: "0 0 */10,15 jan-Mar,Dec sun,SAT",
			expected: expr.CronExpr{
				Minutes: expr.ListOf(expr.One[expr.Minute](0)),
				Hours:   expr.ListOf(expr.One[expr.Hour](0)),
				DaysOfMonth: expr.DaysOfMonth(
					expr.Stepped[expr.DayOfMonth](1, 31, step[expr.DayOfMonth](t, 10)),
					expr.One[expr.DayOfMonth](15),
				),
				Months: expr.ListOf(
					expr.Range[expr.Month](1, 3),
					expr.One[expr.Month](12),
				),
				DaysOfWeek: expr.DaysOfWeek(
					expr.One[expr.DayOfWeek](1),
					expr.One[expr.DayOfWeek](7),
				),
			},
		},
		{
			expression: "0\t0  L * *",
			expected: expr.CronExpr{
				Minutes:     expr.ListOf(expr.One[expr.Minute](0)),
				Hours:       expr.ListOf(expr.One[expr.Hour](0)),
				DaysOfMonth: expr.LastDay(),
			},
		},
		{
			expression: "* * LW * *",
			expected:   expr.CronExpr{DaysOfMonth: expr.LastWeekday()},
		},
		{
			expression: "* * L-3 * *",
			expected:   expr.CronExpr{DaysOfMonth: expr.LastDayOffset(3)},
		},
		{
			expression: "* * L-30W * *",
			expected:   expr.CronExpr{DaysOfMonth: expr.LastWeekdayOffset(30)},
		},
		{
			expression: "* * 15W * *",
			expected:   expr.CronExpr{DaysOfMonth: expr.ClosestWeekday(15)},
		},
		{
			expression: "* * 10/5 * *",
			expected: expr.CronExpr{
				DaysOfMonth: expr.DaysOfMonth(expr.Stepped[expr.DayOfMonth](10, 31, step[expr.DayOfMonth](t, 5))),
			},
		},
		{
			expression: "* * * * L",
			expected:   expr.CronExpr{DaysOfWeek: expr.DaysOfWeek(expr.One[expr.DayOfWeek](7))},
		},
		{
			expression: "* * * * FRIL",
			expected:   expr.CronExpr{DaysOfWeek: expr.LastDayOfWeek(6)},
		},
		{
			expression: "* * * * 2#5",
			expected:   expr.CronExpr{DaysOfWeek: expr.NthDayOfWeek(2, 5)},
		},
		{
			expression: "* * * * FRI-SUN/2,*/3",
			expected: expr.CronExpr{
				DaysOfWeek: expr.DaysOfWeek(
					expr.Stepped[expr.DayOfWeek](6, 1, step[expr.DayOfWeek](t, 2)),
					expr.Stepped[expr.DayOfWeek](1, 7, step[expr.DayOfWeek](t, 3)),
				),
			},
		},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.expression, func(t *testing.T) {
			t.Parallel()
			result, err := expr.Parse(test.expression)
			assert.IsNil(t, err)
			assert.Equal(t, *result, test.expected)
		})
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()
	tests := []string{
		"",
		"* * * *",
		"* * * * * *",
		" * * * * *",
		"* * * * * ",
		"60 * * * *",
		"* 24 * * *",
		"* * 0 * *",
		"* * 32 * *",
		"* * * 0 *",
		"* * * 13 *",
		"* * * * 0",
		"* * * * 8",
		"256 * * * *",
		"*/0 * * * *",
		"*/60 * * * *",
		"* */24 * * *",
		"* * */31 * *",
		"* * * */12 *",
		"* * * * */7",
		"*,* * * * *",
		"*-5 * * * *",
		"1-2-3 * * * *",
		"1/2/3 * * * *",
		"1- * * * *",
		"1, * * * *",
		"* * L-0 * *",
		"* * L-31 * *",
		"* * L- * *",
		"* * 3,L * *",
		"* * L,3 * *",
		"* * 1W,3 * *",
		"* * W * *",
		"* * 0W * *",
		"* * 32W * *",
		"* * lw * *",
		"* * * JANUARY *",
		"* * * X *",
		"* * * * MON#6",
		"* * * * MON#0",
		"* * * * #1",
		"* * * * 1#",
		"* * * * 8L",
		"* * * * 0L",
		"* * * * L,1",
		"* * * * MON#1,2",
		"* * * * fril",
	}

	for _, tt := range tests {
		test := tt
		t.Run(test, func(t *testing.T) {
			t.Parallel()
			_, err := expr.Parse(test)
			assert.ErrorIs(t, err, expr.ErrParse)
		})
	}
}
