package csm

import (
	"testing"
	"time"

	"github.com/reugn/go-cronmask/internal/assert"
)

func TestDaysInMonth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, daysInMonth(2000, time.February), 29)
	assert.Equal(t, daysInMonth(2020, time.February), 29)
	assert.Equal(t, daysInMonth(2021, time.February), 28)
	assert.Equal(t, daysInMonth(2100, time.February), 28)
	assert.Equal(t, daysInMonth(1900, time.February), 28)
	assert.Equal(t, daysInMonth(2400, time.February), 29)
	assert.Equal(t, daysInMonth(2021, time.April), 30)
	assert.Equal(t, daysInMonth(2021, time.December), 31)

	for year := 1890; year < 2110; year++ {
		for month := time.January; month <= time.December; month++ {
			expected := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
			assert.Equal(t, daysInMonth(year, month), expected)
		}
	}
}

func TestWeekdayArithmetic(t *testing.T) {
	t.Parallel()
	for ref := time.Date(2019, time.December, 1, 0, 0, 0, 0, time.UTC); ref.Year() < 2021; ref = ref.AddDate(0, 0, 1) {
		d := dateOf(ref)
		refWeekday := ref.Weekday()
		for day := 1; day <= d.daysInMonth(); day++ {
			expected := time.Date(d.year, d.month, day, 0, 0, 0, 0, time.UTC).Weekday()
			assert.Equal(t, weekdayForDay(day, d, refWeekday), expected)
		}
		for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
			first := firstWeekday(weekday, d, refWeekday)
			assert.True(t, first >= 1 && first <= 7, "first %s out of range: %d", weekday, first)
			assert.Equal(t, date{d.year, d.month, first}.weekday(), weekday)
		}
	}
}

func TestClosestWeekday(t *testing.T) {
	t.Parallel()
	assert.Equal(t, closestWeekday(15, 31, time.Wednesday), 15)
	assert.Equal(t, closestWeekday(15, 31, time.Saturday), 14)
	assert.Equal(t, closestWeekday(15, 31, time.Sunday), 16)
	assert.Equal(t, closestWeekday(1, 31, time.Saturday), 3)
	assert.Equal(t, closestWeekday(1, 31, time.Sunday), 2)
	assert.Equal(t, closestWeekday(31, 31, time.Saturday), 30)
	assert.Equal(t, closestWeekday(31, 31, time.Sunday), 29)
	assert.Equal(t, closestWeekday(28, 28, time.Sunday), 26)
}

func TestDateNext(t *testing.T) {
	t.Parallel()
	assert.Equal(t, date{2020, time.February, 28}.next(), date{2020, time.February, 29})
	assert.Equal(t, date{2021, time.February, 28}.next(), date{2021, time.March, 1})
	assert.Equal(t, date{2021, time.December, 31}.next(), date{2022, time.January, 1})
	assert.True(t, date{2021, time.March, 1}.after(date{2021, time.February, 28}), "after")
	assert.True(t, date{2020, time.December, 31}.before(date{2021, time.January, 1}), "before")
	assert.False(t, date{2021, time.January, 1}.before(date{2021, time.January, 1}), "before")
}

func TestMinuteHelpers(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+2", 2*60*60)
	tm := time.Date(2021, time.January, 1, 2, 30, 45, 999, loc)
	assert.Equal(t, Floor(tm), time.Date(2021, time.January, 1, 0, 30, 0, 0, time.UTC))

	next, ok := NextMinute(tm)
	assert.True(t, ok, "next minute expected")
	assert.Equal(t, next, time.Date(2021, time.January, 1, 0, 31, 0, 0, time.UTC))

	prev, ok := PreviousMinute(tm)
	assert.True(t, ok, "previous minute expected")
	assert.Equal(t, prev, time.Date(2021, time.January, 1, 0, 29, 0, 0, time.UTC))

	_, ok = NextMinute(MaxTime)
	assert.False(t, ok, "no minute after MaxTime")
	_, ok = PreviousMinute(MinTime)
	assert.False(t, ok, "no minute before MinTime")
	_, ok = NextMinute(MinTime)
	assert.True(t, ok, "minute after MinTime")
}
