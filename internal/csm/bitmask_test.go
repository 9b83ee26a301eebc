package csm

import (
	"testing"

	"github.com/reugn/go-cronmask/expr"
	"github.com/reugn/go-cronmask/internal/assert"
)

func bitsOf(values ...uint) uint64 {
	var m uint64
	for _, v := range values {
		m |= 1 << v
	}
	return m
}

func TestRangeBits(t *testing.T) {
	t.Parallel()
	all := allBits[expr.Minute]()
	assert.Equal(t, rangeBits(0, 59, all), all)
	assert.Equal(t, rangeBits(5, 5, all), bitsOf(5))
	assert.Equal(t, rangeBits(3, 6, all), bitsOf(3, 4, 5, 6))
	assert.Equal(t, rangeBits(58, 1, all), bitsOf(58, 59, 0, 1))
	assert.Equal(t, rangeBits(59, 0, all), bitsOf(59, 0))

	all = allBits[expr.DayOfWeek]()
	assert.Equal(t, rangeBits(5, 0, all), bitsOf(5, 6, 0))
}

func TestStepBits(t *testing.T) {
	t.Parallel()
	assert.Equal(t, stepBits(0, 59, 15, 60), bitsOf(0, 15, 30, 45))
	assert.Equal(t, stepBits(30, 59, 10, 60), bitsOf(30, 40, 50))
	assert.Equal(t, stepBits(20, 4, 2, 24), bitsOf(20, 22, 0, 2, 4))
	assert.Equal(t, stepBits(50, 10, 7, 60), bitsOf(50, 57, 4))
	assert.Equal(t, stepBits(5, 1, 3, 7), bitsOf(5, 1))
}

func TestNextBit(t *testing.T) {
	t.Parallel()
	m := uint32(bitsOf(2, 9, 31))
	next, ok := nextBit(m, 0)
	assert.True(t, ok, "bit expected")
	assert.Equal(t, next, 2)
	next, _ = nextBit(m, 3)
	assert.Equal(t, next, 9)
	next, _ = nextBit(m, 31)
	assert.Equal(t, next, 31)
	_, ok = nextBit(uint8(0b0000_0011), 2)
	assert.False(t, ok, "no bit expected")
}

func TestCompileMasks(t *testing.T) {
	t.Parallel()
	s := compile(t, "* * * * *")
	assert.Equal(t, s.minutes, uint64(0x0FFF_FFFF_FFFF_FFFF))
	assert.Equal(t, s.hours, uint32(0x00FF_FFFF))
	assert.Equal(t, s.months, uint16(0x0FFF))
	assert.Equal(t, s.daysOfMonth, daysOfMonth{})
	assert.Equal(t, s.daysOfWeek, daysOfWeek{})

	s = compile(t, "59-0 23-0 31-1 12-1 FRI-SUN")
	assert.Equal(t, s.minutes, bitsOf(59, 0))
	assert.Equal(t, s.hours, uint32(bitsOf(23, 0)))
	assert.Equal(t, s.daysOfMonth, daysOfMonth{kind: domPattern, pattern: uint32(bitsOf(30, 0))})
	assert.Equal(t, s.months, uint16(bitsOf(11, 0)))
	assert.Equal(t, s.daysOfWeek, daysOfWeek{kind: dowPattern, pattern: uint8(bitsOf(5, 6, 0))})

	s = compile(t, "0 0 1-31 * 1-7")
	assert.Equal(t, s.daysOfMonth.pattern, uint32(0x7FFF_FFFF))
	assert.Equal(t, s.daysOfWeek.pattern, uint8(0x7F))

	s = compile(t, "0 0 */10 */5 */3")
	assert.Equal(t, s.daysOfMonth.pattern, uint32(bitsOf(0, 10, 20, 30)))
	assert.Equal(t, s.months, uint16(bitsOf(0, 5, 10)))
	assert.Equal(t, s.daysOfWeek.pattern, uint8(bitsOf(0, 3, 6)))

	s = compile(t, "0 0 25-5/3 NOV-FEB/2 SAT-MON/2")
	assert.Equal(t, s.daysOfMonth.pattern, uint32(bitsOf(24, 27, 30, 2)))
	assert.Equal(t, s.months, uint16(bitsOf(10, 0)))
	assert.Equal(t, s.daysOfWeek.pattern, uint8(bitsOf(6, 1)))
}

func TestCompileDayKinds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		expression string
		dom        daysOfMonth
		dow        daysOfWeek
	}{
		{"0 0 L * *", daysOfMonth{kind: domLast}, daysOfWeek{}},
		{"0 0 L-3 * *", daysOfMonth{kind: domLast, value: 3}, daysOfWeek{}},
		{"0 0 LW * *", daysOfMonth{kind: domLastWeekday}, daysOfWeek{}},
		{"0 0 L-2W * *", daysOfMonth{kind: domLastWeekday, value: 2}, daysOfWeek{}},
		{"0 0 15W * *", daysOfMonth{kind: domWeekday, value: 15}, daysOfWeek{}},
		{"0 0 * * FRIL", daysOfMonth{}, daysOfWeek{kind: dowLast, weekday: 5}},
		{"0 0 * * 1#3", daysOfMonth{}, daysOfWeek{kind: dowNth, weekday: 0, nth: 3}},
		{"0 0 * * L", daysOfMonth{}, daysOfWeek{kind: dowPattern, pattern: 1 << 6}},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.expression, func(t *testing.T) {
			t.Parallel()
			s := compile(t, test.expression)
			assert.Equal(t, s.daysOfMonth, test.dom)
			assert.Equal(t, s.daysOfWeek, test.dow)
		})
	}
}
