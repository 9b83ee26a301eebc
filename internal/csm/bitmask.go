package csm

import (
	"math/bits"

	"github.com/reugn/go-cronmask/expr"
)

type mask interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// nextBit returns the position of the lowest set bit at or above from.
func nextBit[M mask](m M, from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	m = (m >> from) << from
	if m == 0 {
		return 0, false
	}
	return bits.TrailingZeros64(uint64(m)), true
}

// hasBit reports whether bit i is set.
func hasBit[M mask](m M, i int) bool {
	return m&(1<<i) != 0
}

// rangeBits returns the bits start..=end of a field whose valid bits are all.
// A start greater than end wraps around past the highest valid bit.
func rangeBits(start, end uint, all uint64) uint64 {
	shift := 63 - end
	if start <= end {
		run := (all >> start) << start
		return (run << shift) >> shift
	}
	top := (all >> start) << start
	bottom := (all << shift) >> shift
	return top | bottom
}

// stepBits walks from start to end at the given stride and sets one bit per
// step. A start greater than end continues past the highest bit at bit zero,
// keeping the stride across the wrap.
func stepBits(start, end, step, width uint) uint64 {
	var m uint64
	for i, n := start, uint(0); ; n++ {
		if n%step == 0 {
			m |= 1 << i
		}
		if i == end {
			return m
		}
		i = (i + 1) % width
	}
}

// fieldWidth returns the number of values of the field F.
func fieldWidth[F expr.Field]() (lo, width uint) {
	var zero F
	l, h := zero.Bounds()
	return uint(l), uint(h-l) + 1
}

// allBits returns the mask with every value of the field F set.
func allBits[F expr.Field]() uint64 {
	_, width := fieldWidth[F]()
	return 1<<width - 1
}

func orsBits[F expr.Field](e expr.OrsExpr[F]) uint64 {
	lo, width := fieldWidth[F]()
	start, end := uint(e.Start)-lo, uint(e.End)-lo
	switch e.Kind {
	case expr.OrsRange:
		return rangeBits(start, end, allBits[F]())
	case expr.OrsStep:
		return stepBits(start, end, uint(e.Step), width)
	default:
		return 1 << start
	}
}

func listBits[F expr.Field](list expr.Exprs[F]) uint64 {
	var m uint64
	for _, e := range list.Items() {
		m |= orsBits(e)
	}
	return m
}

func fieldBits[F expr.Field](e expr.Expr[F]) uint64 {
	if list, ok := e.List(); ok {
		return listBits(list)
	}
	return allBits[F]()
}
