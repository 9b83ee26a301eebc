package csm

import (
	"strconv"
	"strings"
)

// String returns the canonical expression of the schedule. Parsing and
// compiling the result yields an equal Schedule.
func (s Schedule) String() string {
	return strings.Join([]string{
		formatField(s.minutes, 60, 0),
		formatField(uint64(s.hours), 24, 0),
		s.daysOfMonth.String(),
		formatField(uint64(s.months), 12, 1),
		s.daysOfWeek.String(),
	}, " ")
}

func (n daysOfMonth) String() string {
	switch n.kind {
	case domPattern:
		return formatList(uint64(n.pattern), 31, 1)
	case domLast:
		if n.value == 0 {
			return "L"
		}
		return "L-" + strconv.Itoa(int(n.value))
	case domLastWeekday:
		if n.value == 0 {
			return "LW"
		}
		return "L-" + strconv.Itoa(int(n.value)) + "W"
	case domWeekday:
		return strconv.Itoa(int(n.value)) + "W"
	default:
		return "*"
	}
}

func (n daysOfWeek) String() string {
	switch n.kind {
	case dowPattern:
		return formatList(uint64(n.pattern), 7, 1)
	case dowLast:
		return strconv.Itoa(int(n.weekday)+1) + "L"
	case dowNth:
		return strconv.Itoa(int(n.weekday)+1) + "#" + strconv.Itoa(int(n.nth))
	default:
		return "*"
	}
}

// formatField renders a full mask as '*' and any other mask as a list.
func formatField(m uint64, width, lo int) string {
	if m == 1<<width-1 {
		return "*"
	}
	return formatList(m, width, lo)
}

// formatList renders the set bits as comma separated values, joining runs
// of consecutive values into ranges.
func formatList(m uint64, width, lo int) string {
	var b strings.Builder
	for i := 0; i < width; i++ {
		if !hasBit(m, i) {
			continue
		}
		j := i
		for j+1 < width && hasBit(m, j+1) {
			j++
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(i + lo))
		if j > i {
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(j + lo))
		}
		i = j
	}
	return b.String()
}
