package expr

var (
	monthNames = []string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}
	dayNames   = []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}
)

// Parse parses a five-field cron expression.
// The parser stops at the first malformed or out of range token and returns
// an error which unwraps to ErrParse.
//
// Grammar:
//
//	cron  = minute WS hour WS dom WS month WS dow
//	dom   = "*" ["/" step] | "L" ["-" N] ["W"] | N "W" | list
//	dow   = "*" ["/" step] | "L" | D "L" | D "#" K | list
//	list  = ors *("," ors)
//	ors   = atom ["-" atom] ["/" step]
//	atom  = number | name | "*"
func Parse(expression string) (*CronExpr, error) {
	p := &parser{input: expression}
	cronExpr, ok := p.cronExpr()
	if !ok {
		return nil, parseError(expression)
	}
	return cronExpr, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) cronExpr() (*CronExpr, bool) {
	var (
		e  CronExpr
		ok bool
	)
	if e.Minutes, ok = parseExpr(p, numberAtom[Minute]); !ok || !p.space() {
		return nil, false
	}
	if e.Hours, ok = parseExpr(p, numberAtom[Hour]); !ok || !p.space() {
		return nil, false
	}
	if e.DaysOfMonth, ok = p.dayOfMonthExpr(); !ok || !p.space() {
		return nil, false
	}
	if e.Months, ok = parseExpr(p, monthAtom); !ok || !p.space() {
		return nil, false
	}
	if e.DaysOfWeek, ok = p.dayOfWeekExpr(); !ok || !p.eof() {
		return nil, false
	}
	return &e, true
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

// accept consumes c if it is the next byte of the input.
func (p *parser) accept(c byte) bool {
	if !p.eof() && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

// space consumes one or more spaces or tabs.
func (p *parser) space() bool {
	start := p.pos
	for !p.eof() && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
	return p.pos > start
}

// number consumes a run of decimal digits that fits into a byte.
func (p *parser) number() (int, bool) {
	start, n := p.pos, 0
	for !p.eof() && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		n = n*10 + int(p.input[p.pos]-'0')
		if n > 255 {
			return 0, false
		}
		p.pos++
	}
	return n, p.pos > start
}

// name consumes a case-insensitive name from the list and returns its index.
func (p *parser) name(names []string) (int, bool) {
	for i, name := range names {
		end := p.pos + len(name)
		if end > len(p.input) {
			continue
		}
		if equalFold(p.input[p.pos:end], name) {
			p.pos = end
			return i, true
		}
	}
	return 0, false
}

// equalFold compares an ASCII token with an upper case name.
func equalFold(token, name string) bool {
	for i := 0; i < len(name); i++ {
		c := token[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c != name[i] {
			return false
		}
	}
	return true
}

func numberAtom[V Value](p *parser) (V, bool) {
	n, ok := p.number()
	if !ok {
		return 0, false
	}
	v, err := NewValue[V](n)
	return v, err == nil
}

func monthAtom(p *parser) (Month, bool) {
	if i, ok := p.name(monthNames); ok {
		return Month(i + 1), true
	}
	return numberAtom[Month](p)
}

func dayOfWeekAtom(p *parser) (DayOfWeek, bool) {
	if i, ok := p.name(dayNames); ok {
		return DayOfWeek(i + 1), true
	}
	return numberAtom[DayOfWeek](p)
}

func parseStep[F Field](p *parser) (Step[F], bool) {
	n, ok := p.number()
	if !ok {
		return 0, false
	}
	step, err := NewStep[F](n)
	return step, err == nil
}

// parseExpr parses a generic field: '*', '*/N' or a list.
func parseExpr[F Field](p *parser, atom func(*parser) (F, bool)) (Expr[F], bool) {
	if p.accept('*') {
		if !p.accept('/') {
			return AllOf[F](), true
		}
		step, ok := parseStep[F](p)
		if !ok {
			return Expr[F]{}, false
		}
		tail, ok := parseTail(p, atom)
		return ListOf(Stepped(MinOf[F](), MaxOf[F](), step), tail...), ok
	}
	first, ok := parseOrs(p, atom)
	if !ok {
		return Expr[F]{}, false
	}
	tail, ok := parseTail(p, atom)
	return ListOf(first, tail...), ok
}

// parseOrs parses a single list element. Inside a list '*' stands for the
// minimum of the field.
func parseOrs[F Field](p *parser, atom func(*parser) (F, bool)) (OrsExpr[F], bool) {
	var (
		start F
		ok    bool
	)
	if p.accept('*') {
		start, ok = MinOf[F](), true
	} else {
		start, ok = atom(p)
	}
	if !ok {
		return OrsExpr[F]{}, false
	}
	return parseOrsFrom(p, start, atom)
}

// parseOrsFrom parses the optional range and step following start.
func parseOrsFrom[F Field](p *parser, start F, atom func(*parser) (F, bool)) (OrsExpr[F], bool) {
	switch {
	case p.accept('/'):
		step, ok := parseStep[F](p)
		return Stepped(start, MaxOf[F](), step), ok
	case p.accept('-'):
		end, ok := atom(p)
		if !ok {
			return OrsExpr[F]{}, false
		}
		if !p.accept('/') {
			return Range(start, end), true
		}
		step, ok := parseStep[F](p)
		return Stepped(start, end, step), ok
	default:
		return One(start), true
	}
}

// parseTail parses the comma separated list elements after the first one.
func parseTail[F Field](p *parser, atom func(*parser) (F, bool)) ([]OrsExpr[F], bool) {
	var tail []OrsExpr[F]
	for p.accept(',') {
		e, ok := parseOrs(p, atom)
		if !ok {
			return nil, false
		}
		tail = append(tail, e)
	}
	return tail, true
}

func (p *parser) dayOfMonthExpr() (DayOfMonthExpr, bool) {
	atom := numberAtom[DayOfMonth]
	switch {
	case p.accept('*'):
		if !p.accept('/') {
			return AllDaysOfMonth(), true
		}
		step, ok := parseStep[DayOfMonth](p)
		if !ok {
			return DayOfMonthExpr{}, false
		}
		tail, ok := parseTail(p, atom)
		return DaysOfMonth(Stepped(MinOf[DayOfMonth](), MaxOf[DayOfMonth](), step), tail...), ok

	case p.accept('L'):
		if p.accept('W') {
			return LastWeekday(), true
		}
		if !p.accept('-') {
			return LastDay(), true
		}
		offset, ok := numberAtom[DayOfMonthOffset](p)
		if !ok {
			return DayOfMonthExpr{}, false
		}
		if p.accept('W') {
			return LastWeekdayOffset(offset), true
		}
		return LastDayOffset(offset), true
	}

	day, ok := atom(p)
	if !ok {
		return DayOfMonthExpr{}, false
	}
	if p.accept('W') {
		return ClosestWeekday(day), true
	}
	first, ok := parseOrsFrom(p, day, atom)
	if !ok {
		return DayOfMonthExpr{}, false
	}
	tail, ok := parseTail(p, atom)
	return DaysOfMonth(first, tail...), ok
}

func (p *parser) dayOfWeekExpr() (DayOfWeekExpr, bool) {
	switch {
	case p.accept('*'):
		if !p.accept('/') {
			return AllDaysOfWeek(), true
		}
		step, ok := parseStep[DayOfWeek](p)
		if !ok {
			return DayOfWeekExpr{}, false
		}
		tail, ok := parseTail(p, dayOfWeekAtom)
		return DaysOfWeek(Stepped(MinOf[DayOfWeek](), MaxOf[DayOfWeek](), step), tail...), ok

	case p.accept('L'):
		// Quartz convention: a bare L is Saturday
		return DaysOfWeek(One(MaxOf[DayOfWeek]())), true
	}

	day, ok := dayOfWeekAtom(p)
	if !ok {
		return DayOfWeekExpr{}, false
	}
	switch {
	case p.accept('L'):
		return LastDayOfWeek(day), true
	case p.accept('#'):
		nth, ok := numberAtom[NthDay](p)
		return NthDayOfWeek(day, nth), ok
	}
	first, ok := parseOrsFrom(p, day, dayOfWeekAtom)
	if !ok {
		return DayOfWeekExpr{}, false
	}
	tail, ok := parseTail(p, dayOfWeekAtom)
	return DaysOfWeek(first, tail...), ok
}
