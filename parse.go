package polydate

import (
	"fmt"
	"strings"

	"github.com/nkazumine/polydate/internal/tables"
)

// nameTable and numerals are the core's injected locale collaborators.
// They default to the built-in English tables but can be swapped for a
// different locale without touching any parsing/formatting logic.
var nameTable tables.NameTable = tables.Default
var numerals tables.Numerals = tables.DefaultNumerals

// SetNameTable overrides the weekday/month name table used by ParseDate
// and FormatDate.
func SetNameTable(t tables.NameTable) { nameTable = t }

// SetNumerals overrides the digit/Roman-numeral helper used by ParseDate
// and FormatDate.
func SetNumerals(n tables.Numerals) { numerals = n }

// parseFields accumulates what the tokenizer's directives found in text.
// A field not present is -1, except year (0) and weekday (WeekdayInvalid).
type parseFields struct {
	year, month, day       int
	count                  int
	weekday                Weekday
	dayOfYear              int
	quarter                int
	bizda                  bool
	direction              BizdaDirection
}

func newParseFields() parseFields {
	return parseFields{month: -1, day: -1, count: -1, weekday: WeekdayInvalid, dayOfYear: -1, quarter: -1}
}

// ParseDate parses text per format (spec.md §4.G). A null format falls
// back to the hand-coded standard parser. On failure the returned Value
// is Unknown and consumed is 0.
func ParseDate(text, format string) (Value, int, error) {
	if format == "" {
		return parseStandard(text)
	}

	specs, err := tokenize(format)
	if err != nil {
		return Value{Kind: Unknown}, 0, err
	}

	fields := newParseFields()
	pos := 0
	for _, s := range specs {
		if s.Field == FieldUnknown {
			if !strings.HasPrefix(text[pos:], s.Literal) {
				return Value{Kind: Unknown}, 0, fmt.Errorf("%w: expected %q at %q", ErrInvalidDate, s.Literal, text[pos:])
			}
			pos += len(s.Literal)
			continue
		}
		n, err := consumeField(s, text[pos:], &fields)
		if err != nil {
			return Value{Kind: Unknown}, 0, err
		}
		pos += n
	}

	v, err := guessKind(fields)
	if err != nil {
		return Value{Kind: Unknown}, 0, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return v, pos, nil
}

// consumeField reads one directive's worth of text, recording the result
// into fields, and returns the number of bytes consumed. cur tracks the
// unconsumed remainder as each sub-step advances it.
func consumeField(s Specifier, text string, fields *parseFields) (int, error) {
	cur := text
	readInt := func(lo, hi int) (int, error) {
		if s.Roman {
			v, rest := numerals.ParseRoman(cur)
			if v == maxUintSentinel {
				return 0, fmt.Errorf("%w: invalid roman numeral in %q", ErrInvalidDate, cur)
			}
			cur = rest
			return v, nil
		}
		v, rest := numerals.ParseUint(cur, lo, hi)
		if v == maxUintSentinel {
			return 0, fmt.Errorf("%w: invalid numeric field in %q", ErrInvalidDate, cur)
		}
		cur = rest
		return v, nil
	}
	readYear := func(lo, hi int) (int, error) {
		v, err := readInt(lo, hi)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrOutOfRange, err)
		}
		return v, nil
	}
	trim := func(prefix string) {
		cur = strings.TrimPrefix(cur, prefix)
	}
	finish := func() (int, error) {
		if s.Ordinal {
			ok, rest := numerals.ParseOrdinalSuffix(cur)
			if !ok {
				return 0, fmt.Errorf("%w: expected ordinal suffix in %q", ErrInvalidDate, cur)
			}
			cur = rest
		}
		if s.Bizda {
			if len(cur) == 0 || (cur[0] != 'b' && cur[0] != 'B') {
				return 0, fmt.Errorf("%w: expected bizda suffix in %q", ErrInvalidDate, cur)
			}
			fields.bizda = true
			if cur[0] == 'B' {
				fields.direction = Before
			} else {
				fields.direction = After
			}
			cur = cur[1:]
		}
		return len(text) - len(cur), nil
	}

	switch s.Field {
	case FieldStd:
		y, err := readYear(MinYear, MaxYear)
		if err != nil {
			return 0, err
		}
		trim("-")
		m, err := readInt(1, 12)
		if err != nil {
			return 0, err
		}
		trim("-")
		d, err := readInt(1, 31)
		if err != nil {
			return 0, err
		}
		fields.year, fields.month, fields.day = y, m, d
		return finish()
	case FieldYear:
		if s.Width == Abbrev {
			v, err := readInt(0, 99)
			if err != nil {
				return 0, err
			}
			fields.year = twoDigitYear(v)
			return finish()
		}
		v, err := readYear(MinYear, MaxYear)
		if err != nil {
			return 0, err
		}
		fields.year = v
		return finish()
	case FieldMonth:
		v, err := readInt(1, 12)
		if err != nil {
			return 0, err
		}
		fields.month = v
		return finish()
	case FieldMDay:
		v, err := readInt(1, 31)
		if err != nil {
			return 0, err
		}
		fields.day = v
		return finish()
	case FieldCountWeek:
		v, err := readInt(1, 7)
		if err != nil {
			return 0, err
		}
		fields.weekday = Weekday(v % 7)
		return finish()
	case FieldCountMon:
		v, err := readInt(1, 5)
		if err != nil {
			return 0, err
		}
		fields.count = v
		return finish()
	case FieldCountYear:
		v, err := readInt(1, 366)
		if err != nil {
			return 0, err
		}
		fields.dayOfYear = v
		return finish()
	case FieldQtr:
		v, err := readInt(1, 4)
		if err != nil {
			return 0, err
		}
		fields.quarter = v
		return finish()
	case FieldSQtr:
		trim("Q")
		v, err := readInt(1, 4)
		if err != nil {
			return 0, err
		}
		fields.quarter = v
		return finish()
	case FieldSWeekday:
		wd, rest := nameTable.MatchWeekday(cur)
		if wd < 0 {
			return 0, fmt.Errorf("%w: unrecognized weekday name in %q", ErrInvalidDate, cur)
		}
		fields.weekday = Weekday(wd)
		cur = rest
		return finish()
	case FieldSMonth:
		m, rest := nameTable.MatchMonth(cur)
		if m < 0 {
			return 0, fmt.Errorf("%w: unrecognized month name in %q", ErrInvalidDate, cur)
		}
		fields.month = m
		cur = rest
		return finish()
	case FieldLitPercent:
		if !strings.HasPrefix(cur, "%") {
			return 0, fmt.Errorf("%w: expected %%", ErrInvalidDate)
		}
		return 1, nil
	case FieldLitTab:
		if !strings.HasPrefix(cur, "\t") {
			return 0, fmt.Errorf("%w: expected tab", ErrInvalidDate)
		}
		return 1, nil
	case FieldLitNL:
		if !strings.HasPrefix(cur, "\n") {
			return 0, fmt.Errorf("%w: expected newline", ErrInvalidDate)
		}
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: unsupported field", ErrInvalidDate)
	}
}

const maxUintSentinel = int(^uint(0) >> 1)

// twoDigitYear maps a 2-digit year per the POSIX/ISO-C pivot (spec.md
// §6): 69-99 -> 1900s, 0-68 -> 2000s, with this library's own widened
// pivot of +68 applied the same way.
func twoDigitYear(v int) int {
	if v >= 69 {
		return 1900 + v
	}
	return 2000 + v
}

// guessKind implements spec.md §4.G's guess_kind table.
func guessKind(f parseFields) (Value, error) {
	haveYear := f.year != 0
	switch {
	case haveYear && f.bizda:
		if f.day < 1 {
			return Value{Kind: Unknown}, fmt.Errorf("polydate: bizda date missing business-day number")
		}
		return BizdaOf(f.year, Month(clampMonth(f.month)), f.day, f.direction, Ultimo), nil
	case haveYear && f.count > 0 && !f.bizda:
		if f.weekday == WeekdayInvalid {
			return Value{Kind: Unknown}, fmt.Errorf("polydate: ymcw date missing weekday")
		}
		return YMCWOf(f.year, Month(clampMonth(f.month)), f.count, f.weekday), nil
	case haveYear && (f.month <= 0 || f.count <= 0):
		day := f.day
		if day < 1 {
			if f.dayOfYear > 0 {
				return DaisyOf(0), fmt.Errorf("polydate: day-of-year-only YMD not supported")
			}
			return Value{Kind: Unknown}, fmt.Errorf("polydate: ymd date missing day")
		}
		return YMDOf(f.year, clampMonth(f.month), day), nil
	default:
		return Value{Kind: Unknown}, fmt.Errorf("polydate: could not determine date kind")
	}
}

func clampMonth(m int) int {
	if m < 1 {
		return 1
	}
	return m
}

// parseStandard recognizes "YYYY-MM-DD" optionally followed by "-C" (a
// weekday-count suffix turning the result into a YMCW, with the DD field,
// still read as 1-31, reinterpreted as a weekday number modulo 7, so 1 is
// Monday and 7, 14, 21 or 28 is Sunday), "bN", or "BN" (a business-day
// suffix, direction AFTER/BEFORE).
func parseStandard(text string) (Value, int, error) {
	v, rest, err := readStandardInt(text, MinYear, MaxYear)
	if err != nil {
		return Value{Kind: Unknown}, 0, fmt.Errorf("%w: %v", ErrOutOfRange, err)
	}
	rest = strings.TrimPrefix(rest, "-")
	m, rest, err := readStandardInt(rest, 1, 12)
	if err != nil {
		return Value{Kind: Unknown}, 0, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	rest = strings.TrimPrefix(rest, "-")
	d, rest, err := readStandardInt(rest, 1, 31)
	if err != nil {
		return Value{Kind: Unknown}, 0, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	consumed := len(text) - len(rest)

	switch {
	case strings.HasPrefix(rest, "-"):
		c, rest2, err := readStandardInt(rest[1:], 1, 5)
		if err != nil {
			return Value{Kind: Unknown}, 0, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		consumed = len(text) - len(rest2)
		return YMCWOf(v, Month(m), c, Weekday(d%7)), consumed, nil
	case strings.HasPrefix(rest, "b") || strings.HasPrefix(rest, "B"):
		direction := After
		if rest[0] == 'B' {
			direction = Before
		}
		n, rest2, err := readStandardInt(rest[1:], 1, 23)
		if err != nil {
			return Value{Kind: Unknown}, 0, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		consumed = len(text) - len(rest2)
		return BizdaOf(v, Month(m), n, direction, Ultimo), consumed, nil
	default:
		return YMDOf(v, m, d), consumed, nil
	}
}

func readStandardInt(text string, lo, hi int) (int, string, error) {
	n, rest := numerals.ParseUint(text, lo, hi)
	if n == maxUintSentinel {
		return 0, text, fmt.Errorf("invalid numeric field in %q", text)
	}
	return n, rest, nil
}

// ParseDuration implements dt_strpdur: a signed integer followed by a
// unit letter in {d,D,y,Y,m,M,w,W,b,B,q,Q}.
func ParseDuration(text string) (Value, int, error) {
	neg := false
	rest := text
	if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
	} else if strings.HasPrefix(rest, "+") {
		rest = rest[1:]
	}

	n, rest2 := numerals.ParseUint(rest, 0, maxUintSentinel-1)
	if n == maxUintSentinel || len(rest2) == 0 {
		return Value{Kind: Unknown}, 0, fmt.Errorf("%w: %q", ErrInvalidDuration, text)
	}
	unit := rest2[0]
	consumed := len(text) - len(rest2) + 1

	var v Value
	switch unit {
	case 'd', 'D':
		v = DaisyOf(uint32(n))
		v.IsDuration = true
	case 'y', 'Y':
		v = YMDOf(n, 0, 0)
		v.IsDuration = true
	case 'm', 'M':
		v = YMDOf(0, n, 0)
		v.IsDuration = true
	case 'w', 'W':
		v = DaisyOf(uint32(n * 7))
		v.IsDuration = true
	case 'b', 'B':
		v = BizsiOf(n)
	case 'q', 'Q':
		v = YMDOf(0, n*3, 0)
		v.IsDuration = true
	default:
		return Value{Kind: Unknown}, 0, fmt.Errorf("%w: unknown duration unit %q", ErrInvalidDuration, string(unit))
	}
	if neg {
		v.IsNegative = true
	}
	return v, consumed, nil
}
