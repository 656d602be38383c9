package polydate

import "fmt"

// Field identifies which value a specifier reads or writes. The set is
// closed: these are the only directives the tokenizer recognizes.
type Field int

const (
	FieldUnknown Field = iota
	FieldStd           // %F: composite ISO date
	FieldYear          // %Y/%y
	FieldMonth         // %m
	FieldMDay          // %d: day-of-month, or business-day with the bizda suffix
	FieldCountWeek     // %w: weekday number
	FieldCountMon      // %c: weekday-count-in-month
	FieldCountYear     // %C/%j: day-of-year
	FieldQtr           // %q: quarter number
	FieldSWeekday      // %A/%a: weekday name
	FieldSMonth        // %B/%b/%h: month name
	FieldSQtr          // %Q: quarter, "Q"-prefixed
	FieldLitPercent    // %%
	FieldLitTab        // %t
	FieldLitNL         // %n
)

// Width selects which form of a name or number a specifier reads/writes.
// Single is an extension beyond the literal grammar: it
// selects the one-character weekday/month lookup tables, via the `S`
// modifier, so tables.NameTable's Single* methods have a way to be reached.
type Width int

const (
	Normal Width = iota
	Abbrev
	Long
	Single
)

// Specifier is one parsed directive from a format string, or a literal
// text run (Field == FieldUnknown, Literal non-empty).
type Specifier struct {
	Field     Field
	Width     Width
	Roman     bool
	Ordinal   bool
	Bizda     bool
	Direction BizdaDirection
	Literal   string // verbatim text for non-directive runs
}

// aliases are the high-level format names resolved before tokenization.
var aliases = map[string]string{
	"ymd":   "%F",
	"ymcw":  "%Y-%m-%c-%w",
	"daisy": "%d",
	"bizsi": "%db",
	"bizda": "%Y-%m-%db",
}

// resolveAlias returns the expansion of a high-level format name, or
// format unchanged if it is not an alias.
func resolveAlias(format string) string {
	if exp, ok := aliases[format]; ok {
		return exp
	}
	return format
}

// tokenize reads a format string into a stream of directives and literal
// text runs, per spec.md §4.F. A directive is '%' followed by zero or
// more modifiers and one conversion letter.
func tokenize(format string) ([]Specifier, error) {
	format = resolveAlias(format)

	var out []Specifier
	var lit []rune
	flush := func() {
		if len(lit) > 0 {
			out = append(out, Specifier{Field: FieldUnknown, Literal: string(lit)})
			lit = nil
		}
	}

	r := []rune(format)
	i := 0
	for i < len(r) {
		if r[i] != '%' {
			lit = append(lit, r[i])
			i++
			continue
		}
		flush()

		j := i + 1
		var width Width
		var roman bool
		for j < len(r) {
			switch r[j] {
			case '_':
				width = Abbrev
				j++
				continue
			case 'O':
				roman = true
				j++
				continue
			case 'S':
				width = Single
				j++
				continue
			}
			break
		}
		if j >= len(r) {
			return nil, fmt.Errorf("polydate: truncated specifier at %q", string(r[i:]))
		}

		main := r[j]
		j++

		spec, err := specifierFor(main, width)
		if err != nil {
			return nil, err
		}
		spec.Roman = roman

		if spec.Field != FieldUnknown && spec.Field != FieldStd &&
			spec.Field != FieldLitPercent && spec.Field != FieldLitTab && spec.Field != FieldLitNL &&
			spec.Field != FieldSWeekday && spec.Field != FieldSMonth && spec.Field != FieldSQtr {
			if j+1 < len(r) && r[j] == 't' && r[j+1] == 'h' {
				spec.Ordinal = true
				j += 2
			}
		}

		if spec.Field == FieldMDay || spec.Field == FieldCountYear {
			if j < len(r) && (r[j] == 'b' || r[j] == 'B') {
				spec.Bizda = true
				if r[j] == 'B' {
					spec.Direction = Before
				} else {
					spec.Direction = After
				}
				j++
			}
		}

		out = append(out, spec)
		i = j
	}
	flush()

	return out, nil
}

// specifierFor maps one conversion letter (with its accumulated width) to
// a Specifier. Upper-case name letters default to Long, lower-case to
// Abbrev; an explicit width modifier (Abbrev or Single) overrides that.
func specifierFor(main rune, width Width) (Specifier, error) {
	switch main {
	case 'F':
		return Specifier{Field: FieldStd}, nil
	case 'Y':
		return Specifier{Field: FieldYear, Width: Normal}, nil
	case 'y':
		return Specifier{Field: FieldYear, Width: Abbrev}, nil
	case 'm':
		return Specifier{Field: FieldMonth, Width: Normal}, nil
	case 'd':
		return Specifier{Field: FieldMDay, Width: Normal}, nil
	case 'w':
		return Specifier{Field: FieldCountWeek, Width: Normal}, nil
	case 'c':
		return Specifier{Field: FieldCountMon, Width: Normal}, nil
	case 'C', 'j':
		return Specifier{Field: FieldCountYear, Width: Normal}, nil
	case 'q':
		return Specifier{Field: FieldQtr, Width: Normal}, nil
	case 'Q':
		return Specifier{Field: FieldSQtr, Width: Normal}, nil
	case 'A':
		return Specifier{Field: FieldSWeekday, Width: widthOr(width, Long)}, nil
	case 'a':
		return Specifier{Field: FieldSWeekday, Width: widthOr(width, Abbrev)}, nil
	case 'B', 'h':
		return Specifier{Field: FieldSMonth, Width: widthOr(width, Long)}, nil
	case 'b':
		return Specifier{Field: FieldSMonth, Width: widthOr(width, Abbrev)}, nil
	case '%':
		return Specifier{Field: FieldLitPercent}, nil
	case 't':
		return Specifier{Field: FieldLitTab}, nil
	case 'n':
		return Specifier{Field: FieldLitNL}, nil
	default:
		return Specifier{}, fmt.Errorf("polydate: unsupported specifier '%%%c'", main)
	}
}

// widthOr returns explicit if a modifier set a non-Normal width, else the
// letter's own default.
func widthOr(explicit, deflt Width) Width {
	if explicit != Normal {
		return explicit
	}
	return deflt
}
