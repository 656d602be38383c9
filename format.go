package polydate

import "strings"

// defaultFormatForKind is the alias consulted when format is empty
// (spec.md §4.H: "defaults when format is null: per §4.F aliases keyed on
// the date's kind").
func defaultFormatForKind(k Kind) string {
	switch k {
	case YMCW:
		return "ymcw"
	case DAISY:
		return "daisy"
	case BIZDA:
		return "bizda"
	case BIZSI:
		return "bizsi"
	default:
		return "ymd"
	}
}

// FormatDate writes v into buf per format (the kind's default alias if
// format is empty) and returns the would-be length. If that exceeds
// len(buf), only the first len(buf) bytes are written; callers must
// compare the return value against len(buf) to detect truncation.
func FormatDate(buf []byte, format string, v Value) int {
	if format == "" {
		format = defaultFormatForKind(v.Kind)
	}
	specs, err := tokenize(format)
	if err != nil {
		return 0
	}
	var sb strings.Builder
	for _, s := range specs {
		writeDateSpecifier(&sb, s, v)
	}
	out := sb.String()
	copy(buf, out)
	return len(out)
}

func writeDateSpecifier(sb *strings.Builder, s Specifier, v Value) {
	switch s.Field {
	case FieldUnknown:
		sb.WriteString(s.Literal)
	case FieldStd:
		sb.WriteString(numerals.FormatUint(v.AccYear(), 4))
		sb.WriteByte('-')
		sb.WriteString(numerals.FormatUint(v.AccMonth(), 2))
		sb.WriteByte('-')
		sb.WriteString(numerals.FormatUint(v.AccDayOfMonth(), 2))
	case FieldYear:
		year := v.AccYear()
		width := 4
		if s.Width == Abbrev {
			year %= 100
			width = 2
		}
		writeDateNumeric(sb, s, year, width)
	case FieldMonth:
		writeDateNumeric(sb, s, v.AccMonth(), 2)
	case FieldMDay, FieldCountYear:
		var value, width int
		switch {
		case s.Bizda:
			value = v.AccBusinessDayNumberInMonth(s.Direction, Ultimo)
			width = 2
		case s.Field == FieldMDay:
			value = v.AccDayOfMonth()
			width = 2
		default:
			value = v.AccDayOfYear()
			width = 3
		}
		writeDateNumeric(sb, s, value, width)
	case FieldCountWeek:
		// Weekday numbers run 1-7 with Sunday as 7, the inverse of
		// consumeField's "v%7" mapping back to Weekday(0..6).
		n := int(v.AccWeekday())
		if n == 0 {
			n = 7
		}
		writeDateNumeric(sb, s, n, 2)
	case FieldCountMon:
		writeDateNumeric(sb, s, v.AccCountOfWeekdayInMonth(), 2)
	case FieldQtr:
		writeDateNumeric(sb, s, v.AccQuarter(), 1)
	case FieldSQtr:
		sb.WriteByte('Q')
		sb.WriteString(numerals.FormatUint(v.AccQuarter(), 1))
	case FieldSWeekday:
		writeWeekdayName(sb, s.Width, int(v.AccWeekday()))
	case FieldSMonth:
		writeMonthName(sb, s.Width, v.AccMonth())
	case FieldLitPercent:
		sb.WriteByte('%')
	case FieldLitTab:
		sb.WriteByte('\t')
	case FieldLitNL:
		sb.WriteByte('\n')
	}
}

// writeDateNumeric emits value per s: Roman numerals if requested, else a
// zero-padded decimal of the given width, followed by an ordinal suffix
// and/or a bizda direction letter if the specifier carries them. Roman
// mode is only meaningful on Y/y, m, d and c (spec.md §4.H); tokenize
// accepts the O modifier on any conversion, and other numeric fields get
// Roman output of whatever value was computed (e.g. %Oj on 17 March 2011
// writes LXXVI).
func writeDateNumeric(sb *strings.Builder, s Specifier, value, width int) {
	if s.Roman {
		sb.WriteString(numerals.FormatRoman(value))
	} else {
		sb.WriteString(numerals.FormatUint(value, width))
	}
	if s.Ordinal {
		sb.WriteString(numerals.FormatOrdinalSuffix(value))
	}
	if s.Bizda {
		if s.Direction == Before {
			sb.WriteByte('B')
		} else {
			sb.WriteByte('b')
		}
	}
}

func writeWeekdayName(sb *strings.Builder, width Width, idx int) {
	switch width {
	case Long:
		sb.WriteString(nameTable.LongWeekday(idx))
	case Single:
		sb.WriteString(nameTable.SingleWeekday(idx))
	default:
		sb.WriteString(nameTable.AbbrWeekday(idx))
	}
}

func writeMonthName(sb *strings.Builder, width Width, idx int) {
	switch width {
	case Long:
		sb.WriteString(nameTable.LongMonth(idx))
	case Single:
		sb.WriteString(nameTable.SingleMonth(idx))
	default:
		sb.WriteString(nameTable.AbbrMonth(idx))
	}
}

// FormatDuration is FormatDate's dual for durations: same directive
// grammar, but numeric fields are raw unpadded decimals read straight off
// dur's own components (not calendar accessors, which are only defined
// for positional dates), and a single leading '-' is emitted if dur is
// negative (spec.md §4.H).
func FormatDuration(buf []byte, format string, dur Value) int {
	if format == "" {
		format = defaultFormatForKind(dur.Kind)
	}
	specs, err := tokenize(format)
	if err != nil {
		return 0
	}
	var sb strings.Builder
	if dur.IsNegative {
		sb.WriteByte('-')
	}
	for _, s := range specs {
		writeDurationSpecifier(&sb, s, dur)
	}
	out := sb.String()
	copy(buf, out)
	return len(out)
}

func writeDurationSpecifier(sb *strings.Builder, s Specifier, dur Value) {
	switch s.Field {
	case FieldUnknown:
		sb.WriteString(s.Literal)
	case FieldStd:
		sb.WriteString(numerals.FormatUint(dur.Year, 0))
		sb.WriteByte('-')
		sb.WriteString(numerals.FormatUint(dur.Month, 0))
		sb.WriteByte('-')
		sb.WriteString(numerals.FormatUint(dur.Day, 0))
	case FieldYear:
		writeDurNumeric(sb, s, dur.Year)
	case FieldMonth:
		writeDurNumeric(sb, s, dur.Month)
	case FieldMDay:
		// %d doubles as "day-of-month displacement" (YMD/BIZDA durations)
		// and, via the "daisy" alias, as the whole DAISY day count.
		if dur.Kind == DAISY {
			writeDurNumeric(sb, s, int(dur.Daisy))
		} else {
			writeDurNumeric(sb, s, dur.Day)
		}
		if s.Bizda {
			// The "bizsi" alias's trailing 'b'/'B' is consumed by
			// tokenize as a bizda-direction marker rather than staying
			// literal text; re-emit it as dt_strpdur's unit letter, which
			// is all it means on a duration (durations have no
			// direction/reference of their own).
			if s.Direction == Before {
				sb.WriteByte('B')
			} else {
				sb.WriteByte('b')
			}
		}
	case FieldCountWeek:
		writeDurNumeric(sb, s, int(dur.Weekday))
	case FieldCountMon:
		writeDurNumeric(sb, s, dur.Count)
	case FieldCountYear:
		writeDurNumeric(sb, s, int(dur.Daisy))
	case FieldLitPercent:
		sb.WriteByte('%')
	case FieldLitTab:
		sb.WriteByte('\t')
	case FieldLitNL:
		sb.WriteByte('\n')
	}
	// Name/quarter directives carry no meaning on a raw duration and are
	// silently skipped, same as an out-of-kind accessor returning 0.
}

func writeDurNumeric(sb *strings.Builder, s Specifier, value int) {
	if s.Roman {
		sb.WriteString(numerals.FormatRoman(value))
		return
	}
	sb.WriteString(numerals.FormatUint(value, 0))
}
