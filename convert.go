package polydate

// epochYear is the DAISY epoch year: Jan 0 of epochYear (i.e. 31 December
// of the preceding year) is DAISY day 0, and is a Sunday. epochYear is
// chosen to be MinYear itself, and satisfies epochYear mod 4 == 1, so
// DAISY's weekday identity (weekday(d) = d mod 7) and the jan00 closed
// form both hold for the entire supported range without any century
// correction (the only century year in range, 2000, is a leap year like
// any other multiple of 4).
const epochYear = MinYear

// jan00 returns the DAISY index of 31 December of the year before y
// (i.e. "day 0" of year y).
func jan00(y int) int {
	diff := y - epochYear
	return diff*365 + diff/4
}

func ymdToDaisy(y, m, day int) uint32 {
	doy := cumDays[m-1] + day
	if isLeap(y) && m > 2 {
		doy++
	}
	return uint32(jan00(y) + doy)
}

// daisyToYMD converts a DAISY day index back to year/month/day using the
// algorithm of spec.md §4.C: guess the year from the closed-form division,
// then walk downward until jan00(y) is below d, then scan the
// cumulative month table, applying the leap-day fix-up for March onward.
func daisyToYMD(d uint32) (year, month, day int) {
	dd := int(d)

	year = dd/365 + 1 + epochYear
	for jan00(year) >= dd {
		year--
	}

	doy := dd - jan00(year)
	leap := isLeap(year)

	month = 12
	for m := 1; m <= 12; m++ {
		upper := cumDays[m]
		if leap && m >= 2 {
			upper++
		}
		if doy <= upper {
			month = m
			break
		}
	}

	lower := cumDays[month-1]
	if leap && month > 2 {
		lower++
	}
	day = doy - lower
	return year, month, day
}

func dayOfYearFromYMD(y, m, day int) int {
	doy := cumDays[m-1] + day
	if isLeap(y) && m > 2 {
		doy++
	}
	return doy
}

// toYMD converts any Value to its YMD representation. Unknown in, Unknown
// out.
func toYMD(v Value) Value {
	if v.IsUnknown() {
		return Value{Kind: Unknown}
	}
	switch v.Kind {
	case YMD:
		return v
	case DAISY:
		y, m, d := daisyToYMD(v.Daisy)
		return YMDOf(y, m, d)
	case YMCW:
		return ymcwToYMD(v)
	case BIZDA:
		return bizdaToYMD(v)
	case BIZSI:
		// BIZSI is duration-only; it has no absolute position.
		return Value{Kind: Unknown}
	default:
		return Value{Kind: Unknown}
	}
}

// ymcwToYMD computes the day-of-month per spec.md §4.B: locate the weekday
// of the 1st of the month, offset to the first occurrence of the target
// weekday, add 7*(count-1), then clamp back a week if that overflows the
// month (the "5th X" clamp).
func ymcwToYMD(v Value) Value {
	wd01 := monthStartWeekday(v.Year, v.Month)
	if !wd01.IsValid() {
		return Value{Kind: Unknown}
	}

	day := (((int(v.Weekday)-int(wd01))%7+7)%7 + 1 + 7*(v.Count-1))
	if day > monthLength(v.Year, v.Month) {
		day -= 7
	}
	return YMDOf(v.Year, v.Month, day)
}

// ymdToYMCW converts a YMD to its YMCW representation.
func ymdToYMCW(v Value) Value {
	wd01 := monthStartWeekday(v.Year, v.Month)
	weekday := Weekday((int(wd01) + (v.Day - 1)) % 7)
	count := (v.Day-1)/7 + 1
	return YMCWOf(v.Year, Month(v.Month), count, weekday)
}

// ymcwDayOfYear returns the day-of-year of a YMCW value by resolving it to
// its day-of-month with ymcwToYMD (including the "5th X" clamp) and taking
// that date's day-of-year. It returns 0 if the month is out of range.
func ymcwDayOfYear(v Value) int {
	ymd := ymcwToYMD(v)
	if ymd.Kind == Unknown {
		return 0
	}
	return dayOfYearFromYMD(ymd.Year, ymd.Month, ymd.Day)
}

func bizdaToYMD(v Value) Value {
	n := v.Day
	total := businessDaysInMonth(v.Year, v.Month)
	if n > total {
		n = total
	}
	if n < 1 {
		n = 1
	}

	if v.BizdaDirection == Before {
		n = total - n + 1
	}

	day := nthBusinessDayOfMonth(v.Year, v.Month, n)
	return YMDOf(v.Year, v.Month, day)
}

// nthBusinessDayOfMonth returns the day-of-month of the nth business day
// (1-indexed, Mon-Fri) of month m of year y.
func nthBusinessDayOfMonth(y, m, n int) int {
	wd01 := monthStartWeekday(y, m)
	day := 1
	count := 0
	length := monthLength(y, m)
	for d := 1; d <= length; d++ {
		wd := Weekday((int(wd01) + (d - 1)) % 7)
		if wd != Sunday && wd != Saturday {
			count++
			if count == n {
				day = d
				break
			}
		}
	}
	return day
}

func ymdToBizda(v Value, direction BizdaDirection, reference BizdaReference) Value {
	n := businessDayNumber(v.Year, v.Month, v.Day, direction, reference)
	return BizdaOf(v.Year, Month(v.Month), n, direction, reference)
}

// businessDayNumber returns the business-day number (per direction,
// reference) of day-of-month "day" within month m of year y. If day does
// not itself fall on a business day, it is treated as belonging to the
// most recent preceding business day, in both directions (or to the
// month's first business day if none precedes it).
func businessDayNumber(y, m, day int, direction BizdaDirection, reference BizdaReference) int {
	wd01 := monthStartWeekday(y, m)
	total := businessDaysInMonth(y, m)

	count := 0
	for d := 1; d <= day; d++ {
		wd := Weekday((int(wd01) + (d - 1)) % 7)
		if wd != Sunday && wd != Saturday {
			count++
		}
	}
	if count == 0 {
		count = 1
	}

	if direction == Before {
		count = total - count + 1
	}
	return count
}

// bizdaToBizda reprojects a BIZDA value across (direction, reference) pairs
// by pivoting through YMD. Unlike the source's stub (spec.md §9, which
// always returns zero), this is a full reprojection. Convert does not
// reach it: Convert(BIZDA, v) on a BIZDA value returns v unchanged.
func bizdaToBizda(v Value, direction BizdaDirection, reference BizdaReference) Value {
	ymd := bizdaToYMD(v)
	if ymd.Kind == Unknown {
		return Value{Kind: Unknown}
	}
	return ymdToBizda(ymd, direction, reference)
}

// Convert returns v reexpressed in the requested kind. Unknown in produces
// Unknown out. Converting a duration-only kind (BIZSI) to a positional
// kind, or vice versa, yields Unknown.
func Convert(kind Kind, v Value) Value {
	if v.IsUnknown() {
		return Value{Kind: Unknown}
	}
	if v.IsDuration {
		return convertDuration(kind, v)
	}

	if v.Kind == kind {
		return v
	}

	switch kind {
	case YMD:
		return toYMD(v)
	case YMCW:
		ymd := toYMD(v)
		if ymd.Kind == Unknown {
			return Value{Kind: Unknown}
		}
		return ymdToYMCW(ymd)
	case DAISY:
		ymd := toYMD(v)
		if ymd.Kind == Unknown {
			return Value{Kind: Unknown}
		}
		return DaisyOf(ymdToDaisy(ymd.Year, ymd.Month, ymd.Day))
	case BIZDA:
		if v.Kind == BIZDA {
			return bizdaToBizda(v, v.BizdaDirection, v.BizdaReference)
		}
		ymd := toYMD(v)
		if ymd.Kind == Unknown {
			return Value{Kind: Unknown}
		}
		return ymdToBizda(ymd, After, Ultimo)
	default:
		return Value{Kind: Unknown}
	}
}

func convertDuration(kind Kind, v Value) Value {
	switch {
	case v.Kind == kind:
		return v
	case v.Kind == BIZSI && kind == DAISY:
		n := bizDayEquivalent(Monday, signedBizDays(v))
		out := DaisyOf(0)
		out.IsDuration = true
		if n < 0 {
			out.IsNegative = true
			n = -n
		}
		out.Daisy = uint32(n)
		return out
	default:
		return Value{Kind: Unknown}
	}
}

func signedBizDays(v Value) int {
	n := v.Day
	if v.IsNegative {
		n = -n
	}
	return n
}
