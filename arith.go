package polydate

// bizDayEquivalent converts a signed business-day displacement b, stepped
// from a date whose weekday is wd, into the equivalent number of calendar
// days (spec.md §4.D's __get_d_equiv). |b| is reduced to a multiple-of-5
// part (contributing 7 days per multiple) and a residue in [1,5] that is
// walked one business day at a time in the direction of b's sign,
// skipping weekends; an exact multiple of 5 walks its last 5 days, so a
// weekend start is rebased (Sunday + 5 business days is 5 calendar days).
func bizDayEquivalent(wd Weekday, b int) int {
	if b == 0 {
		return 0
	}

	neg := b < 0
	n := b
	if neg {
		n = -n
	}

	q, r := n/5, n%5
	if r == 0 {
		// A multiple-of-5 count must still walk the last week one
		// business day at a time: folding it into q*7 unconditionally
		// skips the weekend-rebasing the walk below performs, which is
		// wrong whenever wd itself is Saturday or Sunday.
		q--
		r = 5
	}
	days := q * 7

	w := int(wd)
	step := 1
	if neg {
		step = -1
	}
	for i := 0; i < r; i++ {
		w = ((w+step)%7 + 7) % 7
		for w == int(Sunday) || w == int(Saturday) {
			days++
			w = ((w+step)%7 + 7) % 7
		}
		days++
	}

	if neg {
		return -days
	}
	return days
}

// durationComponents holds the signed (months, days, businessDays)
// displacement that extractDuration reads off a duration Value.
type durationComponents struct {
	months  int
	days    int
	bizdays int // signed
}

func extractDuration(dur Value) durationComponents {
	sign := 1
	if dur.IsNegative {
		sign = -1
	}

	switch dur.Kind {
	case YMD:
		return durationComponents{
			months: sign * (dur.Year*12 + dur.Month),
			days:   sign * dur.Day,
		}
	case YMCW:
		return durationComponents{
			months: sign * (dur.Year*12 + dur.Month),
			days:   sign * (dur.Count*7 + int(dur.Weekday)),
		}
	case DAISY:
		return durationComponents{days: sign * int(dur.Daisy)}
	case BIZDA:
		return durationComponents{
			months:  sign * (dur.Year*12 + dur.Month),
			bizdays: sign * dur.Day,
		}
	case BIZSI:
		return durationComponents{bizdays: sign * dur.Day}
	default:
		return durationComponents{}
	}
}

// Add returns the date produced by displacing v by dur. The result has the
// same kind as v (spec.md §4.D: "the result of add has the same kind as
// its left operand").
func Add(v, dur Value) Value {
	if v.IsUnknown() || dur.IsUnknown() {
		return Value{Kind: Unknown}
	}

	switch v.Kind {
	case DAISY:
		return addDaisy(v, dur)
	case YMCW:
		return addYMCW(v, dur)
	default:
		ymd := toYMD(v)
		if ymd.Kind == Unknown {
			return Value{Kind: Unknown}
		}
		out := addYMD(ymd, dur)
		if out.Kind == Unknown {
			return out
		}
		if v.Kind == BIZDA {
			return ymdToBizda(out, v.BizdaDirection, v.BizdaReference)
		}
		return out
	}
}

func addDaisy(v, dur Value) Value {
	switch dur.Kind {
	case DAISY:
		delta := int(dur.Daisy)
		if dur.IsNegative {
			delta = -delta
		}
		return DaisyOf(uint32(int(v.Daisy) + delta))
	case BIZSI:
		b := dur.Day
		if dur.IsNegative {
			b = -b
		}
		wd := Weekday(v.Daisy % 7)
		return DaisyOf(uint32(int(v.Daisy) + bizDayEquivalent(wd, b)))
	default:
		// Compose through YMD for month-carrying durations.
		y, m, d := daisyToYMD(v.Daisy)
		out := addYMD(YMDOf(y, m, d), dur)
		if out.Kind == Unknown {
			return out
		}
		return DaisyOf(ymdToDaisy(out.Year, out.Month, out.Day))
	}
}

// addMonthsClamped adds n whole months to y-m-d, carrying the year and
// clamping the day to the destination month's length (so Jan 31 + 1 month
// lands on Feb 28/29, never March).
func addMonthsClamped(y, m, d, n int) (int, int, int) {
	total := y*12 + (m - 1) + n
	ny := total / 12
	nm := total % 12
	if nm < 0 {
		nm += 12
		ny--
	}
	nm++
	nd := d
	if nd > monthLength(ny, nm) {
		nd = monthLength(ny, nm)
	}
	return ny, nm, nd
}

// addYMD applies a duration to a YMD value: months first (carrying year and
// clamping the day to the new month's length), then days (from a DAISY/YMD
// duration) or the business-day calendar-day equivalent (from a
// BIZDA/BIZSI duration).
func addYMD(v Value, dur Value) Value {
	comp := extractDuration(dur)

	year, month, day := v.Year, v.Month, v.Day
	if comp.months != 0 {
		year, month, day = addMonthsClamped(year, month, day, comp.months)
	}

	out := YMDOf(year, month, day)

	switch {
	case comp.days != 0:
		d := ymdToDaisy(out.Year, out.Month, out.Day)
		y2, m2, d2 := daisyToYMD(uint32(int(d) + comp.days))
		out = YMDOf(y2, m2, d2)
	case comp.bizdays != 0:
		wd := Weekday(ymdToDaisy(out.Year, out.Month, out.Day) % 7)
		delta := bizDayEquivalent(wd, comp.bizdays)
		d := ymdToDaisy(out.Year, out.Month, out.Day)
		y2, m2, d2 := daisyToYMD(uint32(int(d) + delta))
		out = YMDOf(y2, m2, d2)
	}
	return out
}

// addYMCW applies a duration to a YMCW value component-wise, with no carry
// across the count/weekday boundary. This is a deliberate preservation of
// spec.md §9's open question: YMCW(y,m,c,w) + YMD(0,0,10) yields
// (c + 10/7, w + 10%7) without normalizing w >= 7. Callers that need a
// normalized result should convert through YMD first.
func addYMCW(v Value, dur Value) Value {
	switch dur.Kind {
	case YMD:
		sign := 1
		if dur.IsNegative {
			sign = -1
		}
		months := sign * (dur.Year*12 + dur.Month)
		days := sign * dur.Day

		year, month := v.Year, v.Month
		if months != 0 {
			year, month, _ = addMonthsClamped(year, month, 1, months)
		}

		count := v.Count + days/7
		weekday := Weekday(int(v.Weekday) + days%7)
		return YMCWOf(year, Month(month), count, weekday)
	case YMCW:
		sign := 1
		if dur.IsNegative {
			sign = -1
		}
		return YMCWOf(
			v.Year+sign*dur.Year,
			Month(v.Month+sign*dur.Month),
			v.Count+sign*dur.Count,
			Weekday(int(v.Weekday)+sign*int(dur.Weekday)),
		)
	default:
		ymd := toYMD(v)
		out := addYMD(ymd, dur)
		if out.Kind == Unknown {
			return out
		}
		return ymdToYMCW(out)
	}
}

// Diff returns the duration of kind `kind` that, applied to a with Add,
// yields b (up to the clamping behaviour spec.md §8 property 4/5 allows).
func Diff(kind Kind, a, b Value) Value {
	if a.IsUnknown() || b.IsUnknown() {
		return Value{Kind: Unknown}
	}

	switch kind {
	case DAISY:
		return diffDaisy(a, b)
	case BIZSI:
		return diffBizsi(a, b)
	case YMD:
		return diffYMD(a, b)
	case YMCW:
		return diffYMCW(a, b)
	default:
		return Value{Kind: Unknown}
	}
}

func diffDaisy(a, b Value) Value {
	d1 := Convert(DAISY, a).Daisy
	d2 := Convert(DAISY, b).Daisy
	delta := int(d2) - int(d1)
	out := DaisyOf(0)
	out.IsDuration = true
	if delta < 0 {
		out.IsNegative = true
		delta = -delta
	}
	out.Daisy = uint32(delta)
	return out
}

func diffBizsi(a, b Value) Value {
	d1 := Convert(DAISY, a).Daisy
	d2v := Convert(DAISY, b)
	d2 := d2v.Daisy
	delta := int(d2) - int(d1)

	neg := delta < 0
	abs := delta
	if neg {
		abs = -abs
	}
	weekends := weekendDaysIn(abs, Weekday(d2%7))
	bizdays := abs - weekends

	out := BizsiOf(bizdays)
	if neg {
		out.IsNegative = true
	}
	return out
}

// diffYMD implements spec.md §4.D's YMD difference. The naive formula there
// (take the raw month delta, then borrow one month's length into the day
// component whenever days go negative) does not actually invert Add: Add
// clamps the day when a month is shorter than the start day, and the
// clamped day changes which month the borrow should come from. "31 Jan" to
// "1 Mar" (a leap year) is the case that exposes it — borrowing February's
// length gives a one-day-negative remainder, not the single day that
// adding one month and one day back to 31 Jan actually produces. Instead,
// walk whole months forward from the earlier operand with Add's own
// clamping rule, stopping at the last one that does not overshoot, then
// take the remaining calendar days as the leftover: this is exactly the
// inverse of addYMD and agrees with the spec's own worked example.
func diffYMD(a, b Value) Value {
	x, y := toYMD(a), toYMD(b)
	neg := false
	if Compare(x, y) > 0 {
		x, y = y, x
		neg = true
	}

	months := 0
	cy, cm, cd := x.Year, x.Month, x.Day
	for {
		ny, nm, nd := addMonthsClamped(x.Year, x.Month, x.Day, months+1)
		if Compare(YMDOf(ny, nm, nd), y) > 0 {
			break
		}
		months++
		cy, cm, cd = ny, nm, nd
	}
	days := int(ymdToDaisy(y.Year, y.Month, y.Day)) - int(ymdToDaisy(cy, cm, cd))

	out := YMDOf(months/12, months%12, days)
	out.IsDuration = true
	out.IsNegative = neg
	return out
}

// diffYMCW implements spec.md §4.D's YMCW difference: express each operand
// as (count*7 + offset-from-wd01) and difference those, borrowing 7 from a
// negative day difference. Unlike diffYMD, the flat borrow is exact here:
// addYMCW never clamps (it preserves the non-normalizing open question
// rather than reconciling count/weekday overflow), so there is no
// Add-side clamping behaviour for the borrow amount to disagree with.
func diffYMCW(a, b Value) Value {
	x, y := Convert(YMCW, a), Convert(YMCW, b)
	neg := false
	if Compare(x, y) > 0 {
		x, y = y, x
		neg = true
	}

	wd01x := monthStartWeekday(x.Year, x.Month)
	wd01y := monthStartWeekday(y.Year, y.Month)
	offX := ((int(x.Weekday)-int(wd01x))%7 + 7) % 7
	offY := ((int(y.Weekday)-int(wd01y))%7 + 7) % 7

	months := 12*(y.Year-x.Year) + (y.Month - x.Month)
	days := (offY + 7*y.Count) - (offX + 7*x.Count)
	if days < 0 && months != 0 {
		months--
		days += 7
	}

	out := YMCWOf(months/12, Month(months%12), days/7, Weekday(days%7))
	out.IsDuration = true
	out.IsNegative = neg
	return out
}

// Negate returns dur with its sign flipped.
func Negate(dur Value) Value {
	out := dur
	out.IsNegative = !dur.IsNegative
	return out
}

// IsNegativeDur reports whether dur represents a negative displacement.
func IsNegativeDur(dur Value) bool {
	return dur.IsNegative
}
