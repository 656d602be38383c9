package polydate

// Supported year range for full precision (spec.md §6).
const (
	MinYear = 1917
	MaxYear = 2099
)

// cumDays[m] holds the number of days that precede month m+1 in a
// non-leap year, for m in [0,12]; cumDays[0] is 0. The leap-year bit mask
// is kept separately in leapBit below.
var cumDays = [13]int{
	0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365,
}

// leapBit is the leap-year bit mask: bit m set means the
// 1st of month m (1-indexed) falls one day later in a leap year, because a
// leap day was inserted before it. February itself is unaffected (the 29th
// is the extra day, not anything before the 1st); March onward shifts.
const leapBit = 0x1FF8 // bits 3..12 set (March .. December)

func isLeap(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

func monthLength(y, m int) int {
	if m < 1 || m > 12 {
		return 0
	}
	n := cumDays[m] - cumDays[m-1]
	if m == 2 && isLeap(y) {
		n++
	}
	return n
}

// jan01Table packs the Jan-01 weekday (Sunday=0..Saturday=6) for years
// [1920,2059] into 14 blocks of 10 years, 3 bits per year.
const jan01TableBase = 1920

var jan01Table = [14]uint32{
	282468916, 112005475, 879291161, 591616136, 421180485, 147956652,
	93130082, 744778449, 572737166, 286667829, 246518187, 898141466,
	725899472, 440059462,
}

// jan01Weekday returns the weekday of 1 January of year y, reducing y into
// the tabulated [1920,2059] range in steps of 140 years; this is exact
// because the Gregorian calendar repeats every 400 years and 140 divides
// evenly into a reduction that holds for the supported range [1917,2099].
func jan01Weekday(y int) Weekday {
	for y < jan01TableBase {
		y += 140
	}
	for y >= jan01TableBase+140 {
		y -= 140
	}
	idx := y - jan01TableBase
	block := jan01Table[idx/10]
	shift := uint((idx % 10) * 3)
	return Weekday((block >> shift) & 0x7)
}

// monthStartWeekday returns the weekday of the first day of month m of
// year y, or WeekdayInvalid if m is out of range.
func monthStartWeekday(y, m int) Weekday {
	if m < 1 || m > 12 {
		return WeekdayInvalid
	}
	leapAdjust := 0
	if isLeap(y) && (leapBit&(1<<uint(m))) != 0 {
		leapAdjust = 1
	}
	wd := (int(jan01Weekday(y)) + cumDays[m-1] + leapAdjust) % 7
	return Weekday(wd)
}

// weekendDaysIn returns the number of Saturdays and Sundays in an interval
// of dur consecutive days ending on weekday endWd (spec.md §4.A-tbl).
func weekendDaysIn(dur int, endWd Weekday) int {
	if dur < 0 {
		dur = -dur
	}
	nss := (dur / 7) * 2

	r := dur % 7
	switch {
	case r == 0:
		return nss
	case endWd == Saturday:
		return nss + 1
	case r-int(endWd) > 1:
		return nss + 2
	case r-int(endWd) > 0:
		return nss + 1
	default:
		return nss
	}
}

// businessDaysPerWeekdayOverflow[o][wd] is the number of business days in a
// month with 28+o days (o in [0,3]) whose first day falls on weekday wd.
// Derived directly from monthStartWeekday and the weekend rule: a 28-day
// month always has exactly 20 business days; each of the o extra days at
// the end of the month adds a business day unless it lands on a weekend.
var businessDaysPerWeekdayOverflow = [4][7]int{
	// indexed by Weekday of the 1st of the month (Sunday=0..Saturday=6).
	{20, 20, 20, 20, 20, 20, 20}, // o=0 (28-day month)
	{20, 21, 21, 21, 21, 21, 20}, // o=1 (29-day month)
	{21, 22, 22, 22, 22, 21, 20}, // o=2 (30-day month)
	{22, 23, 23, 23, 22, 21, 21}, // o=3 (31-day month)
}

// businessDaysInMonth returns the number of business days (Mon-Fri) in
// month m of year y.
func businessDaysInMonth(y, m int) int {
	length := monthLength(y, m)
	overflow := length - 28
	if overflow < 0 || overflow > 3 {
		return 0
	}
	start := monthStartWeekday(y, m)
	if !start.IsValid() {
		return 0
	}
	return businessDaysPerWeekdayOverflow[overflow][start]
}
