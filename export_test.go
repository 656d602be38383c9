package polydate

// Exported wrappers over unexported internals, for the external
// polydate_test package (spec.md §8's universal properties need direct
// access to the calendrical primitives, not just the public API).

func YmdToDaisy(y, m, d int) uint32   { return ymdToDaisy(y, m, d) }
func DaisyToYMD(d uint32) (int, int, int) { return daisyToYMD(d) }
func IsLeap(y int) bool               { return isLeap(y) }
func MonthLengthOf(y, m int) int      { return monthLength(y, m) }
func Jan01Weekday(y int) Weekday      { return jan01Weekday(y) }
func MonthStartWeekday(y, m int) Weekday { return monthStartWeekday(y, m) }
func BizDayEquivalent(wd Weekday, b int) int { return bizDayEquivalent(wd, b) }
