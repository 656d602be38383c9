package polydate_test

import (
	"testing"
	"time"

	"github.com/nkazumine/polydate"
)

// TestDaisyRoundTripsYMD covers universal properties 1 and 2: DAISY and
// YMD are mutual inverses over every day in the supported range.
func TestDaisyRoundTripsYMD(t *testing.T) {
	for y := polydate.MinYear; y <= polydate.MaxYear; y++ {
		for m := 1; m <= 12; m++ {
			length := polydate.MonthLengthOf(y, m)
			for d := 1; d <= length; d++ {
				daisy := polydate.YmdToDaisy(y, m, d)
				gy, gm, gd := polydate.DaisyToYMD(daisy)
				if gy != y || gm != m || gd != d {
					t.Fatalf("YmdToDaisy(%d,%d,%d)=%d, DaisyToYMD back = (%d,%d,%d)", y, m, d, daisy, gy, gm, gd)
				}
			}
		}
	}
}

// TestJan01WeekdayMatchesCivilCalendar covers universal property 8.
func TestJan01WeekdayMatchesCivilCalendar(t *testing.T) {
	for y := polydate.MinYear; y <= polydate.MaxYear; y++ {
		want := time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC).Weekday()
		got := polydate.Jan01Weekday(y)
		if int(got) != int(want) {
			t.Fatalf("year %d: Jan01Weekday=%v, time.Weekday=%v", y, got, want)
		}
	}
}

// TestMonthLengthProperty covers universal property 9.
func TestMonthLengthProperty(t *testing.T) {
	for y := polydate.MinYear; y <= polydate.MaxYear; y++ {
		for m := 1; m <= 12; m++ {
			n := polydate.MonthLengthOf(y, m)
			switch n {
			case 28, 29, 30, 31:
			default:
				t.Fatalf("MonthLengthOf(%d,%d) = %d, not in {28,29,30,31}", y, m, n)
			}
			if m == 2 {
				wantLeap := n == 29
				if wantLeap != polydate.IsLeap(y) {
					t.Fatalf("year %d: Feb has %d days but IsLeap=%v", y, n, polydate.IsLeap(y))
				}
			}
		}
	}
}

// TestAccessorsCommuteWithConvert covers universal property 3: an accessor
// gives the same answer on v and on v converted to any other kind.
func TestAccessorsCommuteWithConvert(t *testing.T) {
	base := polydate.YMDOf(2011, 6, 14) // a Tuesday
	kinds := []polydate.Kind{polydate.YMD, polydate.YMCW, polydate.DAISY, polydate.BIZDA}
	for _, k := range kinds {
		v := polydate.Convert(k, base)
		if v.AccYear() != base.AccYear() {
			t.Errorf("kind %s: AccYear=%d, want %d", k, v.AccYear(), base.AccYear())
		}
		if v.AccMonth() != base.AccMonth() {
			t.Errorf("kind %s: AccMonth=%d, want %d", k, v.AccMonth(), base.AccMonth())
		}
		if v.AccDayOfMonth() != base.AccDayOfMonth() {
			t.Errorf("kind %s: AccDayOfMonth=%d, want %d", k, v.AccDayOfMonth(), base.AccDayOfMonth())
		}
		if v.AccWeekday() != base.AccWeekday() {
			t.Errorf("kind %s: AccWeekday=%v, want %v", k, v.AccWeekday(), base.AccWeekday())
		}
		if v.AccDayOfYear() != base.AccDayOfYear() {
			t.Errorf("kind %s: AccDayOfYear=%d, want %d", k, v.AccDayOfYear(), base.AccDayOfYear())
		}
		if v.AccQuarter() != base.AccQuarter() {
			t.Errorf("kind %s: AccQuarter=%d, want %d", k, v.AccQuarter(), base.AccQuarter())
		}
	}
}

// TestWeekdayMatchesDaisyModulo covers universal property 7.
func TestWeekdayMatchesDaisyModulo(t *testing.T) {
	for _, v := range []polydate.Value{
		polydate.YMDOf(1917, 1, 1),
		polydate.YMDOf(2000, 2, 29),
		polydate.YMDOf(2099, 12, 31),
		polydate.YMDOf(2011, 6, 14),
	} {
		daisy := polydate.Convert(polydate.DAISY, v).Daisy
		want := polydate.Weekday(daisy % 7)
		if v.AccWeekday() != want {
			t.Errorf("%v: AccWeekday=%v, want daisy%%7=%v", v, v.AccWeekday(), want)
		}
	}
}

// TestBizDayEquivalentBoundary covers the Sat/Sun/negative-residue
// boundary spec.md §9 calls out as mandatory.
func TestBizDayEquivalentBoundary(t *testing.T) {
	for _, tt := range []struct {
		wd   polydate.Weekday
		b    int
		want int
	}{
		{polydate.Monday, 5, 7},
		{polydate.Friday, 1, 3},   // Friday +1 business day lands on Monday, 3 calendar days later
		{polydate.Saturday, 1, 2}, // starting mid-weekend, stepping forward skips to Monday
		{polydate.Sunday, 1, 1},
		{polydate.Monday, -5, -7},
		{polydate.Monday, -1, -3}, // Monday -1 business day lands on the prior Friday
		{polydate.Saturday, -1, -1},
		{polydate.Sunday, 5, 5},     // weekend start, exact multiple of 5
		{polydate.Saturday, 5, 6},
		{polydate.Sunday, -5, -6},
		{polydate.Saturday, -5, -5},
	} {
		got := polydate.BizDayEquivalent(tt.wd, tt.b)
		if got != tt.want {
			t.Errorf("BizDayEquivalent(%v, %d) = %d, want %d", tt.wd, tt.b, got, tt.want)
		}
	}
}
