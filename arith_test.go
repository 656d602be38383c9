package polydate_test

import (
	"testing"

	"github.com/nkazumine/polydate"
)

func TestAddClampsDayToShorterMonth(t *testing.T) {
	for _, tt := range []struct {
		name string
		from polydate.Value
		dur  string
		want polydate.Value
	}{
		{"leap Feb clamp", polydate.YMDOf(2012, 1, 31), "1m", polydate.YMDOf(2012, 2, 29)},
		{"non-leap Feb clamp", polydate.YMDOf(2013, 1, 31), "1m", polydate.YMDOf(2013, 2, 28)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			dur, _, err := polydate.ParseDuration(tt.dur)
			if err != nil {
				t.Fatalf("ParseDuration(%q): %v", tt.dur, err)
			}
			got := polydate.Add(tt.from, dur)
			if got != tt.want {
				t.Fatalf("Add(%v, %v) = %v, want %v", tt.from, tt.dur, got, tt.want)
			}
		})
	}
}

func TestDiffDaisySpansOneYear(t *testing.T) {
	a := polydate.YMDOf(2011, 1, 1)
	b := polydate.YMDOf(2012, 1, 1)
	dur := polydate.Diff(polydate.DAISY, a, b)
	if dur.Daisy != 365 {
		t.Fatalf("Diff(DAISY, 2011-01-01, 2012-01-01).Daisy = %d, want 365", dur.Daisy)
	}
}

func TestDiffYMDInvertsAddAcrossLeapBoundary(t *testing.T) {
	a := polydate.YMDOf(2000, 1, 31)
	b := polydate.YMDOf(2000, 3, 1)
	dur := polydate.Diff(polydate.YMD, a, b)
	want := polydate.YMDOf(0, 1, 1)
	if dur.Year != want.Year || dur.Month != want.Month || dur.Day != want.Day || dur.IsNegative {
		t.Fatalf("Diff(YMD, 2000-01-31, 2000-03-01) = (%d,%d,%d) neg=%v, want (0,1,1) neg=false",
			dur.Year, dur.Month, dur.Day, dur.IsNegative)
	}
	back := polydate.Add(a, dur)
	if back != b {
		t.Fatalf("Add(a, Diff(YMD,a,b)) = %v, want %v", back, b)
	}
}

func TestDiffYMDHarderBorrowCase(t *testing.T) {
	a := polydate.YMDOf(2000, 1, 15)
	b := polydate.YMDOf(2000, 3, 10)
	dur := polydate.Diff(polydate.YMD, a, b)
	if dur.Year != 0 || dur.Month != 1 || dur.Day != 24 || dur.IsNegative {
		t.Fatalf("Diff(YMD, 2000-01-15, 2000-03-10) = (%d,%d,%d) neg=%v, want (0,1,24) neg=false",
			dur.Year, dur.Month, dur.Day, dur.IsNegative)
	}
}

func TestDiffYMDNegativeWhenReversed(t *testing.T) {
	a := polydate.YMDOf(2000, 3, 1)
	b := polydate.YMDOf(2000, 1, 31)
	dur := polydate.Diff(polydate.YMD, a, b)
	if !dur.IsNegative {
		t.Fatalf("Diff(YMD, 2000-03-01, 2000-01-31).IsNegative = false, want true")
	}
}

func TestAddBusinessDays(t *testing.T) {
	// Friday + 1 business day lands on the following Monday.
	friday := polydate.YMDOf(2011, 6, 3)
	dur := polydate.BizsiOf(1)
	got := polydate.Add(friday, dur)
	want := polydate.YMDOf(2011, 6, 6)
	if got != want {
		t.Fatalf("Add(Friday, 1 business day) = %v, want %v", got, want)
	}
}

func TestAddBusinessDaysFromWeekendExactMultipleOfFive(t *testing.T) {
	// 2011-06-05 is a Sunday; +5 business days must land on the following
	// Friday, not on the Sunday a bare q*7 calendar-week jump would give.
	sunday := polydate.YMDOf(2011, 6, 5)
	got := polydate.Add(sunday, polydate.BizsiOf(5))
	want := polydate.YMDOf(2011, 6, 10)
	if got != want {
		t.Fatalf("Add(Sunday, 5 business days) = %v, want %v", got, want)
	}
}

func TestNegateFlipsSign(t *testing.T) {
	dur, _, err := polydate.ParseDuration("5d")
	if err != nil {
		t.Fatal(err)
	}
	neg := polydate.Negate(dur)
	if !polydate.IsNegativeDur(neg) {
		t.Fatalf("Negate(5d) is not negative")
	}
	if polydate.IsNegativeDur(polydate.Negate(neg)) {
		t.Fatalf("Negate(Negate(5d)) is negative")
	}
}
