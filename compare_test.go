package polydate_test

import (
	"testing"

	"github.com/nkazumine/polydate"
)

func TestCompareYMDOrdersByFields(t *testing.T) {
	earlier := polydate.YMDOf(2011, 3, 17)
	later := polydate.YMDOf(2011, 4, 1)
	if polydate.Compare(earlier, later) >= 0 {
		t.Fatalf("Compare(earlier, later) should be negative")
	}
	if polydate.Compare(later, earlier) <= 0 {
		t.Fatalf("Compare(later, earlier) should be positive")
	}
	if polydate.Compare(earlier, earlier) != 0 {
		t.Fatalf("Compare(v, v) should be 0")
	}
}

// TestCompareYMCWUsesCombinedOffset is the scenario from spec.md §8: the
// 2nd Tuesday of June 2011 (June 14) is later than the 1st Friday (June
// 3), even though 2 < 1 is false and a naive count-then-weekday
// comparison would get this backwards for some other month pairs.
func TestCompareYMCWUsesCombinedOffset(t *testing.T) {
	secondTuesday := polydate.YMCWOf(2011, polydate.June, 2, polydate.Tuesday)
	firstFriday := polydate.YMCWOf(2011, polydate.June, 1, polydate.Friday)
	if polydate.Compare(secondTuesday, firstFriday) <= 0 {
		t.Fatalf("Compare(2nd Tue, 1st Fri) should be positive")
	}
}

func TestCompareCrossKindIsIncomparable(t *testing.T) {
	ymd := polydate.YMDOf(2011, 3, 17)
	ymcw := polydate.YMCWOf(2011, polydate.March, 3, polydate.Thursday)
	if polydate.Compare(ymd, ymcw) != polydate.Incomparable {
		t.Fatalf("Compare(YMD, YMCW) should be Incomparable")
	}
}

func TestCompareIsAntisymmetricAndTransitive(t *testing.T) {
	a := polydate.YMDOf(2011, 1, 1)
	b := polydate.YMDOf(2011, 6, 15)
	c := polydate.YMDOf(2011, 12, 31)

	if polydate.Compare(a, b) != -polydate.Compare(b, a) {
		t.Fatalf("Compare(a,b) and Compare(b,a) should be opposite sign")
	}
	if polydate.Compare(a, b) < 0 && polydate.Compare(b, c) < 0 && polydate.Compare(a, c) >= 0 {
		t.Fatalf("Compare should be transitive: a<b<c but Compare(a,c) >= 0")
	}
}

func TestInRange(t *testing.T) {
	lo := polydate.YMDOf(2011, 1, 1)
	hi := polydate.YMDOf(2011, 12, 31)
	mid := polydate.YMDOf(2011, 6, 15)
	outside := polydate.YMDOf(2012, 1, 1)

	if !polydate.InRange(mid, lo, hi) {
		t.Fatalf("InRange(mid, lo, hi) should be true")
	}
	if polydate.InRange(outside, lo, hi) {
		t.Fatalf("InRange(outside, lo, hi) should be false")
	}
}
