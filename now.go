package polydate

import "github.com/nkazumine/polydate/internal/clock"

const secondsPerDay = 86400

// NowAs returns the current date, as of p's wall clock, expressed in kind.
// DAISY's epoch is fixed so that 1970-01-01 is DAISY day 19359 (spec.md §6);
// every other kind is derived from that DAISY value via Convert. Taking the
// clock as a parameter rather than process-wide state keeps NowAs as pure as
// every other core function (spec.md §5: the core carries no mutable state).
func NowAs(kind Kind, p clock.Provider) Value {
	today := DaisyOf(uint32(p.Now()/secondsPerDay + 19359))
	return Convert(kind, today)
}
