package polydate

import "errors"

// ErrInvalidDate indicates that ParseDate could not read text as a date: a
// field was malformed or outside its numeric range, literal text did not
// match, or the fields found determine no date kind. A day-of-month in
// [1,31] is not checked against the month's length.
var ErrInvalidDate = errors.New("polydate: invalid date")

// ErrInvalidDuration indicates that a duration string could not be parsed.
var ErrInvalidDuration = errors.New("polydate: invalid duration")

// ErrOutOfRange indicates that a full-year field could not be read as a
// year in [MinYear, MaxYear] (out of range, or not a number at all).
var ErrOutOfRange = errors.New("polydate: year out of supported range")
