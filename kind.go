package polydate

import "fmt"

// Kind tags which representation a Value holds.
type Kind int

const (
	Unknown Kind = iota
	YMD
	YMCW
	DAISY
	BIZDA
	BIZSI
)

func (k Kind) String() string {
	switch k {
	case YMD:
		return "YMD"
	case YMCW:
		return "YMCW"
	case DAISY:
		return "DAISY"
	case BIZDA:
		return "BIZDA"
	case BIZSI:
		return "BIZSI"
	case Unknown:
		return "UNKNOWN"
	default:
		return fmt.Sprintf("%%!Kind(%d)", int(k))
	}
}

// BizdaDirection parametrizes a BIZDA value: is the business-day number
// counted after or before the reference point?
type BizdaDirection int

const (
	After BizdaDirection = iota
	Before
)

func (d BizdaDirection) String() string {
	if d == Before {
		return "BEFORE"
	}
	return "AFTER"
}

// BizdaReference is the reference point a BIZDA business-day number is
// counted from or to. Ultimo (the last calendar day of the month) is the
// only reference point this library implements.
type BizdaReference int

const (
	Ultimo BizdaReference = iota
)

func (r BizdaReference) String() string {
	return "ULTIMO"
}
