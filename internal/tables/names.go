// Package tables supplies the name tables and numeral helpers the core
// parser/formatter consume as injected collaborators (spec.md §6), kept
// out of the core package so a locale could be swapped in without
// touching it.
package tables

import (
	"strings"

	"golang.org/x/text/cases"
)

// NameTable resolves weekday/month names in both directions: formatting
// (index → text) and parsing (text → index, with the unconsumed
// remainder).
type NameTable interface {
	LongWeekday(d int) string
	AbbrWeekday(d int) string
	SingleWeekday(d int) string
	LongMonth(m int) string
	AbbrMonth(m int) string
	SingleMonth(m int) string

	MatchWeekday(text string) (int, string)
	MatchMonth(text string) (int, string)
}

// Default is the built-in English name table. Index 0 of the month
// tables is the reserved "Miracle" sentinel (spec.md §6); weekday index 0
// is Sunday, matching polydate.Sunday.
var Default NameTable = english{}

type english struct{}

var longWeekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
var abbrWeekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

const singleWeekdayLetters = "SMTWRFAX"

var longMonthNames = [13]string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
var abbrMonthNames = [13]string{
	"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

const singleMonthLetters = "_FGHJKMNQUVXZ"

func (english) LongWeekday(d int) string {
	if d < 0 || d > 6 {
		return ""
	}
	return longWeekdayNames[d]
}

func (english) AbbrWeekday(d int) string {
	if d < 0 || d > 6 {
		return ""
	}
	return abbrWeekdayNames[d]
}

func (english) SingleWeekday(d int) string {
	if d < 0 || d > 6 {
		return ""
	}
	return string(singleWeekdayLetters[d])
}

func (english) LongMonth(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return longMonthNames[m]
}

func (english) AbbrMonth(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return abbrMonthNames[m]
}

func (english) SingleMonth(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return string(singleMonthLetters[m])
}

// fold is the case-insensitive comparator every match below uses. Case
// folding is locale-independent, so no language.Tag is needed.
var fold = cases.Fold()

func matchIn(text string, table []string, firstIdx int) (int, string) {
	folded := fold.String(text)
	best := -1
	bestLen := 0
	for i, name := range table {
		if name == "" {
			continue
		}
		fn := fold.String(name)
		if strings.HasPrefix(folded, fn) && len(fn) > bestLen {
			best = i
			bestLen = len(fn)
		}
	}
	if best < 0 {
		return -1, text
	}
	return best + firstIdx, text[bestLen:]
}

func (english) MatchWeekday(text string) (int, string) {
	if i, rest := matchIn(text, longWeekdayNames[:], 0); i >= 0 {
		return i, rest
	}
	return matchIn(text, abbrWeekdayNames[:], 0)
}

func (english) MatchMonth(text string) (int, string) {
	if i, rest := matchIn(text, longMonthNames[1:], 1); i >= 0 {
		return i, rest
	}
	return matchIn(text, abbrMonthNames[1:], 1)
}
