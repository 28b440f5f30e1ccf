// Package datefmt converts Clojure-style date-format tokens (as used by
// Logseq's config.edn journal format keys) into Go's reference-time layout
// strings, and handles the day-of-month ordinal suffix token that has no
// direct Go layout equivalent. Grounded on
// logseq_analyzer/utils/date_utilities.py's DATETIME_TOKEN_MAP and
// logseq_analyzer/logseq_file/name.py's ordinal handling in the original
// implementation (§4.H / SUPPLEMENTED FEATURES).
package datefmt

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// tokenMap is the full Clojure-token -> Go reference-time layout table,
// supplementing the partial table in spec §4.H with the remaining tokens
// from the original implementation (xxxx/xx year aliases, D day-of-year,
// the full weekday family, HH/H, hh/h, mm/m, ss/s, SSS, a/A, Z/ZZ).
//
// Go's reference time is "Mon Jan 2 15:04:05 MST 2006"; tokens map to the
// corresponding layout fragment.
var tokenMap = map[string]string{
	"yyyy": "2006", "xxxx": "2006",
	"yy": "06", "xx": "06",
	"MMMM": "January", "MMM": "Jan", "MM": "01", "M": "1",
	"dd": "02", "d": "2",
	"D":    "002",
	"EEEE": "Monday", "EEE": "Mon", "EE": "Mon", "E": "Mon",
	"e":  "1",
	"HH": "15", "H": "15",
	"hh": "03", "h": "3",
	"mm": "04", "m": "4",
	"ss": "05", "s": "5",
	"SSS": "000",
	"a":   "PM", "A": "PM",
	"Z": "-0700", "ZZ": "-0700",
}

// orderedTokens is tokenMap's keys sorted longest-first so that, e.g.,
// "MMMM" is substituted before "MM" is allowed to eat part of it.
var orderedTokens []string

func init() {
	orderedTokens = make([]string, 0, len(tokenMap))
	for k := range tokenMap {
		orderedTokens = append(orderedTokens, k)
	}
	sort.Slice(orderedTokens, func(i, j int) bool {
		return len(orderedTokens[i]) > len(orderedTokens[j])
	})
}

// OrdinalToken is the Clojure "o" token: not a direct format token, it is
// stripped before parsing and re-applied at formatting time by appending
// the ordinal suffix to the day-of-month numeral (spec §4.H).
const OrdinalToken = "o"

// HasOrdinal reports whether a Clojure format string contains the bare "o"
// ordinal token (not part of another token such as a literal "o" in
// "Mon").
func HasOrdinal(cljsFormat string) bool {
	// "o" tokens appear as their own run in practice (e.g. "MMM do,
	// yyyy"); a simple substring check is sufficient since no other
	// token in tokenMap contains a lowercase "o".
	return strings.Contains(cljsFormat, "o")
}

// StripOrdinal removes the ordinal token from a Clojure format string,
// returning the cleaned format for use with CljsToGoLayout/parsing.
func StripOrdinal(cljsFormat string) string {
	return strings.ReplaceAll(cljsFormat, "o", "")
}

// CljsToGoLayout converts a Clojure-style date-format string (ordinal
// token already stripped) into a Go time layout string in one
// left-to-right pass, taking the longest token at each position, so the
// output of one token is never rewritten by another.
func CljsToGoLayout(cljsFormat string) string {
	var b strings.Builder
	for i := 0; i < len(cljsFormat); {
		matched := false
		for _, tok := range orderedTokens {
			if strings.HasPrefix(cljsFormat[i:], tok) {
				b.WriteString(tokenMap[tok])
				i += len(tok)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(cljsFormat[i])
			i++
		}
	}
	return b.String()
}

// Parse parses value against a Clojure-style format, stripping the
// ordinal token first if present. It does not reconstruct the day numeral
// from an ordinal-suffixed value (e.g. "1st"), and the package has no
// helper that removes such a suffix: a value carrying one fails to parse.
func Parse(value, cljsFormat string) (time.Time, bool) {
	layout := CljsToGoLayout(StripOrdinal(cljsFormat))
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Format renders d using a Clojure-style format, appending the ordinal
// suffix to the day-of-month numeral when the format contains the "o"
// token, per spec §4.B.
func Format(d time.Time, cljsFormat string) string {
	if !HasOrdinal(cljsFormat) {
		return d.Format(CljsToGoLayout(cljsFormat))
	}
	stripped := StripOrdinal(cljsFormat)
	layout := CljsToGoLayout(stripped)
	rendered := d.Format(layout)
	return insertOrdinal(rendered, d.Day())
}

// insertOrdinal replaces the first occurrence of the bare day-of-month
// numeral in rendered with its ordinal form (1st, 2nd, 3rd, 4th, ...,
// 11th-13th, 21st, ...).
func insertOrdinal(rendered string, day int) string {
	numeral := strconv.Itoa(day)
	idx := strings.Index(rendered, numeral)
	if idx < 0 {
		return rendered
	}
	return rendered[:idx] + numeral + OrdinalSuffix(day) + rendered[idx+len(numeral):]
}

// OrdinalSuffix returns "st", "nd", "rd", or "th" for a day-of-month
// number, per the _add_ordinal_suffix_to_day_of_month logic of the
// original implementation: 11-13 are always "th"; otherwise the last
// digit decides.
func OrdinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
