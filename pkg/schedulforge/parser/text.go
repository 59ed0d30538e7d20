// Package parser maps timetable sheet cells to a weekly schedule.
package parser

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CleanText removes invisible characters and surrounding whitespace.
// Compatibility normalization folds non-breaking spaces to plain spaces;
// format characters such as zero-width spaces and byte order marks are
// dropped.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFKC, runes.Remove(runes.In(unicode.Cf)))
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(out)
}

// Canonical returns the cleaned, uppercased form used for comparisons.
func Canonical(s string) string {
	return strings.ToUpper(CleanText(s))
}
