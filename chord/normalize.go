package chord

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// cases.Caser keeps state, so Normalize builds a fresh one per call.
var lowerTag = language.Und

// Normalize returns the canonical form of a chord name: NFKC, trimmed, inner
// whitespace collapsed to single spaces and lower-cased.
//
// Complexity: O(len(s)).
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Join(strings.Fields(s), " ")
	s = norm.NFKC.String(s)
	return cases.Lower(lowerTag).String(s)
}
