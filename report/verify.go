package report

import (
	"math"

	"github.com/polynizer/fretpath/voicing"
)

// DefaultTolerance is the largest accepted |actual - expected| of a Check.
const DefaultTolerance = 0.1

// Check compares one path position with the reference series.
type Check struct {
	Index    int     `json:"index"`
	Actual   float64 `json:"actual"`
	Expected float64 `json:"expected"`
	Diff     float64 `json:"diff"`
	OK       bool    `json:"ok"`
}

// Verify checks every position that both p and ref cover. Actual is
// sqrt(cumulative cost). A non-positive tol selects DefaultTolerance.
//
// Complexity: O(min(len(p), len(ref))).
func Verify(p voicing.Path, ref []float64, tol float64) []Check {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	n := min(len(p), len(ref))
	out := make([]Check, n)
	for i := 0; i < n; i++ {
		actual := math.Sqrt(p[i].Cost)
		diff := math.Abs(actual - ref[i])
		out[i] = Check{
			Index:    i,
			Actual:   actual,
			Expected: ref[i],
			Diff:     diff,
			OK:       diff < tol,
		}
	}
	return out
}

// Matched returns the number of passing checks.
func Matched(checks []Check) int {
	n := 0
	for _, c := range checks {
		if c.OK {
			n++
		}
	}
	return n
}
