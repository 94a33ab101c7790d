package voicing

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the solvers.
var (
	// ErrEmptySequence indicates a song with no chords; no base case exists.
	ErrEmptySequence = errors.New("voicing: empty chord sequence")

	// ErrNilSource indicates that no centroid source was supplied.
	ErrNilSource = errors.New("voicing: centroid source is nil")

	// ErrNoSolution indicates that no fully playable path exists.
	ErrNoSolution = errors.New("voicing: no playable path")

	// ErrSequenceTooLong indicates that exhaustive search was refused by the
	// caller's MaxExhaustive policy.
	ErrSequenceTooLong = errors.New("voicing: sequence too long for exhaustive search")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("voicing: unsupported algorithm")

	// ErrInvalidPath indicates a path that does not match its song or costs.
	ErrInvalidPath = errors.New("voicing: invalid path")
)

// Algorithm selects a path-selection strategy.
type Algorithm int

const (
	// AlgoDynamic is the layered shortest-path DP (default).
	AlgoDynamic Algorithm = iota

	// AlgoExhaustive enumerates every admissible combination.
	AlgoExhaustive

	// AlgoGreedy picks the locally cheapest variant at every position.
	AlgoGreedy
)

// Algorithms lists every strategy in presentation order.
var Algorithms = []Algorithm{AlgoDynamic, AlgoExhaustive, AlgoGreedy}

// String returns the short CLI name of a.
func (a Algorithm) String() string {
	switch a {
	case AlgoDynamic:
		return "dp"
	case AlgoExhaustive:
		return "exhaustive"
	case AlgoGreedy:
		return "greedy"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Title returns a human readable label of a.
func (a Algorithm) Title() string {
	switch a {
	case AlgoDynamic:
		return "Dynamic programming"
	case AlgoExhaustive:
		return "Brute force"
	case AlgoGreedy:
		return "Greedy"
	default:
		return a.String()
	}
}

// ParseAlgorithm maps a CLI name (and a few aliases) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dp", "dynamic":
		return AlgoDynamic, nil
	case "exhaustive", "brute", "bruteforce", "brute-force":
		return AlgoExhaustive, nil
	case "greedy":
		return AlgoGreedy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// Step is one position of a Path.
type Step struct {
	// Chord is the normalized chord name.
	Chord string `json:"chord"`

	// Variant is the chosen variant index (0..2).
	Variant int `json:"variant"`

	// Centroid is the centroid of the chosen variant.
	Centroid float64 `json:"centroid"`

	// Cost is the cumulative cost up to and including this step; 0 for the
	// first step.
	Cost float64 `json:"cost"`
}

// Path is one Step per chord of the song, in song order.
type Path []Step

// Variants returns the chosen variant index of every step.
func (p Path) Variants() []int {
	out := make([]int, len(p))
	for i, s := range p {
		out[i] = s.Variant
	}
	return out
}

// Total returns the cumulative cost of the last step (0 for an empty path).
func (p Path) Total() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].Cost
}

// Result is the outcome of one solver run.
type Result struct {
	// Algorithm that produced the result.
	Algorithm Algorithm

	// Path holds the chosen variants; nil when no solution exists.
	Path Path

	// Cost is the total cost; +Inf when no solution exists.
	Cost float64
}

// Solved reports whether r carries a playable path.
func (r Result) Solved() bool {
	return r.Path != nil
}
