// Package voicing chooses one chord variant per position of a song so that
// the accumulated squared change of hand position is minimal.
//
// The problem as a layered graph:
//
//	position:   0        1        2     …   n-1
//	          ┌───┐    ┌───┐    ┌───┐
//	variant 0 │ ● │───▶│ ● │───▶│ ● │
//	variant 1 │ ● │─┬─▶│ ● │───▶│ ● │       edge cost (c_t,i − c_{t-1},j)²
//	variant 2 │ ● │─┘  │ ● │    │ ● │       unplayable variants have no edges
//	          └───┘    └───┘    └───┘
//
// Three strategies walk this graph:
//
//   - Exhaustive: depth-first over every admissible combination. O(3ⁿ).
//     Ground truth for short songs.
//   - Dynamic   : shortest path over the layers (Stage fills F/G, Trace
//     walks G back). O(9·n). Must report the same cost as Exhaustive.
//   - Greedy    : one irrevocable local choice per position. O(3·n).
//     Cost is never below the optimum.
//
// Usage:
//
//	tbl := … // *chord.Table from package loader
//	res, err := voicing.Solve(song, chord.NewCache(tbl), voicing.WithAlgorithm(voicing.AlgoDynamic))
//	if errors.Is(err, voicing.ErrNoSolution) {
//	    // some chord has no playable variant
//	}
//
// Solvers are pure functions of (song, source): they never mutate their
// inputs, hold no shared state and may run in parallel (see Compare).
//
// Errors (sentinel):
//
//	ErrEmptySequence        - the song has no chords.
//	ErrNilSource            - no centroid source was given.
//	ErrNoSolution           - every combination contains an unplayable variant.
//	ErrSequenceTooLong      - exhaustive search refused by WithMaxExhaustive.
//	ErrUnsupportedAlgorithm - unknown Algorithm value.
//	ErrInvalidPath          - ValidatePath found an inconsistent path.
package voicing
