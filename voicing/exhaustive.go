package voicing

import (
	"fmt"
	"math"

	"github.com/polynizer/fretpath/chord"
)

// best is the search accumulator: the cheapest complete assignment seen so
// far. It is passed into and returned from every explore call, so the
// traversal never writes to state outside its own frame.
type best struct {
	cost    float64
	choices []int // nil until a complete playable assignment is found
}

// Exhaustive enumerates every combination of playable variants and returns
// the global minimum-cost path.
//
// Description:
//
//	A depth-first walk over the decision tree of depth n = len(song). At
//	depth t every playable variant of song[t] is tried; the edge cost from
//	the previously chosen centroid is (curr − prev)², and position 0 enters
//	for free. Nothing is pruned except unplayable variants, so every
//	admissible combination is visited. Ties keep the first minimum in
//	lexicographic variant order.
//
// Returns:
//   - Result with the optimal Path and Cost.
//   - Result{Cost: +Inf} and ErrNoSolution when no playable path exists.
//
// Errors: ErrEmptySequence, ErrNilSource, ErrSequenceTooLong (only with
// WithMaxExhaustive), wrapped chord.ErrChordNotFound.
//
// Complexity: O(3ⁿ) time, O(n) stack. Meant as an oracle for short songs.
func Exhaustive(song []string, src chord.Source, opts ...Option) (Result, error) {
	cfg := resolve(opts)
	if cfg.MaxExhaustive > 0 && len(song) > cfg.MaxExhaustive {
		return Result{Algorithm: AlgoExhaustive, Cost: math.Inf(1)},
			fmt.Errorf("%w: %d chords, limit %d", ErrSequenceTooLong, len(song), cfg.MaxExhaustive)
	}

	ls, err := layers(song, src)
	if err != nil {
		return Result{Algorithm: AlgoExhaustive, Cost: math.Inf(1)}, err
	}

	prefix := make([]int, 0, len(ls))
	found := explore(ls, 0, 0, prefix, best{cost: math.Inf(1)})
	if found.choices == nil {
		return Result{Algorithm: AlgoExhaustive, Cost: math.Inf(1)}, ErrNoSolution
	}

	return Result{
		Algorithm: AlgoExhaustive,
		Path:      buildPath(song, ls, found.choices),
		Cost:      found.cost,
	}, nil
}

// explore extends prefix (choices for positions < idx, running cost `cost`)
// with every playable variant of position idx and folds complete
// assignments into acc.
func explore(ls []chord.Centroids, idx int, cost float64, prefix []int, acc best) best {
	// Leaf: a complete playable assignment.
	if idx == len(ls) {
		if cost < acc.cost {
			return best{cost: cost, choices: append([]int(nil), prefix...)}
		}
		return acc
	}

	for v := 0; v < chord.Variants; v++ {
		if !ls[idx].Playable(v) {
			continue
		}
		step := 0.0
		if idx > 0 {
			step = transition(ls[idx-1][prefix[idx-1]], ls[idx][v])
		}
		// prefix has capacity n, so append writes slot idx in place; deeper
		// frames only read slots ≤ their own depth.
		acc = explore(ls, idx+1, cost+step, append(prefix, v), acc)
	}

	return acc
}
