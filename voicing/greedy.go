package voicing

import (
	"fmt"
	"math"

	"github.com/polynizer/fretpath/chord"
)

// Greedy makes one irrevocable local choice per position.
//
// Description:
//
//	Open on the first playable variant of song[0] (or unconditionally on
//	variant 0 with WithLiteralGreedyOpening). At every later position pick
//	the playable variant closest to the previously chosen centroid; ties keep
//	the lowest index. No lookahead, no backtracking, so the cost is never
//	below the Dynamic/Exhaustive optimum.
//
// With WithLiteralGreedyOpening an unplayable opening carries the Sentinel
// centroid into the first transition, which makes the whole path cost
// enormous rather than invalidating it.
//
// Returns Result{Cost: +Inf} and ErrNoSolution when the opening chord (non
// literal mode) or any later chord has no playable variant.
//
// Complexity: O(3·n) time, O(n) memory.
func Greedy(song []string, src chord.Source, opts ...Option) (Result, error) {
	cfg := resolve(opts)
	unsolved := Result{Algorithm: AlgoGreedy, Cost: math.Inf(1)}

	ls, err := layers(song, src)
	if err != nil {
		return unsolved, err
	}

	// 1) Opening choice.
	open := 0
	if !cfg.LiteralGreedyOpening {
		if open = ls[0].FirstPlayable(); open < 0 {
			return unsolved, fmt.Errorf("%w: position 0 has no playable variant", ErrNoSolution)
		}
	}
	p := make(Path, len(song))
	p[0] = Step{Chord: chord.Normalize(song[0]), Variant: open, Centroid: ls[0][open]}

	// 2) Local choices.
	var cum float64
	prev := ls[0][open]
	for t := 1; t < len(ls); t++ {
		minCost, pick := math.Inf(1), -1
		for v := 0; v < chord.Variants; v++ {
			if !ls[t].Playable(v) {
				continue
			}
			if c := transition(prev, ls[t][v]); c < minCost {
				minCost, pick = c, v
			}
		}
		if pick < 0 {
			return unsolved, fmt.Errorf("%w: position %d has no playable variant", ErrNoSolution, t)
		}
		cum += minCost
		prev = ls[t][pick]
		p[t] = Step{Chord: chord.Normalize(song[t]), Variant: pick, Centroid: prev, Cost: cum}
	}

	return Result{Algorithm: AlgoGreedy, Path: p, Cost: cum}, nil
}
