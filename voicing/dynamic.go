package voicing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/polynizer/fretpath/chord"
)

// Tables holds the DP state of one Stage run.
//
//   - F.At(s, t): minimum cumulative cost of any playable path that ends in
//     variant s at position t (+Inf if unreachable).
//   - G[s][t]   : the predecessor variant realizing F(s, t); G[s][0] = s,
//     −1 marks an unreachable state.
//   - Layers    : the centroids Stage used, one entry per position.
type Tables struct {
	F      *mat.Dense
	G      [][]int
	Layers []chord.Centroids
}

// Len returns the number of positions covered by t.
func (t *Tables) Len() int { return len(t.Layers) }

// Stage fills the DP tables for song and picks the final state.
//
// Algorithm (layered shortest path, 3 states per layer):
//  1. Base case, t = 0: F(s,0) = 0 and G(s,0) = s for every s. Position 0
//     has no incoming edge, so even unplayable variants start at 0 here.
//  2. For t = 1..n−1 and each current state i:
//     F(i,t) = min_j F(j,t−1) + (c(t−1,j) − c(t,i))²,
//     skipping pairs where either side is unplayable. No candidate ⇒
//     F(i,t) = +Inf, G(i,t) = −1.
//  3. Termination: the first minimum of F(s,n−1) over playable s, scanning
//     s = 0,1,2. For n ≥ 2 unplayable final states are +Inf anyway; for
//     n = 1 this keeps an unplayable variant from being reported.
//
// Returns the chosen final state, the tables, and:
//   - ErrNoSolution   if no final state is finite (final = −1, tables kept).
//   - ErrEmptySequence, ErrNilSource, wrapped chord.ErrChordNotFound.
//
// Complexity: O(9·n) time, O(3·n) memory.
func Stage(song []string, src chord.Source) (int, *Tables, error) {
	ls, err := layers(song, src)
	if err != nil {
		return -1, nil, err
	}
	n := len(ls)

	// 1) Allocate F (+Inf) and G (−1).
	inf := math.Inf(1)
	F := mat.NewDense(chord.Variants, n, nil)
	G := make([][]int, chord.Variants)
	for s := 0; s < chord.Variants; s++ {
		G[s] = make([]int, n)
		for t := 0; t < n; t++ {
			F.Set(s, t, inf)
			G[s][t] = -1
		}
	}

	// 2) Base case.
	for s := 0; s < chord.Variants; s++ {
		F.Set(s, 0, 0)
		G[s][0] = s
	}

	// 3) Fill layer by layer.
	for t := 1; t < n; t++ {
		prev, curr := ls[t-1], ls[t]
		for i := 0; i < chord.Variants; i++ {
			if !curr.Playable(i) {
				continue
			}
			minCost, from := inf, -1
			for j := 0; j < chord.Variants; j++ {
				if !prev.Playable(j) {
					continue
				}
				total := F.At(j, t-1) + transition(prev[j], curr[i])
				if total < minCost {
					minCost, from = total, j
				}
			}
			F.Set(i, t, minCost)
			G[i][t] = from
		}
	}

	// 4) Pick the final state.
	tables := &Tables{F: F, G: G, Layers: ls}
	final, cost := -1, inf
	for s := 0; s < chord.Variants; s++ {
		if !ls[n-1].Playable(s) {
			continue
		}
		if f := F.At(s, n-1); f < cost {
			final, cost = s, f
		}
	}
	if final < 0 {
		return -1, tables, ErrNoSolution
	}

	return final, tables, nil
}

// Trace reconstructs the optimal path ending in state final by walking the
// predecessor table G backwards from position n−1 to 0.
//
// Errors:
//   - ErrInvalidPath if tables do not cover song or final is out of range.
//   - ErrNoSolution  if the walk reaches an unreachable state.
//
// Complexity: O(n).
func Trace(song []string, tables *Tables, final int) (Path, error) {
	if tables == nil || tables.Len() != len(song) || len(song) == 0 {
		return nil, fmt.Errorf("%w: tables do not match the song", ErrInvalidPath)
	}
	if final < 0 || final >= chord.Variants {
		return nil, fmt.Errorf("%w: final state %d", ErrInvalidPath, final)
	}

	n := len(song)
	p := make(Path, n)
	state := final
	for t := n - 1; t >= 0; t-- {
		if state < 0 {
			return nil, ErrNoSolution
		}
		cost := tables.F.At(state, t)
		if math.IsInf(cost, 1) {
			return nil, ErrNoSolution
		}
		p[t] = Step{
			Chord:    chord.Normalize(song[t]),
			Variant:  state,
			Centroid: tables.Layers[t][state],
			Cost:     cost,
		}
		state = tables.G[state][t]
	}

	return p, nil
}

// Dynamic runs Stage followed by Trace.
//
// Returns Result{Cost: +Inf} and ErrNoSolution when no playable path exists.
//
// Complexity: O(9·n) time, O(3·n) memory.
func Dynamic(song []string, src chord.Source, _ ...Option) (Result, error) {
	final, tables, err := Stage(song, src)
	if err != nil {
		return Result{Algorithm: AlgoDynamic, Cost: math.Inf(1)}, err
	}

	p, err := Trace(song, tables, final)
	if err != nil {
		return Result{Algorithm: AlgoDynamic, Cost: math.Inf(1)}, err
	}

	return Result{Algorithm: AlgoDynamic, Path: p, Cost: p.Total()}, nil
}
