package voicing

import (
	"fmt"
	"math"

	"github.com/polynizer/fretpath/chord"
)

// costTol is the tolerance used when re-checking cumulative costs.
const costTol = 1e-9

// layers resolves the centroids of every chord of song, in order.
//
// Errors:
//   - ErrEmptySequence if len(song)==0.
//   - ErrNilSource     if src==nil.
//   - wrapped chord.ErrChordNotFound for a chord src does not know.
//
// Complexity: O(n) source lookups.
func layers(song []string, src chord.Source) ([]chord.Centroids, error) {
	if len(song) == 0 {
		return nil, ErrEmptySequence
	}
	if src == nil {
		return nil, ErrNilSource
	}

	out := make([]chord.Centroids, len(song))
	for i, name := range song {
		c, err := src.Centroids(name)
		if err != nil {
			return nil, fmt.Errorf("voicing: position %d: %w", i, err)
		}
		out[i] = c
	}

	return out, nil
}

// transition is the edge cost between two consecutive centroids.
func transition(prev, curr float64) float64 {
	d := curr - prev
	return d * d
}

// buildPath materializes a Path from per-position variant choices,
// accumulating costs left to right (the same order the solvers sum in).
func buildPath(song []string, ls []chord.Centroids, choices []int) Path {
	p := make(Path, len(song))
	var cum float64
	for i, v := range choices {
		c := ls[i][v]
		if i > 0 {
			cum += transition(ls[i-1][choices[i-1]], c)
		}
		p[i] = Step{Chord: chord.Normalize(song[i]), Variant: v, Centroid: c, Cost: cum}
	}
	return p
}

// PathCost recomputes the total cost of p from its centroids:
// Σ (centroid_i − centroid_{i−1})² over consecutive steps.
//
// Complexity: O(len(p)).
func PathCost(p Path) float64 {
	var sum float64
	for i := 1; i < len(p); i++ {
		sum += transition(p[i-1].Centroid, p[i].Centroid)
	}
	return sum
}

// ValidatePath checks p against song and src:
//  1. one step per chord, same (normalized) chord names;
//  2. every chosen variant is playable and its centroid matches src;
//  3. cumulative costs start at 0 and grow by exactly each transition.
//
// All failures wrap ErrInvalidPath.
//
// Complexity: O(n) source lookups.
func ValidatePath(song []string, src chord.Source, p Path) error {
	ls, err := layers(song, src)
	if err != nil {
		return err
	}
	if len(p) != len(song) {
		return fmt.Errorf("%w: %d steps for %d chords", ErrInvalidPath, len(p), len(song))
	}

	var cum float64
	for i, st := range p {
		if st.Chord != chord.Normalize(song[i]) {
			return fmt.Errorf("%w: step %d is %q, song has %q", ErrInvalidPath, i, st.Chord, song[i])
		}
		if !ls[i].Playable(st.Variant) {
			return fmt.Errorf("%w: step %d selects unplayable variant %d", ErrInvalidPath, i, st.Variant)
		}
		if st.Centroid != ls[i][st.Variant] {
			return fmt.Errorf("%w: step %d centroid %v, want %v", ErrInvalidPath, i, st.Centroid, ls[i][st.Variant])
		}
		if i > 0 {
			cum += transition(p[i-1].Centroid, st.Centroid)
		}
		if math.Abs(st.Cost-cum) > costTol*math.Max(1, cum) {
			return fmt.Errorf("%w: step %d cumulative cost %v, want %v", ErrInvalidPath, i, st.Cost, cum)
		}
	}

	return nil
}
