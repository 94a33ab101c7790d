// Package voicing_test - helpers shared across *_test.go files.
package voicing_test

import (
	"fmt"

	"github.com/polynizer/fretpath/chord"
)

const (
	// S is the sentinel, shortened for centroid literals.
	S = chord.Sentinel

	// epsCost is the tolerance for comparing optimal costs across solvers.
	epsCost = 1e-9
)

// fixed is a chord.Source backed by literal centroids.
type fixed map[string]chord.Centroids

func (f fixed) Centroids(name string) (chord.Centroids, error) {
	c, ok := f[chord.Normalize(name)]
	if !ok {
		return chord.Centroids{}, fmt.Errorf("%w: %q", chord.ErrChordNotFound, name)
	}
	return c, nil
}

// scenario is the two-chord table used throughout:
// a = {2, –, –}, b = {2, 5, –}.
func scenario() fixed {
	return fixed{
		"a": {2, S, S},
		"b": {2, 5, S},
	}
}
