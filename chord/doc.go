// Package chord holds the chord table and the centroid extractor.
//
// What is a centroid?
//
//	Every chord in the table has up to three variants (alternative hand
//	placements). A variant is stored as seven numeric cells:
//	[fret, finger1 … finger6]. The centroid collapses a variant into one
//	scalar, the average hand position on the neck:
//
//	    centroid = Σ (fret-1 + finger) / (#played fingers)
//
//	Unplayed finger slots (absent cells) neither contribute to the sum nor
//	count towards the divisor. Variants that cannot be played carry the
//	Sentinel value instead.
//
// Data flow:
//
//	Record (21 cells) ──Extract──▶ Centroids [3]float64 ──▶ voicing solvers
//
// The Table normalizes chord names (NFKC, trimmed, collapsed whitespace,
// lower case) before storing or looking them up. Cache memoizes Extract per
// chord and is safe for concurrent readers.
//
// Errors:
//
//	ErrEmptyName      - a chord name normalizes to "".
//	ErrDuplicateChord - two rows normalize to the same name.
//	ErrChordNotFound  - lookup of a name the table does not hold.
package chord
