package chord

import (
	"errors"
	"math"
)

// Sentinel marks a variant that must never be chosen. It is larger than any
// centroid a playable variant can produce, so arithmetic on it only ever
// makes a path look worse.
const Sentinel = 10000.0

// Layout of a placement record.
const (
	// Variants is the fixed number of hand placements per chord.
	Variants = 3

	// GroupSize is the number of cells per variant: fret + six finger slots.
	GroupSize = 7

	// Fingers is the number of finger slots per variant.
	Fingers = GroupSize - 1

	// RecordSize is the total number of numeric cells in a Record.
	RecordSize = Variants * GroupSize

	// MaxFret is the highest raw fret value a playable variant may start on.
	MaxFret = 7
)

// Sentinel errors of the chord package.
var (
	// ErrEmptyName indicates a chord name that is empty after normalization.
	ErrEmptyName = errors.New("chord: empty chord name")

	// ErrDuplicateChord indicates two entries normalizing to the same name.
	ErrDuplicateChord = errors.New("chord: duplicate chord name")

	// ErrChordNotFound indicates a lookup of a chord the table does not hold.
	ErrChordNotFound = errors.New("chord: chord not found")
)

// Field is one numeric cell of a placement record. Present=false means the
// cell was empty in the source; an absent cell is never the same as zero.
type Field struct {
	Value   float64 `msgpack:"v"`
	Present bool    `msgpack:"p"`
}

// Val returns a present Field holding v.
func Val(v float64) Field { return Field{Value: v, Present: true} }

// None returns an absent Field.
func None() Field { return Field{} }

// Record is the raw placement data of one chord: three groups of seven cells
// [fret, finger1..finger6] at offsets 0, 7 and 14.
type Record [RecordSize]Field

// Group returns the seven cells of variant v (0..2).
func (r *Record) Group(v int) []Field {
	base := v * GroupSize
	return r[base : base+GroupSize]
}

// Centroids holds one scalar per variant; unplayable variants hold Sentinel.
type Centroids [Variants]float64

// Playable reports whether variant v can be chosen.
func (c Centroids) Playable(v int) bool {
	return v >= 0 && v < Variants && c[v] != Sentinel && !math.IsNaN(c[v])
}

// AnyPlayable reports whether at least one variant can be chosen.
func (c Centroids) AnyPlayable() bool {
	for v := 0; v < Variants; v++ {
		if c.Playable(v) {
			return true
		}
	}
	return false
}

// FirstPlayable returns the lowest playable variant index, or -1.
func (c Centroids) FirstPlayable() int {
	for v := 0; v < Variants; v++ {
		if c.Playable(v) {
			return v
		}
	}
	return -1
}

// Source supplies centroids by chord name. *Table and *Cache implement it.
type Source interface {
	Centroids(name string) (Centroids, error)
}
