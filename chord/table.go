package chord

import (
	"fmt"
	"sort"
)

// Table maps normalized chord names to their placement records.
//
// A Table is filled once by a loader and then only read; concurrent reads
// are safe, concurrent Add is not.
type Table struct {
	records map[string]Record
	order   []string // insertion order, for stable listings
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{records: make(map[string]Record)}
}

// Add stores rec under the normalized form of name.
//
// Errors:
//   - ErrEmptyName      if name normalizes to "".
//   - ErrDuplicateChord if the normalized name is already present.
func (t *Table) Add(name string, rec Record) error {
	key := Normalize(name)
	if key == "" {
		return ErrEmptyName
	}
	if _, ok := t.records[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateChord, key)
	}
	t.records[key] = rec
	t.order = append(t.order, key)

	return nil
}

// Lookup returns the record of name (normalized before matching).
func (t *Table) Lookup(name string) (Record, error) {
	rec, ok := t.records[Normalize(name)]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrChordNotFound, name)
	}
	return rec, nil
}

// Has reports whether name is present.
func (t *Table) Has(name string) bool {
	_, ok := t.records[Normalize(name)]
	return ok
}

// Len returns the number of chords in the table.
func (t *Table) Len() int { return len(t.records) }

// Names returns the normalized chord names in insertion order.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// SortedNames returns the normalized chord names in lexical order.
func (t *Table) SortedNames() []string {
	out := t.Names()
	sort.Strings(out)
	return out
}

// Centroids extracts the centroids of name. It implements Source.
//
// Errors: ErrChordNotFound (wrapped with the name).
func (t *Table) Centroids(name string) (Centroids, error) {
	rec, err := t.Lookup(name)
	if err != nil {
		return Centroids{}, err
	}
	return Extract(&rec), nil
}
