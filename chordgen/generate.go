// Package chordgen builds deterministic, random chord tables and songs.
//
// It feeds the property tests of package voicing (DP against the exhaustive
// oracle), the benchmarks and the `fretpath bench` command.
//
// Usage:
//
//	cfg := chordgen.DefaultConfig()
//	cfg.Seed, cfg.Length = 42, 8
//	tbl, song, err := chordgen.Generate(cfg)
package chordgen

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/polynizer/fretpath/chord"
)

// ErrBadConfig indicates a Config value outside its domain.
var ErrBadConfig = errors.New("chordgen: invalid config")

// Stream ids, so table and song draws stay independent.
const (
	streamTable uint64 = iota + 1
	streamSong
)

// Config controls Generate.
//
//   - Chords: number of distinct chords in the table (≥ 1).
//   - Length: number of positions in the song (≥ 1).
//   - Seed: RNG seed; 0 selects the package default.
//   - MissingRate: probability that variant 1 or 2 is absent (0..1).
//   - HighFretRate: probability that a present variant 1 or 2 starts above
//     fret 7 and is therefore unplayable (0..1).
//   - FirstHighFretRate: the same for variant 0 (0..1). With both this and
//     DeadRate at 0 every chord keeps a playable variant 0.
//   - BlankRate: probability that variant 0 has a fret but no played finger,
//     which yields centroid 0 (0..1).
//   - DeadRate: probability that a chord has no playable variant (0..1).
type Config struct {
	Chords            int
	Length            int
	Seed              int64
	MissingRate       float64
	HighFretRate      float64
	FirstHighFretRate float64
	BlankRate         float64
	DeadRate          float64
}

// DefaultConfig returns a small, always-solvable configuration.
func DefaultConfig() Config {
	return Config{
		Chords:            12,
		Length:            8,
		Seed:              0,
		MissingRate:       0.25,
		HighFretRate:      0.2,
		FirstHighFretRate: 0,
		BlankRate:         0,
		DeadRate:          0,
	}
}

// Validate checks cfg for out-of-domain values.
func (cfg Config) Validate() error {
	switch {
	case cfg.Chords < 1:
		return fmt.Errorf("%w: Chords=%d", ErrBadConfig, cfg.Chords)
	case cfg.Length < 1:
		return fmt.Errorf("%w: Length=%d", ErrBadConfig, cfg.Length)
	case !isProbability(cfg.MissingRate):
		return fmt.Errorf("%w: MissingRate=%v", ErrBadConfig, cfg.MissingRate)
	case !isProbability(cfg.HighFretRate):
		return fmt.Errorf("%w: HighFretRate=%v", ErrBadConfig, cfg.HighFretRate)
	case !isProbability(cfg.FirstHighFretRate):
		return fmt.Errorf("%w: FirstHighFretRate=%v", ErrBadConfig, cfg.FirstHighFretRate)
	case !isProbability(cfg.BlankRate):
		return fmt.Errorf("%w: BlankRate=%v", ErrBadConfig, cfg.BlankRate)
	case !isProbability(cfg.DeadRate):
		return fmt.Errorf("%w: DeadRate=%v", ErrBadConfig, cfg.DeadRate)
	}
	return nil
}

// Generate returns a random table of cfg.Chords chords named "c0", "c1", …
// and a song of cfg.Length positions drawn from it.
//
// Complexity: O(Chords + Length).
func Generate(cfg Config) (*chord.Table, []string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	tr := stream(cfg.Seed, streamTable)
	tbl := chord.NewTable()
	for i := 0; i < cfg.Chords; i++ {
		if err := tbl.Add(fmt.Sprintf("c%d", i), randomRecord(tr, cfg)); err != nil {
			return nil, nil, err
		}
	}

	sr := stream(cfg.Seed, streamSong)
	names := tbl.Names()
	song := make([]string, cfg.Length)
	for i := range song {
		song[i] = names[sr.IntN(len(names))]
	}

	return tbl, song, nil
}

// randomRecord draws one 21-cell record.
func randomRecord(r *rand.Rand, cfg Config) chord.Record {
	var rec chord.Record
	dead := r.Float64() < cfg.DeadRate

	for v := 0; v < chord.Variants; v++ {
		if v > 0 && r.Float64() < cfg.MissingRate {
			continue // whole placement absent
		}
		g := rec.Group(v)

		// Fret: 1..MaxFret, pushed above MaxFret for unplayable variants.
		highRate := cfg.HighFretRate
		if v == 0 {
			highRate = cfg.FirstHighFretRate
		}
		fret := 1 + r.IntN(chord.MaxFret)
		if dead || r.Float64() < highRate {
			fret = chord.MaxFret + 1 + r.IntN(5)
		}
		g[0] = chord.Val(float64(fret))

		if v == 0 && r.Float64() < cfg.BlankRate {
			continue // no finger played
		}

		// Fingers: the first slot is always played so the placement is not
		// mistaken for a missing one; the rest are played with p = 0.7.
		g[1] = chord.Val(float64(1 + r.IntN(4)))
		for s := 2; s < chord.GroupSize; s++ {
			if r.Float64() < 0.7 {
				g[s] = chord.Val(float64(1 + r.IntN(4)))
			}
		}
	}

	return rec
}

func isProbability(p float64) bool { return p >= 0 && p <= 1 }
