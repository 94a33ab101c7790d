package chordgen_test

import (
	"testing"

	"github.com/polynizer/fretpath/chord"
	"github.com/polynizer/fretpath/chordgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Deterministic(t *testing.T) {
	cfg := chordgen.DefaultConfig()
	cfg.Seed = 7

	t1, s1, err := chordgen.Generate(cfg)
	require.NoError(t, err)
	t2, s2, err := chordgen.Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, s1, s2)
	for _, name := range t1.Names() {
		r1, err := t1.Lookup(name)
		require.NoError(t, err)
		r2, err := t2.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, r1, r2, "record %s", name)
	}
}

func TestGenerate_Shape(t *testing.T) {
	cfg := chordgen.DefaultConfig()
	cfg.Chords, cfg.Length = 5, 30

	tbl, song, err := chordgen.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, tbl.Len())
	assert.Len(t, song, 30)
	for _, name := range song {
		assert.True(t, tbl.Has(name))
		c, err := tbl.Centroids(name)
		require.NoError(t, err)
		assert.True(t, c.Playable(0), "variant 0 is always playable when DeadRate=0")
	}
}

func TestGenerate_DeadChords(t *testing.T) {
	cfg := chordgen.DefaultConfig()
	cfg.DeadRate = 1

	tbl, _, err := chordgen.Generate(cfg)
	require.NoError(t, err)
	for _, name := range tbl.Names() {
		c, err := tbl.Centroids(name)
		require.NoError(t, err)
		assert.False(t, c.AnyPlayable(), "chord %s", name)
	}
}

func TestGenerate_SeedsDiffer(t *testing.T) {
	a := chordgen.DefaultConfig()
	a.Seed, a.Length = 1, 40
	b := a
	b.Seed = 2

	_, s1, err := chordgen.Generate(a)
	require.NoError(t, err)
	_, s2, err := chordgen.Generate(b)
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)
}

func TestConfig_Validate(t *testing.T) {
	bad := []func(*chordgen.Config){
		func(c *chordgen.Config) { c.Chords = 0 },
		func(c *chordgen.Config) { c.Length = 0 },
		func(c *chordgen.Config) { c.MissingRate = -0.1 },
		func(c *chordgen.Config) { c.HighFretRate = 1.5 },
		func(c *chordgen.Config) { c.DeadRate = 2 },
		func(c *chordgen.Config) { c.FirstHighFretRate = -1 },
		func(c *chordgen.Config) { c.BlankRate = 1.01 },
	}
	for i, mutate := range bad {
		cfg := chordgen.DefaultConfig()
		mutate(&cfg)
		_, _, err := chordgen.Generate(cfg)
		assert.ErrorIs(t, err, chordgen.ErrBadConfig, "case %d", i)
	}
}

func TestGenerate_NoMissingBlockOnPresentVariants(t *testing.T) {
	cfg := chordgen.DefaultConfig()
	cfg.MissingRate, cfg.HighFretRate = 0, 0

	tbl, _, err := chordgen.Generate(cfg)
	require.NoError(t, err)
	for _, name := range tbl.Names() {
		c, err := tbl.Centroids(name)
		require.NoError(t, err)
		for v := 0; v < chord.Variants; v++ {
			assert.True(t, c.Playable(v), "chord %s variant %d", name, v)
		}
	}
}

func TestGenerate_FirstVariantUnplayable(t *testing.T) {
	cfg := chordgen.DefaultConfig()
	cfg.FirstHighFretRate = 1

	tbl, _, err := chordgen.Generate(cfg)
	require.NoError(t, err)
	for _, name := range tbl.Names() {
		c, err := tbl.Centroids(name)
		require.NoError(t, err)
		assert.False(t, c.Playable(0), "chord %s", name)
	}
}

func TestGenerate_BlankFirstVariant(t *testing.T) {
	cfg := chordgen.DefaultConfig()
	cfg.BlankRate = 1

	tbl, _, err := chordgen.Generate(cfg)
	require.NoError(t, err)
	for _, name := range tbl.Names() {
		c, err := tbl.Centroids(name)
		require.NoError(t, err)
		assert.Equal(t, 0.0, c[0], "chord %s has a zero-divisor opening", name)
		assert.True(t, c.Playable(0), "chord %s", name)
	}
}
