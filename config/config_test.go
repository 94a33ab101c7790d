package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polynizer/fretpath/config"
)

func write(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(filepath.Join(dir, "nope.toml"))
	require.NoError(t, err)

	def := config.Default()
	assert.Equal(t, def.Solver, cfg.Solver)
	assert.Equal(t, def.Songs, cfg.Songs)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, filepath.Join(dir, "lib", "chords", "guitar_dict.xlsx"), cfg.ChordsPath())
	assert.NoError(t, def.Validate())
}

func TestLoad_OverlaysFile(t *testing.T) {
	p := write(t, `
[library]
chords = "/data/chords.csv"
songs_dir = "songs"
cache_dir = ""

[solver]
max_exhaustive = 10
literal_greedy_opening = true
chord_counts = [0, 8]

[report]
tolerance = 0.25
color = "off"

[[songs]]
name = "Halsey"
reference = "ref/halsey.csv"
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, "/data/chords.csv", cfg.ChordsPath())
	assert.Equal(t, filepath.Join(filepath.Dir(p), "songs"), cfg.SongsDir())
	assert.Equal(t, "", cfg.CacheDir())
	assert.Equal(t, 0.25, cfg.Report.Tolerance)
	assert.Equal(t, config.ColorOff, cfg.Report.Color)

	counts, err := cfg.Solver.Counts()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 8}, counts)

	opts, err := cfg.Solver.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	require.Len(t, cfg.Songs, 1)
	song, ok := cfg.FindSong("  halsey ")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(cfg.SongsDir(), "ref", "halsey.csv"), cfg.ReferencePath(song))

	_, ok = cfg.FindSong("Metallica")
	assert.False(t, ok)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(write(t, "[report]\ncolor = \"on\"\n"))
	require.NoError(t, err)
	assert.Equal(t, config.ColorOn, cfg.Report.Color)
	assert.Equal(t, 0.1, cfg.Report.Tolerance)
	assert.Equal(t, int64(16), cfg.Solver.MaxExhaustive)
	assert.Len(t, cfg.Songs, 4)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"negative max":    "[solver]\nmax_exhaustive = -1\n",
		"zero tolerance":  "[report]\ntolerance = 0.0\n",
		"bad color":       "[report]\ncolor = \"sometimes\"\n",
		"negative count":  "[solver]\nchord_counts = [0, -5]\n",
		"repeated count":  "[solver]\nchord_counts = [5, 5]\n",
		"empty counts":    "[solver]\nchord_counts = []\n",
		"empty song name": "[[songs]]\nname = \" \"\n",
		"duplicate song":  "[[songs]]\nname = \"A\"\n[[songs]]\nname = \"a\"\n",
		"empty chords":    "[library]\nchords = \"\"\n",
	}
	for name, body := range cases {
		_, err := config.Load(write(t, body))
		assert.ErrorIs(t, err, config.ErrBadConfig, name)
	}

	_, err := config.Load(write(t, "[solver\n"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrBadConfig)
}

func TestReferencePath(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "", cfg.ReferencePath(config.Song{Name: "x"}))
	assert.Equal(t, "/abs.csv", cfg.ReferencePath(config.Song{Name: "x", Reference: "/abs.csv"}))
	assert.Equal(t, "rel", cfg.Path("rel"), "no Dir means no resolution")
}
