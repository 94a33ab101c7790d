// Package config loads the fretpath.toml configuration.
//
// Every key is optional; Load starts from Default and overlays the file.
// A missing file yields the defaults. Relative paths are resolved against
// the directory of the file that was loaded.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"github.com/polynizer/fretpath/voicing"
)

// FileName is the configuration file looked up by default.
const FileName = "fretpath.toml"

// ErrBadConfig indicates a configuration value outside its domain.
var ErrBadConfig = errors.New("config: invalid configuration")

// Color modes accepted by Report.Color.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Config is the decoded configuration.
type Config struct {
	Library Library `toml:"library"`
	Solver  Solver  `toml:"solver"`
	Report  Report  `toml:"report"`
	Songs   []Song  `toml:"songs"`

	// Dir is the directory of the loaded file, "" for pure defaults.
	Dir string `toml:"-"`
}

// Library locates the input files.
type Library struct {
	Chords   string `toml:"chords"`
	SongsDir string `toml:"songs_dir"`
	CacheDir string `toml:"cache_dir"` // "" disables the table cache
}

// Solver holds the solver policy. TOML integers are 64-bit; Options and
// Counts convert them with overflow checks.
type Solver struct {
	MaxExhaustive        int64   `toml:"max_exhaustive"` // 0 = unbounded
	LiteralGreedyOpening bool    `toml:"literal_greedy_opening"`
	ChordCounts          []int64 `toml:"chord_counts"`
}

// Report holds the reporter settings.
type Report struct {
	Tolerance float64 `toml:"tolerance"`
	Color     string  `toml:"color"`
}

// Song is one entry of the song menu.
type Song struct {
	Name      string `toml:"name"`
	Reference string `toml:"reference"` // optional; relative to songs_dir
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Library: Library{
			Chords:   filepath.Join("lib", "chords", "guitar_dict.xlsx"),
			SongsDir: filepath.Join("lib", "songs"),
			CacheDir: ".fretpath-cache",
		},
		Solver: Solver{
			MaxExhaustive: 16,
			ChordCounts:   []int64{0, 5, 10, 15, 20},
		},
		Report: Report{
			Tolerance: 0.1,
			Color:     ColorAuto,
		},
		Songs: []Song{
			{Name: "Halsey"},
			{Name: "Metallica"},
			{Name: "Catch the Rainbow"},
			{Name: "Luis Miguel"},
		},
	}
}

// Load reads path over the defaults and validates the result.
//
// A missing file is not an error: Load returns Default with Dir set to the
// directory of path, so relative defaults resolve next to it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = FileName
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return cfg, err
	}
	cfg.Dir = filepath.Dir(abs)

	if _, err = toml.DecodeFile(abs, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports the first value outside its domain as ErrBadConfig.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Library.Chords) == "":
		return fmt.Errorf("%w: library.chords is empty", ErrBadConfig)
	case c.Solver.MaxExhaustive < 0:
		return fmt.Errorf("%w: solver.max_exhaustive = %d", ErrBadConfig, c.Solver.MaxExhaustive)
	case !(c.Report.Tolerance > 0):
		return fmt.Errorf("%w: report.tolerance = %g", ErrBadConfig, c.Report.Tolerance)
	}
	switch c.Report.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return fmt.Errorf("%w: report.color = %q", ErrBadConfig, c.Report.Color)
	}

	if _, err := c.Solver.Counts(); err != nil {
		return err
	}
	if _, err := c.Solver.Options(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(c.Songs))
	for i, s := range c.Songs {
		key := strings.ToLower(strings.TrimSpace(s.Name))
		if key == "" {
			return fmt.Errorf("%w: songs[%d].name is empty", ErrBadConfig, i)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate song %q", ErrBadConfig, s.Name)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// Options converts the solver policy into voicing options.
func (s Solver) Options() ([]voicing.Option, error) {
	maxLen, err := safecast.Conv[int](s.MaxExhaustive)
	if err != nil || maxLen < 0 {
		return nil, fmt.Errorf("%w: solver.max_exhaustive = %d", ErrBadConfig, s.MaxExhaustive)
	}
	opts := []voicing.Option{voicing.WithMaxExhaustive(maxLen)}
	if s.LiteralGreedyOpening {
		opts = append(opts, voicing.WithLiteralGreedyOpening())
	}
	return opts, nil
}

// Counts returns the chord counts offered by the menu, 0 meaning all chords.
func (s Solver) Counts() ([]int, error) {
	if len(s.ChordCounts) == 0 {
		return nil, fmt.Errorf("%w: solver.chord_counts is empty", ErrBadConfig)
	}
	out := make([]int, len(s.ChordCounts))
	seen := make(map[int]struct{}, len(s.ChordCounts))
	for i, n := range s.ChordCounts {
		v, err := safecast.Conv[int](n)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: solver.chord_counts[%d] = %d", ErrBadConfig, i, n)
		}
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("%w: solver.chord_counts repeats %d", ErrBadConfig, v)
		}
		seen[v] = struct{}{}
		out[i] = v
	}
	return out, nil
}

// Path resolves p against the directory of the configuration file.
func (c Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Dir == "" {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// ChordsPath returns the resolved chord table path.
func (c Config) ChordsPath() string { return c.Path(c.Library.Chords) }

// SongsDir returns the resolved songs directory.
func (c Config) SongsDir() string { return c.Path(c.Library.SongsDir) }

// CacheDir returns the resolved cache directory, "" when caching is off.
func (c Config) CacheDir() string { return c.Path(c.Library.CacheDir) }

// FindSong looks a song up by name, ignoring case and surrounding spaces.
func (c Config) FindSong(name string) (Song, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range c.Songs {
		if strings.ToLower(strings.TrimSpace(s.Name)) == key {
			return s, true
		}
	}
	return Song{}, false
}

// ReferencePath returns the configured reference of s resolved against the
// songs directory, or "" when none is configured.
func (c Config) ReferencePath(s Song) string {
	if s.Reference == "" {
		return ""
	}
	if filepath.IsAbs(s.Reference) {
		return s.Reference
	}
	return filepath.Join(c.SongsDir(), s.Reference)
}
