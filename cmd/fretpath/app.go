package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/polynizer/fretpath/chord"
	"github.com/polynizer/fretpath/config"
	"github.com/polynizer/fretpath/console"
	"github.com/polynizer/fretpath/loader"
	"github.com/polynizer/fretpath/report"
	"github.com/polynizer/fretpath/voicing"
)

// app bundles what every command needs: configuration, logger and output.
type app struct {
	cfg   config.Config
	log   *console.Logger
	out   io.Writer
	color bool
}

// newApp reads the persistent flags and loads the configuration.
func newApp(cmd *cobra.Command) (*app, error) {
	cfgPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	colorValue, err := cmd.Flags().GetString("color")
	if err != nil {
		return nil, err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if colorValue == "" {
		colorValue = cfg.Report.Color
	}
	mode, err := readColorMode(colorValue)
	if err != nil {
		return nil, err
	}
	useColor := shouldColor(mode)

	return &app{
		cfg:   cfg,
		log:   console.New(cmd.ErrOrStderr(), console.WithColor(useColor), console.WithQuiet(quiet)),
		out:   cmd.OutOrStdout(),
		color: useColor,
	}, nil
}

// loadTable reads the chord table through the snapshot cache.
func (a *app) loadTable() (*chord.Table, error) {
	a.log.Info("Loading chord dictionary...")

	cache, err := loader.OpenTableCache(a.cfg.CacheDir())
	if err != nil {
		a.log.Warn("table cache disabled: %v", err)
		cache = nil
	}
	tbl, hit, err := cache.Load(a.cfg.ChordsPath())
	if err != nil {
		return nil, fmt.Errorf("loading chord dictionary: %w", err)
	}
	if hit {
		a.log.Success("Chord data loaded from cache (%d chords).", tbl.Len())
	} else {
		a.log.Success("Chord data loaded successfully (%d chords).", tbl.Len())
	}
	return tbl, nil
}

// runRequest describes one solve of a configured song.
type runRequest struct {
	song   string
	count  int
	algos  []voicing.Algorithm
	format string
	verify bool
}

// run loads the song, solves it with every requested strategy and renders
// the report.
func (a *app) run(ctx context.Context, req runRequest) error {
	song, ok := a.cfg.FindSong(req.song)
	if !ok {
		// Songs outside the menu still load from songs_dir.
		song = config.Song{Name: req.song}
	}
	if req.count == 0 {
		a.log.Info("Running algorithms for song %s using all chords...", song.Name)
	} else {
		a.log.Info("Running algorithms for song %s using %d chords...", song.Name, req.count)
	}

	tbl, err := a.loadTable()
	if err != nil {
		return err
	}

	a.log.Info("Loading song file...")
	s, err := loader.LoadSong(loader.SongFile(a.cfg.SongsDir(), song.Name, req.count), tbl)
	if len(s.Dropped) > 0 {
		a.log.Warn("Dropped %d chord(s) missing from the dictionary: %s", len(s.Dropped), strings.Join(s.Dropped, ", "))
	}
	if err != nil {
		return err
	}
	s.Name = song.Name
	a.log.Success("Song file loaded successfully (%d chords).", len(s.Chords))

	var ref []float64
	if req.verify {
		ref = a.reference(song)
	}

	opts, err := a.cfg.Solver.Options()
	if err != nil {
		return err
	}
	runs, err := voicing.Compare(ctx, s.Chords, chord.NewCache(tbl), req.algos, opts...)
	if err != nil {
		return err
	}
	for _, r := range runs {
		switch {
		case r.Err == nil:
			a.log.Success("%s completed in %.2f ms.", r.Algorithm.Title(), r.Elapsed.Seconds()*1000)
		case errors.Is(r.Err, voicing.ErrSequenceTooLong):
			a.log.Warn("%s skipped: %d chords exceed solver.max_exhaustive.", r.Algorithm.Title(), len(s.Chords))
		default:
			a.log.Error("%s found no playable path.", r.Algorithm.Title())
		}
	}

	ropts := report.Options{
		Song:      s.Name,
		Reference: ref,
		Tolerance: a.cfg.Report.Tolerance,
		Dropped:   s.Dropped,
		Color:     a.color,
	}
	if req.format == "json" {
		return report.JSON(a.out, runs, ropts)
	}
	return report.Text(a.out, runs, ropts)
}

// reference loads the reference series of song, or returns nil with a
// warning when there is none.
func (a *app) reference(song config.Song) []float64 {
	path := a.cfg.ReferencePath(song)
	if path == "" {
		path = loader.ReferenceFile(a.cfg.SongsDir(), song.Name)
	}
	ref, err := loader.LoadReference(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			a.log.Info("No reference series for %s; skipping verification.", song.Name)
		} else {
			a.log.Warn("Reference series unusable: %v", err)
		}
		return nil
	}
	return ref
}

// parseAlgorithms maps CLI names to algorithms, keeping order and dropping
// repeats. An empty list selects every algorithm.
func parseAlgorithms(names []string) ([]voicing.Algorithm, error) {
	var out []voicing.Algorithm
	seen := make(map[voicing.Algorithm]bool)
	for _, n := range names {
		a, err := voicing.ParseAlgorithm(n)
		if err != nil {
			return nil, err
		}
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		return append([]voicing.Algorithm(nil), voicing.Algorithms...), nil
	}
	return out, nil
}
