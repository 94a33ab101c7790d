package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polynizer/fretpath/chord"
	"github.com/polynizer/fretpath/chordgen"
	"github.com/polynizer/fretpath/report"
	"github.com/polynizer/fretpath/voicing"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare the algorithms on a random chord table and song",
	Long: `Bench generates a deterministic random chord table and song, runs the
selected algorithms on it and prints costs and timings. Exhaustive search is
bounded by solver.max_exhaustive from the configuration.`,
	Args: cobra.NoArgs,
	RunE: benchExecution,
}

func init() {
	def := chordgen.DefaultConfig()
	benchCmd.Flags().Int("length", 12, "number of chords in the song")
	benchCmd.Flags().Int("chords", def.Chords, "number of distinct chords in the table")
	benchCmd.Flags().Int64("seed", 1, "random seed")
	benchCmd.Flags().Float64("missing", def.MissingRate, "probability that variant 1 or 2 is absent")
	benchCmd.Flags().Float64("high-fret", def.HighFretRate, "probability that variant 1 or 2 starts above fret 7")
	benchCmd.Flags().Float64("first-high-fret", def.FirstHighFretRate, "probability that variant 0 starts above fret 7")
	benchCmd.Flags().Float64("blank", def.BlankRate, "probability that variant 0 has no played finger")
	benchCmd.Flags().Float64("dead", def.DeadRate, "probability that a chord has no playable variant")
	benchCmd.Flags().StringSlice("algo", nil, "algorithms to run (dp,exhaustive,greedy); default all")
	benchCmd.Flags().Bool("path", false, "print the chosen variant of every chord")
}

func benchExecution(cmd *cobra.Command, _ []string) error {
	var (
		gen chordgen.Config
		err error
	)
	if gen.Length, err = cmd.Flags().GetInt("length"); err != nil {
		return err
	}
	if gen.Chords, err = cmd.Flags().GetInt("chords"); err != nil {
		return err
	}
	if gen.Seed, err = cmd.Flags().GetInt64("seed"); err != nil {
		return err
	}
	if gen.MissingRate, err = cmd.Flags().GetFloat64("missing"); err != nil {
		return err
	}
	if gen.HighFretRate, err = cmd.Flags().GetFloat64("high-fret"); err != nil {
		return err
	}
	if gen.FirstHighFretRate, err = cmd.Flags().GetFloat64("first-high-fret"); err != nil {
		return err
	}
	if gen.BlankRate, err = cmd.Flags().GetFloat64("blank"); err != nil {
		return err
	}
	if gen.DeadRate, err = cmd.Flags().GetFloat64("dead"); err != nil {
		return err
	}
	algoNames, err := cmd.Flags().GetStringSlice("algo")
	if err != nil {
		return err
	}
	showPath, err := cmd.Flags().GetBool("path")
	if err != nil {
		return err
	}

	algos, err := parseAlgorithms(algoNames)
	if err != nil {
		return err
	}
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	opts, err := a.cfg.Solver.Options()
	if err != nil {
		return err
	}

	tbl, song, err := chordgen.Generate(gen)
	if err != nil {
		return err
	}
	a.log.Info("Generated %d chords, song of %d (seed %d).", tbl.Len(), len(song), gen.Seed)

	runs, err := voicing.Compare(cmd.Context(), song, chord.NewCache(tbl), algos, opts...)
	if err != nil {
		return err
	}
	return report.Text(a.out, runs, report.Options{
		Song:     fmt.Sprintf("random (seed %d, %d chords)", gen.Seed, len(song)),
		Color:    a.color,
		HidePath: !showPath,
	})
}
