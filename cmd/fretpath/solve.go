package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve --song NAME",
	Short: "Solve a song and print the chosen variants",
	Long: `Solve loads <songs_dir>/<NAME>.txt (or <NAME>_<N>.txt with --chords N),
runs the selected algorithms and prints the chosen variant per chord. When a
reference series exists under sources/csv the costs are verified against it.`,
	Args: cobra.NoArgs,
	RunE: solveExecution,
}

func init() {
	solveCmd.Flags().String("song", "", "song name (see `fretpath songs`)")
	solveCmd.Flags().Int("chords", 0, "number of chords to use, 0 for all")
	solveCmd.Flags().StringSlice("algo", nil, "algorithms to run (dp,exhaustive,greedy); default all")
	solveCmd.Flags().String("format", "text", "output format (text|json)")
	solveCmd.Flags().Bool("no-verify", false, "skip the reference series check")
	_ = solveCmd.MarkFlagRequired("song")
}

func solveExecution(cmd *cobra.Command, _ []string) error {
	songName, err := cmd.Flags().GetString("song")
	if err != nil {
		return err
	}
	count, err := cmd.Flags().GetInt("chords")
	if err != nil {
		return err
	}
	algoNames, err := cmd.Flags().GetStringSlice("algo")
	if err != nil {
		return err
	}
	format, err := readFormat(cmd)
	if err != nil {
		return err
	}
	noVerify, err := cmd.Flags().GetBool("no-verify")
	if err != nil {
		return err
	}

	if count < 0 {
		return fmt.Errorf("--chords must be >= 0, got %d", count)
	}
	algos, err := parseAlgorithms(algoNames)
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	return a.run(cmd.Context(), runRequest{
		song:   songName,
		count:  count,
		algos:  algos,
		format: format,
		verify: !noVerify,
	})
}

// readFormat returns the lower-cased --format flag, rejecting anything but
// text and json.
func readFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", err
	}
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "text", "json":
		return format, nil
	default:
		return "", fmt.Errorf("unsupported format %q (must be text or json)", format)
	}
}
