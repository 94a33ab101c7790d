// Package main implements the fretpath CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "fretpath",
	Short: "Pick guitar chord variants with the least hand movement",
	Long: `fretpath chooses one placement per chord of a song so that the summed
squared change of hand position is minimal, and compares dynamic
programming, brute force and greedy selection on the same song.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(songsCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "configuration file (default ./fretpath.toml)")
	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off); overrides report.color")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress progress output")
}

// main executes the root command; any command error exits with status 1.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
