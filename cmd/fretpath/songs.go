package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/polynizer/fretpath/loader"
)

var songsCmd = &cobra.Command{
	Use:   "songs",
	Short: "List the configured songs and their chord-count files",
	Args:  cobra.NoArgs,
	RunE:  songsExecution,
}

func songsExecution(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	counts, err := a.cfg.Solver.Counts()
	if err != nil {
		return err
	}

	dir := a.cfg.SongsDir()
	for i, s := range a.cfg.Songs {
		var avail []string
		for _, n := range counts {
			if !exists(loader.SongFile(dir, s.Name, n)) {
				continue
			}
			if n == 0 {
				avail = append(avail, "all")
			} else {
				avail = append(avail, fmt.Sprint(n))
			}
		}
		if len(avail) == 0 {
			avail = []string{"no song files"}
		}

		ref := a.cfg.ReferencePath(s)
		if ref == "" {
			ref = loader.ReferenceFile(dir, s.Name)
		}
		mark := ""
		if exists(ref) {
			mark = " [reference]"
		}
		fmt.Fprintf(a.out, "%d. %s (%s)%s\n", i+1, s.Name, strings.Join(avail, ", "), mark)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
