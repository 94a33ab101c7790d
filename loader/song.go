package loader

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/polynizer/fretpath/chord"
)

// Catalog answers whether a chord is known. *chord.Table implements it.
type Catalog interface {
	Has(name string) bool
}

// Song is a chord sequence ready for the solvers.
type Song struct {
	// Name is the song title as configured.
	Name string

	// Chords holds the normalized chord names known to the table, in order.
	Chords []string

	// Dropped holds the normalized names that the table does not know.
	Dropped []string
}

// SongFile returns the path of a song file inside dir: <name>.txt when count
// is 0, <name>_<count>.txt otherwise.
func SongFile(dir, name string, count int) string {
	if count == 0 {
		return filepath.Join(dir, name+".txt")
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%d.txt", name, count))
}

// LoadSong reads one chord per line from path and keeps those cat knows.
//
// Blank lines are skipped; names are normalized with chord.Normalize.
//
// Errors: file errors, or ErrNoValidChords when nothing is left.
func LoadSong(path string, cat Catalog) (Song, error) {
	f, err := os.Open(path)
	if err != nil {
		return Song{}, fmt.Errorf("open song: %w", err)
	}
	defer f.Close()

	var song Song
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := chord.Normalize(cleanCell(scanner.Text()))
		if name == "" {
			continue
		}
		if cat.Has(name) {
			song.Chords = append(song.Chords, name)
		} else {
			song.Dropped = append(song.Dropped, name)
		}
	}
	if err = scanner.Err(); err != nil {
		return Song{}, fmt.Errorf("scan song: %w", err)
	}
	if len(song.Chords) == 0 {
		return song, fmt.Errorf("%w: %s", ErrNoValidChords, filepath.Base(path))
	}

	return song, nil
}
