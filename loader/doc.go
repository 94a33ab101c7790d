// Package loader reads the on-disk inputs of fretpath: the chord table, song
// files and reference cost series.
//
// Chord table:
//
//	name | fret f1 f2 f3 f4 f5 f6 | fret f1 … f6 | fret f1 … f6
//	-----+------------------------+--------------+-------------
//	Am   |  1   0  2  2  1  0  –  |  5   …       |   –   …
//
//	The first row is a header. The first column is the chord name, the next
//	21 columns are the placement record. Empty cells are absent, not zero.
//	Both .xlsx (first sheet) and .csv are accepted.
//
// Songs:
//
//	<songs_dir>/<Name>.txt        every chord of the song
//	<songs_dir>/<Name>_<N>.txt    the first N chords
//
//	One chord per line. Chords the table does not know are dropped and
//	reported on Song.Dropped.
//
// References:
//
//	<songs_dir>/sources/csv/<Name>.csv, column "L2 distance" or, failing
//	that, "Sqrt(total cost)".
//
// TableCache stores parsed tables as msgpack snapshots so that large
// spreadsheets are decoded once per modification.
package loader
