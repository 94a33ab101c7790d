package loader

import "errors"

// Sentinel errors of the loader package.
var (
	// ErrUnsupportedFormat indicates a chord table that is neither .xlsx nor .csv.
	ErrUnsupportedFormat = errors.New("loader: unsupported table format")

	// ErrEmptyTable indicates a table without a header row or without chords.
	ErrEmptyTable = errors.New("loader: empty chord table")

	// ErrBadCell indicates a record cell that is not a number.
	ErrBadCell = errors.New("loader: bad numeric cell")

	// ErrNoValidChords indicates a song with no chord known to the table.
	ErrNoValidChords = errors.New("loader: no valid chords in song")

	// ErrNoReferenceColumn indicates a reference file lacking both known columns.
	ErrNoReferenceColumn = errors.New("loader: no reference column")

	// ErrBadReference indicates a reference value that is not a number.
	ErrBadReference = errors.New("loader: bad reference value")
)
