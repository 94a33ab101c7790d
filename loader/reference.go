package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Reference column names, in order of preference.
const (
	ColumnL2       = "L2 distance"
	ColumnSqrtCost = "Sqrt(total cost)"
)

// ReferenceFile returns <dir>/sources/csv/<name>.csv.
func ReferenceFile(dir, name string) string {
	return filepath.Join(dir, "sources", "csv", name+".csv")
}

// LoadReference reads the expected sqrt(cumulative cost) series of a song.
//
// The column "L2 distance" is used when present, "Sqrt(total cost)"
// otherwise. Empty cells end the series.
//
// Errors: file errors, ErrNoReferenceColumn, ErrBadReference.
func LoadReference(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrNoReferenceColumn, filepath.Base(path))
	}

	col := findColumn(rows[0], ColumnL2)
	if col < 0 {
		col = findColumn(rows[0], ColumnSqrtCost)
	}
	if col < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoReferenceColumn, filepath.Base(path))
	}

	out := make([]float64, 0, len(rows)-1)
	for r, row := range rows[1:] {
		if col >= len(row) || cleanCell(row[col]) == "" {
			break
		}
		v, err := strconv.ParseFloat(cleanCell(row[col]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d = %q", ErrBadReference, r+2, row[col])
		}
		out = append(out, v)
	}

	return out, nil
}

func findColumn(header []string, name string) int {
	for i, col := range header {
		if strings.EqualFold(cleanCell(col), name) {
			return i
		}
	}
	return -1
}
