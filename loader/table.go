package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/polynizer/fretpath/chord"
)

// LoadTable reads a chord table from path, dispatching on the extension.
//
// Errors:
//   - ErrUnsupportedFormat for anything but .xlsx and .csv.
//   - ErrEmptyTable if the file holds no header or no chord rows.
//   - ErrBadCell (wrapped with the cell reference) for non-numeric cells.
//   - chord.ErrDuplicateChord for two rows with the same normalized name.
func LoadTable(path string) (*chord.Table, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSX(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
	if err != nil {
		return nil, err
	}

	tbl, err := ParseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return tbl, nil
}

// ParseRows builds a Table from raw string rows, header first.
//
// Rows with an empty name are skipped. Short rows are padded with absent
// cells; cells beyond the 21st are ignored.
func ParseRows(rows [][]string) (*chord.Table, error) {
	if len(rows) < 2 {
		return nil, ErrEmptyTable
	}

	tbl := chord.NewTable()
	for r, row := range rows[1:] {
		if len(row) == 0 || chord.Normalize(cleanCell(row[0])) == "" {
			continue
		}

		var rec chord.Record
		for i := 0; i < chord.RecordSize && i+1 < len(row); i++ {
			f, err := parseCell(row[i+1])
			if err != nil {
				// +2: one for the header, one for 1-based rows.
				return nil, cellError(r+2, i+2, row[i+1])
			}
			rec[i] = f
		}

		if err := tbl.Add(row[0], rec); err != nil {
			return nil, fmt.Errorf("row %d: %w", r+2, err)
		}
	}
	if tbl.Len() == 0 {
		return nil, ErrEmptyTable
	}

	return tbl, nil
}

// parseCell maps an empty or NaN cell to an absent Field.
func parseCell(s string) (chord.Field, error) {
	s = cleanCell(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return chord.None(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return chord.None(), err
	}
	return chord.Val(v), nil
}

// cellError names the offending cell the way a spreadsheet would ("C4").
func cellError(row, col int, raw string) error {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		ref = fmt.Sprintf("R%dC%d", row, col)
	}
	return fmt.Errorf("%w: %s = %q", ErrBadCell, ref, raw)
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrEmptyTable)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}

func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "\ufeff")
	return v
}
