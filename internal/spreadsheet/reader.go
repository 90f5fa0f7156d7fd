// Package spreadsheet is the xlsx collaborator: it reads Impress export
// workbooks into header-keyed rows and writes tabular artifacts (the
// error report, the rebuilt products sheet). All cell values are
// surfaced raw, so serial dates reach the parser as day counts rather
// than formatted strings.
package spreadsheet

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/JonMunkholm/hubsync/internal/schema"
)

// Workbook wraps an open xlsx file for row and raw-cell access.
type Workbook struct {
	f *excelize.File
}

// Open opens the workbook at path.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &Workbook{f: f}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Rows returns the named sheet as header-keyed rows. The first sheet row
// is the header; blank cells are omitted from each row map and fully
// blank rows are skipped, which is why downstream row numbers are only
// approximate.
func (w *Workbook) Rows(sheet string) ([]schema.Row, error) {
	raw, err := w.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	headers := raw[0]
	var rows []schema.Row
	for _, cells := range raw[1:] {
		row := schema.Row{}
		for i, cell := range cells {
			if i >= len(headers) {
				break
			}
			cell = strings.TrimSpace(cell)
			if cell == "" || headers[i] == "" {
				continue
			}
			row[headers[i]] = cell
		}
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// RawCell returns the raw value at the given one-indexed column and row,
// or "" for a blank cell.
func (w *Workbook) RawCell(sheet string, col, row int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	v, err := w.f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", fmt.Errorf("read cell %s!%s: %w", sheet, cell, err)
	}
	return strings.TrimSpace(v), nil
}

// ReadSheet opens path and returns the named sheet's rows.
func ReadSheet(path, sheet string) ([]schema.Row, error) {
	w, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer w.Close()
	return w.Rows(sheet)
}

// Duplicate copies the file at src to dst, overwriting dst. Used to back
// up a workbook before rewriting it in place.
func Duplicate(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}
