// Package source loads the data of a chart from CSV files and from sheets
// of XLSX workbooks.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	charts "github.com/midbel/chartkit"
	"github.com/xuri/excelize/v2"
)

var (
	ErrFormat = errors.New("unsupported file format")
	ErrColumn = errors.New("column out of range")
	ErrSheet  = errors.New("sheet not found")
)

// Columns tells which columns of a file hold the data. A negative Label
// means rows have no label. X is only used when reading points.
type Columns struct {
	Label  int
	X      int
	Value  int
	Header bool
}

// DefaultColumns reads labels from the first column and values from the
// second one, skipping the header row.
func DefaultColumns() Columns {
	return Columns{
		Label:  0,
		X:      0,
		Value:  1,
		Header: true,
	}
}

// ReadRows reads all rows of file. The format is chosen from the file
// extension. For workbooks, the rows are taken from sheet or from the first
// sheet when sheet is empty.
func ReadRows(file, sheet string) ([][]string, error) {
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".csv", ".txt":
		r, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return ReadCSV(r)
	case ".xlsx", ".xlsm":
		return ReadXLSX(file, sheet)
	default:
		return nil, fmt.Errorf("%s: %w", ext, ErrFormat)
	}
}

func ReadCSV(r io.Reader) ([][]string, error) {
	rs := csv.NewReader(r)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func ReadXLSX(file, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	list := f.GetSheetList()
	if sheet == "" {
		if len(list) == 0 {
			return nil, fmt.Errorf("%s: %w", file, ErrSheet)
		}
		sheet = list[0]
	} else {
		idx, err := f.GetSheetIndex(sheet)
		if err != nil {
			return nil, err
		}
		if idx < 0 {
			return nil, fmt.Errorf("%s: %w", sheet, ErrSheet)
		}
	}
	return f.GetRows(sheet)
}

// Series converts rows into a series. Empty rows are skipped.
func Series(rows [][]string, cols Columns) (charts.Series[float64], error) {
	var series charts.Series[float64]
	for i, row := range body(rows, cols) {
		if isBlank(row) {
			continue
		}
		value, err := parseCell(row, cols.Value)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNumber(i, cols), err)
		}
		var label string
		if cols.Label >= 0 && cols.Label < len(row) {
			label = strings.TrimSpace(row[cols.Label])
		}
		series = append(series, charts.NumberPoint(value, label))
	}
	if len(series) == 0 {
		return nil, charts.ErrEmptySeries
	}
	return series, nil
}

// Points converts rows into the points of a line.
func Points(rows [][]string, cols Columns) ([]charts.XY[float64, float64], error) {
	var points []charts.XY[float64, float64]
	for i, row := range body(rows, cols) {
		if isBlank(row) {
			continue
		}
		x, err := parseCell(row, cols.X)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNumber(i, cols), err)
		}
		y, err := parseCell(row, cols.Value)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNumber(i, cols), err)
		}
		points = append(points, charts.XYPoint(x, y))
	}
	if len(points) == 0 {
		return nil, charts.ErrEmptySeries
	}
	return points, nil
}

func body(rows [][]string, cols Columns) [][]string {
	if cols.Header && len(rows) > 0 {
		return rows[1:]
	}
	return rows
}

func rowNumber(i int, cols Columns) int {
	if cols.Header {
		return i + 2
	}
	return i + 1
}

func parseCell(row []string, col int) (float64, error) {
	if col < 0 || col >= len(row) {
		return 0, fmt.Errorf("%d: %w", col, ErrColumn)
	}
	return strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
}

func isBlank(row []string) bool {
	for i := range row {
		if strings.TrimSpace(row[i]) != "" {
			return false
		}
	}
	return true
}
