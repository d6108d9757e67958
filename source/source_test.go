package source

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	charts "github.com/midbel/chartkit"
	"github.com/xuri/excelize/v2"
)

const sample = `label,value
mon, 9.9
tue,7.3

wed,-2
`

func TestReadCSV(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	series, err := Series(rows, DefaultColumns())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := charts.Series[float64]{
		charts.NumberPoint(9.9, "mon"),
		charts.NumberPoint(7.3, "tue"),
		charts.NumberPoint(-2.0, "wed"),
	}
	if len(series) != len(want) {
		t.Fatalf("length mismatched: got %d, want %d", len(series), len(want))
	}
	for i := range want {
		if series[i] != want[i] {
			t.Errorf("point %d: got %+v, want %+v", i, series[i], want[i])
		}
	}
}

func TestSeriesErrors(t *testing.T) {
	tests := []struct {
		Name string
		Rows [][]string
		Cols Columns
		Err  error
	}{
		{
			Name: "empty",
			Rows: [][]string{{"label", "value"}},
			Cols: DefaultColumns(),
			Err:  charts.ErrEmptySeries,
		},
		{
			Name: "column",
			Rows: [][]string{{"a", "1"}, {"b"}},
			Cols: Columns{Label: 0, Value: 1},
			Err:  ErrColumn,
		},
		{
			Name: "number",
			Rows: [][]string{{"a", "one"}},
			Cols: Columns{Label: 0, Value: 1},
			Err:  strconv.ErrSyntax,
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := Series(tt.Rows, tt.Cols)
			if !errors.Is(err, tt.Err) {
				t.Errorf("error mismatched: got %v, want %v", err, tt.Err)
			}
		})
	}
}

func TestSeriesWithoutLabel(t *testing.T) {
	rows := [][]string{{"1"}, {"2"}}
	series, err := Series(rows, Columns{Label: -1, Value: 0})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got := series.Labels(); got[0] != "" || got[1] != "" {
		t.Errorf("labels should be empty, got %q", got)
	}
	if got := series.Sum(); got != 3 {
		t.Errorf("sum mismatched: got %v, want 3", got)
	}
}

func TestPoints(t *testing.T) {
	rows := [][]string{
		{"x", "y"},
		{"0", "1.5"},
		{"1", "-2"},
		{"2", "4"},
	}
	points, err := Points(rows, DefaultColumns())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := []charts.XY[float64, float64]{
		charts.XYPoint(0.0, 1.5),
		charts.XYPoint(1.0, -2.0),
		charts.XYPoint(2.0, 4.0),
	}
	if len(points) != len(want) {
		t.Fatalf("length mismatched: got %d, want %d", len(points), len(want))
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("point %d: got %+v, want %+v", i, points[i], want[i])
		}
	}
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "label")
	f.SetCellValue(sheet, "B1", "value")
	f.SetCellValue(sheet, "A2", "north")
	f.SetCellValue(sheet, "B2", 100)
	f.SetCellValue(sheet, "A3", "south")
	f.SetCellValue(sheet, "B3", 200.5)

	file := filepath.Join(t.TempDir(), "data.xlsx")
	if err := f.SaveAs(file); err != nil {
		t.Fatalf("fail to save workbook: %v", err)
	}

	for _, name := range []string{"", sheet} {
		rows, err := ReadRows(file, name)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		series, err := Series(rows, DefaultColumns())
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if len(series) != 2 {
			t.Fatalf("length mismatched: got %d, want 2", len(series))
		}
		if series[0].Label != "north" || series[0].Value != 100 {
			t.Errorf("first point: got %+v", series[0])
		}
		if series[1].Label != "south" || series[1].Value != 200.5 {
			t.Errorf("second point: got %+v", series[1])
		}
	}

	if _, err := ReadRows(file, "missing"); !errors.Is(err, ErrSheet) {
		t.Errorf("error mismatched: got %v, want %v", err, ErrSheet)
	}
}

func TestReadRows(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(file, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	rows, err := ReadRows(file, "")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(rows) != 4 {
		t.Errorf("rows count mismatched: got %d, want 4", len(rows))
	}
	if _, err := ReadRows(filepath.Join(dir, "data.json"), ""); !errors.Is(err, ErrFormat) {
		t.Errorf("error mismatched: got %v, want %v", err, ErrFormat)
	}
}
