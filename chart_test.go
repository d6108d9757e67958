package charts

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestChartRender(t *testing.T) {
	chart := Chart{
		Title:    "sample",
		Width:    800,
		Height:   600,
		Padding:  RelativePadding(800, 600, 0.1),
		WithAxis: true,
	}
	tests := []struct {
		Name    string
		Drawer  Drawer
		Element string
	}{
		{
			Name:    "bar",
			Drawer:  BarChart[int]{Series: NewSeries(-4, 10, 0, 50, 2), WithValue: true},
			Element: "<rect",
		},
		{
			Name: "line",
			Drawer: LineChart[int, float64]{
				Points: []XY[int, float64]{XYPoint(0, 1.5), XYPoint(1, -2.0), XYPoint(2, 4.0)},
				Point:  GetCircle,
			},
			Element: "<path",
		},
		{
			Name:    "pie",
			Drawer:  PieChart[float64]{Series: NewSeries(1.0, 2, 3), WithLabel: true},
			Element: "<path",
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := chart.Render(&buf, tt.Drawer); err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			str := buf.String()
			for _, want := range []string{"<svg", tt.Element, "sample"} {
				if !strings.Contains(str, want) {
					t.Errorf("%s not found in rendered chart", want)
				}
			}
		})
	}
}

func TestChartRenderEmpty(t *testing.T) {
	chart := Chart{Width: 400, Height: 400}
	tests := []struct {
		Name   string
		Drawer Drawer
	}{
		{Name: "bar", Drawer: BarChart[int]{}},
		{Name: "line", Drawer: LineChart[int, int]{}},
		{Name: "pie", Drawer: PieChart[int]{}},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		err := chart.Render(&buf, tt.Drawer)
		if !errors.Is(err, ErrEmptySeries) {
			t.Errorf("%s: error mismatched: got %v, want %v", tt.Name, err, ErrEmptySeries)
		}
	}
}

func TestChartRenderPieZero(t *testing.T) {
	var (
		buf   bytes.Buffer
		chart = Chart{Width: 400, Height: 400}
		pie   = PieChart[int]{Series: NewSeries(0, 0)}
	)
	if err := chart.Render(&buf, pie); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if strings.Contains(buf.String(), "<path") {
		t.Errorf("pie without value should not draw any segment")
	}
}

func TestBarChartColors(t *testing.T) {
	var (
		buf   bytes.Buffer
		chart = Chart{Width: 400, Height: 400}
		bar   = BarChart[int]{
			Options: Options{Colors: Palette{MustHex("#123456")}},
			Series:  NewSeries(1, 2, 3),
		}
	)
	if err := chart.Render(&buf, bar); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got := strings.Count(buf.String(), "#123456"); got < 3 {
		t.Errorf("color not used for every bar: got %d occurrences, want 3", got)
	}
}

func TestChartRenderAxis(t *testing.T) {
	chart := Chart{
		Width:     400,
		Height:    400,
		Padding:   RelativePadding(400, 400, 0.1),
		WithAxis:  true,
		WithBands: true,
	}
	tests := []struct {
		Name   string
		Drawer Drawer
		Labels []string
		Bands  int
		Bars   int
	}{
		{
			Name:   "bar",
			Drawer: BarChart[int]{Series: NewSeries(10, 50)},
			Labels: []string{">0<", ">50<"},
			Bands:  3,
			Bars:   2,
		},
		{
			Name: "line",
			Drawer: LineChart[float64, int]{
				Points: []XY[float64, int]{XYPoint(0.5, 0), XYPoint(9.5, 50)},
			},
			Labels: []string{">50<", ">2<", ">8<"},
			Bands:  3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := chart.Render(&buf, tt.Drawer); err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			str := buf.String()
			for _, label := range tt.Labels {
				if !strings.Contains(str, label) {
					t.Errorf("label %s not found", label)
				}
			}
			if rects := strings.Count(str, "<rect") - tt.Bars; rects != tt.Bands {
				t.Errorf("bands count mismatched: got %d, want %d", rects, tt.Bands)
			}
		})
	}
}
