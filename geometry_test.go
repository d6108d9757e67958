package charts

import (
	"errors"
	"testing"
)

func TestBarBox(t *testing.T) {
	ts := TickSpacing{MinPoint: -10, MaxPoint: 10, Spacing: 2, NumTicks: 11}
	tests := []struct {
		Index int
		Count int
		Value float64
		Want  Bar
	}{
		{Index: 0, Count: 4, Value: 5, Want: Bar{X: 5, Y: 50, Width: 20, Height: 25}},
		{Index: 2, Count: 4, Value: -5, Want: Bar{X: 52.5, Y: 25, Width: 20, Height: 25}},
		{Index: 1, Count: 4, Value: 0, Want: Bar{X: 28.75, Y: 50, Width: 20, Height: 0}},
		{Index: 0, Count: 1, Value: 10, Want: Bar{X: 5, Y: 50, Width: 80, Height: 50}},
	}
	for _, tt := range tests {
		got := BarBox(ts, tt.Index, tt.Count, tt.Value)
		if got != tt.Want {
			t.Errorf("bar %d/%d (%v): got %+v, want %+v", tt.Index, tt.Count, tt.Value, got, tt.Want)
		}
	}
}

func TestBarBoxBaseline(t *testing.T) {
	values := []float64{-4, 10, 0, 50, 2, -6, 7}
	rg, err := Extent(values)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	ts, err := RangeTicks(rg, DefaultMaxTicks)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	zero := 100 * -ts.MinPoint / ts.Span()
	for i, v := range values {
		bar := BarBox(ts, i, len(values), v)
		switch {
		case v > 0 && !closeTo(bar.Y, zero):
			t.Errorf("bar %d: positive bar should start on zero line (%v), got %v", i, zero, bar.Y)
		case v < 0 && !closeTo(bar.Top(), zero):
			t.Errorf("bar %d: negative bar should end on zero line (%v), got %v", i, zero, bar.Top())
		}
	}
}

func TestLineBox(t *testing.T) {
	points := []XY[int, float64]{
		XYPoint(0, 0.0),
		XYPoint(5, 5.0),
		XYPoint(10, 10.0),
	}
	ts, err := LineTicks(points, DefaultMaxTicks)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want := (TickSpacing{MinPoint: 0, MaxPoint: 10, Spacing: 2, NumTicks: 6}); ts != want {
		t.Fatalf("ticks mismatched: got %+v, want %+v", ts, want)
	}
	got, err := LineBox(ts, points)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := []Vec{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 100, Y: 100}}
	if len(got) != len(want) {
		t.Fatalf("points count mismatched: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLineBoxSameX(t *testing.T) {
	points := []XY[float64, float64]{XYPoint(1.0, 1.0), XYPoint(1.0, 3.0)}
	ts, err := LineTicks(points, DefaultMaxTicks)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	got, err := LineBox(ts, points)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for i := range got {
		if got[i].X != 50 {
			t.Errorf("point %d: got x = %v, want 50", i, got[i].X)
		}
	}
}

func TestLineTicksEmpty(t *testing.T) {
	_, err := LineTicks([]XY[int, int]{}, DefaultMaxTicks)
	if !errors.Is(err, ErrEmptySeries) {
		t.Errorf("error mismatched: got %v, want %v", err, ErrEmptySeries)
	}
}

func TestLineXTicks(t *testing.T) {
	points := []XY[float64, int]{XYPoint(0.5, 1), XYPoint(9.5, 3)}
	ts, rg, err := LineXTicks(points, DefaultMaxTicks)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want := NewRange(0.5, 9.5); rg != want {
		t.Errorf("range mismatched: got %+v, want %+v", rg, want)
	}
	if want := (TickSpacing{MinPoint: 0, MaxPoint: 10, Spacing: 2, NumTicks: 6}); ts != want {
		t.Errorf("ticks mismatched: got %+v, want %+v", ts, want)
	}
}

func TestLineXTicksSameX(t *testing.T) {
	points := []XY[int, int]{XYPoint(3, 1), XYPoint(3, 5)}
	ts, rg, err := LineXTicks(points, DefaultMaxTicks)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if rg.Len() == 0 {
		t.Fatalf("range should not be empty")
	}
	if mid := rg.Min() + rg.Len()/2; mid != 3 {
		t.Errorf("points should be in the middle of the range: got %v, want 3", mid)
	}
	if ts.NumTicks < 2 {
		t.Errorf("got %d ticks, want at least 2", ts.NumTicks)
	}
}
