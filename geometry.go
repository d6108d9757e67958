package charts

import (
	"math"
)

// Bar is the box of a bar in a 100x100 drawing box whose Y axis points up.
type Bar struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// BarBox places the i-th of n bars of value v. Bars grow from the zero line
// of the tick plan: upward for positive values, downward otherwise.
func BarBox(ts TickSpacing, i, n int, v float64) Bar {
	var (
		span = ts.Span()
		size = float64(n)
		bar  Bar
	)
	bar.X = 5 + 95/size*float64(i)
	bar.Width = 80 / size
	bar.Height = 100 * math.Abs(v) / span
	if v > 0 {
		bar.Y = 100 * -ts.MinPoint / span
	} else {
		bar.Y = 100 * (v - ts.MinPoint) / span
	}
	return bar
}

// Top is the coordinate of the end of the bar the farthest from the bottom
// of the box.
func (b Bar) Top() float64 {
	return b.Y + b.Height
}

// LineBox projects points in a 100x100 drawing box whose Y axis points up.
// X values are stretched over the whole box, Y values are placed against
// the tick plan ts. When every point has the same X, points are put in the
// middle of the box.
func LineBox[T, U Number](ts TickSpacing, points []XY[T, U]) ([]Vec, error) {
	rg, err := lineDomain(points)
	if err != nil {
		return nil, err
	}
	var (
		span = ts.Span()
		list = make([]Vec, 0, len(points))
	)
	for _, pt := range points {
		var v Vec
		if rg.Len() == 0 {
			v.X = 50
		} else {
			v.X = 100 * (float64(pt.X) - rg.Min()) / rg.Len()
		}
		v.Y = 100 * (float64(pt.Y) - ts.MinPoint) / span
		list = append(list, v)
	}
	return list, nil
}

// LineTicks plans the vertical axis of a line chart from the true extent of
// its Y values.
func LineTicks[T, U Number](points []XY[T, U], maxTicks uint8) (TickSpacing, error) {
	ys := make([]float64, len(points))
	for i := range points {
		ys[i] = float64(points[i].Y)
	}
	rg, err := Bounds(ys)
	if err != nil {
		return TickSpacing{}, err
	}
	return RangeTicks(rg, maxTicks)
}

// LineXTicks plans the horizontal axis of a line chart. The returned range
// is the one points are spread over by LineBox: the true extent of their X
// values, or a range centred on the only X value.
func LineXTicks[T, U Number](points []XY[T, U], maxTicks uint8) (TickSpacing, Range, error) {
	rg, err := lineDomain(points)
	if err != nil {
		return TickSpacing{}, rg, err
	}
	ts, err := RangeTicks(rg, maxTicks)
	if err != nil {
		return ts, rg, err
	}
	if rg.Len() == 0 {
		rg = NewRange(rg.Min()-ts.Spacing, rg.Max()+ts.Spacing)
	}
	return ts, rg, nil
}

func lineDomain[T, U Number](points []XY[T, U]) (Range, error) {
	xs := make([]float64, len(points))
	for i := range points {
		xs[i] = float64(points[i].X)
	}
	return Bounds(xs)
}
