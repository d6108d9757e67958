package charts

import (
	"math"

	"github.com/midbel/svg"
)

const FontSize = 12.0

type Orientation int

const (
	OrientBottom Orientation = 1 << iota
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft
}

// NumberAxis draws the gridlines of a tick plan along one side of the
// drawing area.
//
// Domain is the range of values spread over the length of the axis. When
// it is empty, the axis covers the tick plan and ticks outside of Domain
// are not drawn.
type NumberAxis struct {
	Orientation
	Ticks          TickSpacing
	Domain         Range
	WithInnerTicks bool
	WithLabelTicks bool
	WithOuterTicks bool
	WithBands      bool
}

// LeftAxis is the vertical axis of bar and line charts.
func LeftAxis(ts TickSpacing) NumberAxis {
	return NumberAxis{
		Orientation:    OrientLeft,
		Ticks:          ts,
		WithInnerTicks: true,
		WithLabelTicks: true,
		WithOuterTicks: true,
	}
}

// BottomAxis is the horizontal axis of line charts, whose points are spread
// over rg.
func BottomAxis(ts TickSpacing, rg Range) NumberAxis {
	return NumberAxis{
		Orientation:    OrientBottom,
		Ticks:          ts,
		Domain:         rg,
		WithInnerTicks: true,
		WithLabelTicks: true,
	}
}

// Render draws the axis. length is the size of the axis, size the size of
// the drawing area in the other direction.
func (a NumberAxis) Render(length, size, left, top float64) svg.Element {
	g := svg.NewGroup(svg.WithTranslate(left, top))
	d := domainLine(a.Orientation, length, svg.NewStroke("black", 1))
	g.Append(d.AsElement())

	var (
		scale  = a.scaler(length)
		values = a.Ticks.Values()
		font   = svg.NewFont(FontSize)
		limit  = length * 1e-9
	)
	for i, v := range values {
		pos := scale.Scale(v)
		if pos < -limit || pos > length+limit {
			continue
		}
		grp := svg.NewGroup(svg.WithTranslate(0, pos))
		if !a.Vertical() {
			grp = svg.NewGroup(svg.WithTranslate(pos, 0))
		}
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, FontSize*0.8, d.Stroke)
			grp.Append(tick.AsElement())
		}
		if a.WithLabelTicks {
			text := tickText(a.Orientation, FormatValue(v), font)
			grp.Append(text.AsElement())
		}
		if a.WithOuterTicks && i > 0 {
			sk := d.Stroke
			sk.Opacity = 0.05
			tick := lineTick(a.Orientation, -size, sk)
			grp.Append(tick.AsElement())
		}
		if a.WithBands && i%2 == 0 && i+1 < len(values) {
			next := math.Max(0, math.Min(length, scale.Scale(values[i+1])))
			rec := tickBand(a.Orientation, size, next-pos)
			grp.Append(rec.AsElement())
		}
		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

func (a NumberAxis) scaler(length float64) Scaler {
	dom := TickDomain(a.Ticks)
	if a.Domain.Len() != 0 {
		dom = NumberDomain(a.Domain.Min(), a.Domain.Max())
	}
	if a.Vertical() {
		return NumberScaler(dom, NewRange(length, 0))
	}
	return NumberScaler(dom, NewRange(0, length))
}

func domainLine(orient Orientation, length float64, stroke svg.Stroke) svg.Line {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	d := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(x, y))
	d.Stroke = stroke
	return d
}

// tickBand shades the area between a tick and the next one, step away
// along the axis.
func tickBand(orient Orientation, size, step float64) svg.Rect {
	var rec svg.Rect
	if orient.Vertical() {
		rec.Pos = svg.NewPos(0, math.Min(0, step))
		rec.Dim = svg.NewDim(size, math.Abs(step))
	} else {
		rec.Pos = svg.NewPos(math.Min(0, step), -size)
		rec.Dim = svg.NewDim(math.Abs(step), size)
	}
	rec.Fill = svg.NewFill("currentColor")
	rec.Fill.Opacity = 0.05
	return rec
}

// lineTick draws a tick of size outside of the drawing area. A negative
// size draws the tick across the area.
func lineTick(orient Orientation, size float64, stroke svg.Stroke) svg.Line {
	end := svg.NewPos(0, size)
	if orient.Vertical() {
		end = svg.NewPos(-size, 0)
	}
	tick := svg.NewLine(svg.NewPos(0, 0), end)
	tick.Stroke = stroke
	return tick
}

func tickText(orient Orientation, str string, font svg.Font) svg.Text {
	var (
		base   = "hanging"
		anchor = "middle"
		pos    = svg.NewPos(0, FontSize*1.2)
	)
	if orient.Vertical() {
		base = "middle"
		anchor = "end"
		pos = svg.NewPos(-FontSize*1.2, 0)
	}
	text := svg.NewText(str)
	text.Pos = pos
	text.Font = font
	text.Anchor = anchor
	text.Baseline = base
	return text
}
