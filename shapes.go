package charts

import (
	"github.com/midbel/svg"
)

var DefaultSize float64 = 4

// PointFunc draws the marker of a point of a line chart.
type PointFunc func(svg.Pos, Color) svg.Element

func GetCircle(pos svg.Pos, c Color) svg.Element {
	var el svg.Circle
	el.Pos = pos
	el.Fill = svg.NewFill(c.String())
	el.Radius = DefaultSize / 2
	return el.AsElement()
}

func GetSquare(pos svg.Pos, c Color) svg.Element {
	half := DefaultSize / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(DefaultSize, DefaultSize)
	el.Fill = svg.NewFill(c.String())

	return el.AsElement()
}

func GetDiamond(pos svg.Pos, c Color) svg.Element {
	half := DefaultSize / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(DefaultSize, DefaultSize)
	el.Fill = svg.NewFill(c.String())
	el.Transform.RA = 45
	el.Transform.RX = pos.X + half
	el.Transform.RY = pos.Y + half

	return el.AsElement()
}

// PointByName returns the marker registered under name, nil if there is
// none.
func PointByName(name string) PointFunc {
	switch name {
	case "circle":
		return GetCircle
	case "square":
		return GetSquare
	case "diamond":
		return GetDiamond
	default:
		return nil
	}
}
