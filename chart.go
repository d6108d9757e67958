package charts

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// RelativePadding returns a padding of frac of width on the sides and of
// frac of height at the top and bottom.
func RelativePadding(width, height, frac float64) Padding {
	return Padding{
		Top:    height * frac,
		Bottom: height * frac,
		Left:   width * frac,
		Right:  width * frac,
	}
}

type Chart struct {
	Title  string
	Width  float64
	Height float64

	Padding

	WithAxis  bool
	WithBands bool
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

// Render writes d as a standalone SVG document to w. When WithAxis is set,
// the axes of d are drawn around the area, with bands along the vertical
// axis when WithBands is set.
func (c Chart) Render(w io.Writer, d Drawer) error {
	area, err := d.Draw(c.DrawingWidth(), c.DrawingHeight())
	if err != nil {
		return err
	}
	el := svg.NewSVG(svg.WithDimension(c.Width, c.Height))
	el.OmitProlog = true

	if c.WithAxis {
		axis, err := c.drawAxis(d)
		if err != nil {
			return err
		}
		el.Append(axis)
	}
	if c.Title != "" {
		el.Append(c.drawTitle())
	}
	ar := c.getArea()
	ar.Append(area)
	el.Append(ar.AsElement())

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (c Chart) getArea() svg.Group {
	var g svg.Group
	g.Class = append(g.Class, "area")
	g.Transform = svg.Translate(c.Padding.Left, c.Padding.Top)
	return g
}

func (c Chart) drawTitle() svg.Element {
	tx := svg.NewText(c.Title)
	tx.Pos = svg.NewPos(c.Width/2, c.Padding.Top/2)
	tx.Font = svg.NewFont(FontSize * 1.4)
	tx.Anchor = "middle"
	tx.Baseline = "middle"
	return tx.AsElement()
}

// drawAxis draws the vertical axis of a Ticker on the left of the area and
// the horizontal axis of a XTicker below it.
func (c Chart) drawAxis(d Drawer) (svg.Element, error) {
	g := svg.NewGroup(svg.WithID("axis"))
	if t, ok := d.(Ticker); ok {
		ts, err := t.Ticks()
		if err != nil {
			return nil, err
		}
		axis := LeftAxis(ts)
		axis.WithBands = c.WithBands
		g.Append(axis.Render(c.DrawingHeight(), c.DrawingWidth(), c.Padding.Left, c.Padding.Top))
	}
	if t, ok := d.(XTicker); ok {
		ts, rg, err := t.XTicks()
		if err != nil {
			return nil, err
		}
		axis := BottomAxis(ts, rg)
		g.Append(axis.Render(c.DrawingWidth(), c.DrawingHeight(), c.Padding.Left, c.Padding.Top+c.DrawingHeight()))
	}
	return g.AsElement(), nil
}
