package charts

import (
	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

// LineColor is the color of a line chart without configured colors.
var LineColor = MustHex("#dd3333")

// Drawer draws a chart into an area of width x height.
type Drawer interface {
	Draw(width, height float64) (svg.Element, error)
}

// Ticker is implemented by the charts drawn against a vertical axis.
type Ticker interface {
	Ticks() (TickSpacing, error)
}

// XTicker is implemented by the charts drawn against a horizontal axis. The
// range is the one the chart spreads its values over.
type XTicker interface {
	XTicks() (TickSpacing, Range, error)
}

// Options are shared by every kind of chart.
type Options struct {
	MaxTicks uint8
	Colors   ColorStrategy
	Style    Style
}

func (o Options) maxTicks() uint8 {
	if o.MaxTicks == 0 {
		return DefaultMaxTicks
	}
	return o.MaxTicks
}

func (o Options) colors(def ColorStrategy) ColorStrategy {
	if o.Colors == nil {
		return def
	}
	return o.Colors
}

type BarChart[T Number] struct {
	Options
	Series    Series[T]
	WithValue bool
}

func (c BarChart[T]) Ticks() (TickSpacing, error) {
	rg, err := SeriesExtent(c.Series)
	if err != nil {
		return TickSpacing{}, err
	}
	return RangeTicks(rg, c.maxTicks())
}

func (c BarChart[T]) Draw(width, height float64) (svg.Element, error) {
	ts, err := c.Ticks()
	if err != nil {
		return nil, err
	}
	colors, err := Colors(c.colors(Catppuccin), len(c.Series))
	if err != nil {
		return nil, err
	}
	var (
		style = c.Style.orDefault()
		xs    = NumberScaler(NumberDomain(0, 100), NewRange(0, width))
		ys    = NumberScaler(NumberDomain(0, 100), NewRange(height, 0))
		grp   = getBaseGroup("", "bar")
	)
	for i, pt := range c.Series {
		var (
			val = pt.Float()
			box = BarBox(ts, i, len(c.Series), val)
			top = ys.Scale(box.Top())
			el  svg.Rect
		)
		el.Title = pt.Label
		el.Pos = svg.NewPos(xs.Scale(box.X), top)
		el.Dim = svg.NewDim(xs.Scale(box.Width), ys.Scale(box.Y)-top)
		el.Fill = svg.NewFill(colors[i].String())
		el.Fill.Opacity = style.Fill.Opacity
		grp.Append(el.AsElement())

		if !c.WithValue {
			continue
		}
		var (
			x = xs.Scale(box.X + box.Width/2)
			y = ys.Scale(100 * (val - ts.MinPoint) / ts.Span())
		)
		if val > 0 {
			y -= 5
		} else {
			y += 15
		}
		txt := getValueText(FormatValue(val), x, y, style)
		grp.Append(txt.AsElement())
	}
	return grp.AsElement(), nil
}

type LineChart[T, U Number] struct {
	Options
	Points []XY[T, U]
	Point  PointFunc
}

func (c LineChart[T, U]) Ticks() (TickSpacing, error) {
	return LineTicks(c.Points, c.maxTicks())
}

func (c LineChart[T, U]) XTicks() (TickSpacing, Range, error) {
	return LineXTicks(c.Points, c.maxTicks())
}

// Draw draws the line. Each part of the line between two consecutive points
// gets its own color from the color strategy.
func (c LineChart[T, U]) Draw(width, height float64) (svg.Element, error) {
	ts, err := c.Ticks()
	if err != nil {
		return nil, err
	}
	boxes, err := LineBox(ts, c.Points)
	if err != nil {
		return nil, err
	}
	parts := len(boxes) - 1
	if parts < 1 {
		parts = 1
	}
	colors, err := Colors(c.colors(Palette{LineColor}), parts)
	if err != nil {
		return nil, err
	}
	var (
		style = c.Style.orDefault()
		xs    = NumberScaler(NumberDomain(0, 100), NewRange(0, width))
		ys    = NumberScaler(NumberDomain(0, 100), NewRange(height, 0))
		grp   = getBaseGroup("", "line")
		ori   = slices.Fst(boxes)
		pos   = svg.NewPos(xs.Scale(ori.X), ys.Scale(ori.Y))
	)
	if c.Point != nil {
		grp.Append(c.Point(pos, slices.Fst(colors)))
	}
	for i, b := range slices.Rest(boxes) {
		var (
			next = svg.NewPos(xs.Scale(b.X), ys.Scale(b.Y))
			pat  = getBasePath(colors[i], style)
		)
		pat.AbsMoveTo(pos)
		pat.AbsLineTo(next)
		grp.Append(pat.AsElement())
		if c.Point != nil {
			grp.Append(c.Point(next, colors[i]))
		}
		pos = next
	}
	return grp.AsElement(), nil
}

type PieChart[T Number] struct {
	Options
	Series    Series[T]
	WithLabel bool
}

func (c PieChart[T]) Segments() ([]PieSegment, error) {
	return BuildPie(c.Series)
}

func (c PieChart[T]) Draw(width, height float64) (svg.Element, error) {
	segments, err := c.Segments()
	if err != nil {
		return nil, err
	}
	grp := getBaseGroup("", "pie")
	grp.Transform = svg.Translate(width/2, height/2)
	if len(segments) == 0 {
		return grp.AsElement(), nil
	}
	colors, err := Colors(c.colors(Catppuccin), len(segments))
	if err != nil {
		return nil, err
	}
	var (
		style  = c.Style.orDefault()
		radius = width / 2
	)
	if height < width {
		radius = height / 2
	}
	factor := radius / ArcRadius
	for i, seg := range segments {
		var (
			from = seg.From.Scale(factor)
			to   = seg.To.Scale(factor)
			pat  svg.Path
		)
		pat.Rendering = "geometricPrecision"
		pat.Fill = svg.NewFill(colors[i].String())
		pat.Fill.Opacity = style.Fill.Opacity
		pat.Stroke = svg.NewStroke(colors[i].String(), style.Line.Width)

		pat.AbsMoveTo(svg.NewPos(0, 0))
		pat.AbsLineTo(svg.NewPos(from.X, from.Y))
		pat.AbsArcTo(svg.NewPos(to.X, to.Y), radius, radius, 0, seg.LargeArc(), true)
		pat.ClosePath()
		grp.Append(pat.AsElement())

		if !c.WithLabel {
			continue
		}
		var (
			at  = seg.LabelPosition(85 * factor)
			str = seg.Label
		)
		if str == "" {
			str = FormatValue(seg.Value)
		}
		txt := getValueText(str, at.X, at.Y, style)
		txt.Baseline = "middle"
		grp.Append(txt.AsElement())
	}
	return grp.AsElement(), nil
}

func getValueText(str string, x, y float64, style Style) svg.Text {
	txt := svg.NewText(str)
	txt.Font = svg.NewFont(style.Text.Size)
	txt.Pos = svg.NewPos(x, y)
	txt.Anchor = "middle"
	return txt
}

func getBasePath(color Color, style Style) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(color.String(), style.Line.Width)
	pat.Stroke.Opacity = style.Line.Opacity
	pat.Fill = svg.NewFill("none")
	return pat
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}
