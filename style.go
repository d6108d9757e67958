package charts

type Style struct {
	Line struct {
		Width   float64
		Opacity float64
	}
	Fill struct {
		Opacity float64
	}
	Text struct {
		Size  float64
		Color string
	}
}

// DefaultStyle is the style charts use when none is given.
func DefaultStyle() Style {
	var s Style
	s.Line.Width = 1
	s.Line.Opacity = 1
	s.Fill.Opacity = 0.6
	s.Text.Size = FontSize
	s.Text.Color = "black"
	return s
}

func (s Style) orDefault() Style {
	if s == (Style{}) {
		return DefaultStyle()
	}
	if s.Text.Size <= 0 {
		s.Text.Size = FontSize
	}
	return s
}
