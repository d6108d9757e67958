package charts

import (
	"fmt"
	"math"
	"sort"
)

// Segment ends are placed on a circle of radius PieRadius, one unit inside
// the radius of the drawn arcs to leave room for the hover stroke.
const (
	PieRadius = 99.0
	ArcRadius = 100.0
)

type SegmentSize int

const (
	LessThanHalf SegmentSize = iota
	Half
	MoreThanHalf
)

func (s SegmentSize) String() string {
	switch s {
	case LessThanHalf:
		return "less-than-half"
	case Half:
		return "half"
	case MoreThanHalf:
		return "more-than-half"
	default:
		return "unknown"
	}
}

type Vec struct {
	X float64
	Y float64
}

func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// PieSegment is one wedge of a pie. From and To are the ends of its arc on a
// circle of radius PieRadius centered on the origin.
type PieSegment struct {
	From  Vec
	To    Vec
	Value float64
	Label string
	// Index is the position of the point the segment was built from in the
	// original series.
	Index int
}

// BuildPie splits a circle between the values of s. Zero values are dropped
// and the remaining segments are ordered by ascending value, ties keeping
// their order in s. The first segment starts at angle 0 (3 o'clock) and
// segments follow in the direction of increasing angle.
//
// BuildPie fails if s is empty or holds a negative or non finite value. It
// returns no segment when every value is zero.
func BuildPie[T Number](s Series[T]) ([]PieSegment, error) {
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}
	type entry struct {
		value float64
		label string
		index int
	}
	var (
		list []entry
		sum  float64
	)
	for i, pt := range s {
		v := pt.Float()
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("point %d: %w", i, configError("value", v, ErrInvalidValue))
		}
		if v == 0 {
			continue
		}
		list = append(list, entry{value: v, label: pt.Label, index: i})
		sum += v
	}
	if sum == 0 {
		return []PieSegment{}, nil
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].value < list[j].value
	})

	var (
		segments = make([]PieSegment, 0, len(list))
		prev     = Vec{X: PieRadius}
		cumul    float64
	)
	for _, e := range list {
		cumul += e.value / sum
		var (
			angle = cumul * 2 * math.Pi
			next  = Vec{X: math.Cos(angle) * PieRadius, Y: math.Sin(angle) * PieRadius}
		)
		segments = append(segments, PieSegment{
			From:  prev,
			To:    next,
			Value: e.value,
			Label: e.label,
			Index: e.index,
		})
		prev = next
	}
	return segments, nil
}

// Size classifies the sweep of the segment with the sign of the cross
// product of its ends.
func (p PieSegment) Size() SegmentSize {
	z := p.From.X*p.To.Y - p.To.X*p.From.Y
	switch {
	case z == 0:
		return Half
	case z > 0:
		return LessThanHalf
	default:
		return MoreThanHalf
	}
}

// LargeArc reports the value of the large-arc-flag to use for the segment.
func (p PieSegment) LargeArc() bool {
	return p.Size() == MoreThanHalf
}

// ArcPath returns the path data of the filled segment, for an arc of radius
// ArcRadius centered on the origin.
func (p PieSegment) ArcPath() string {
	var flag int
	if p.LargeArc() {
		flag = 1
	}
	return fmt.Sprintf("M0 0 %s %s A%s %s 0 %d 1 %s %sZ",
		FormatValue(p.From.X),
		FormatValue(p.From.Y),
		FormatValue(ArcRadius),
		FormatValue(ArcRadius),
		flag,
		FormatValue(p.To.X),
		FormatValue(p.To.Y),
	)
}

// LabelAnchor returns the unit vector pointing at the angular center of the
// segment.
func (p PieSegment) LabelAnchor() Vec {
	size := p.Size()
	if size == Half {
		// ends are opposite, their middle is the origin.
		n := p.From.Len()
		return Vec{X: p.From.Y / n, Y: -p.From.X / n}
	}
	var (
		mid = Vec{X: (p.From.X + p.To.X) / 2, Y: (p.From.Y + p.To.Y) / 2}
		n   = mid.Len()
	)
	if size == MoreThanHalf {
		n = -n
	}
	return mid.Scale(1 / n)
}

// LabelPosition scales the label anchor to radius.
func (p PieSegment) LabelPosition(radius float64) Vec {
	return p.LabelAnchor().Scale(radius)
}
