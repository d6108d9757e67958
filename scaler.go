package charts

import (
	"math"
)

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

// Extent reduces values to the range an axis has to cover. The true minimum
// and maximum of values are extended so that the range always includes zero,
// which is the baseline of a bar chart.
//
// Extent fails when values is empty or holds a NaN or infinite value.
func Extent[T Number](values []T) (Range, error) {
	rg, err := Bounds(values)
	if err != nil {
		return rg, err
	}
	rg.F = math.Min(rg.F, 0)
	rg.T = math.Max(rg.T, 0)
	return rg, nil
}

// Bounds returns the true minimum and maximum of values, without the zero
// clamp applied by Extent.
func Bounds[T Number](values []T) (Range, error) {
	if len(values) == 0 {
		return Range{}, ErrEmptySeries
	}
	rg := NewRange(math.Inf(1), math.Inf(-1))
	for i := range values {
		v := float64(values[i])
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Range{}, configError("value", v, ErrInvalidValue)
		}
		rg.F = math.Min(rg.F, v)
		rg.T = math.Max(rg.T, v)
	}
	return rg, nil
}

// SeriesExtent is Extent applied to the values of a Series.
func SeriesExtent[T Number](s Series[T]) (Range, error) {
	return Extent(s.Values())
}

type Scaler interface {
	Scale(float64) float64
	Space() float64
	Max() float64
	Min() float64
}

type Domain interface {
	Diff(float64) float64
	Extend() float64
}

type numberDomain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

// TickDomain is the domain covered by a tick plan.
func TickDomain(ts TickSpacing) Domain {
	return NumberDomain(ts.MinPoint, ts.MaxPoint)
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

type numberScaler struct {
	Range
	Domain
}

// NumberScaler maps values of dom linearly onto rg. A domain without extent
// maps every value onto the start of the range.
func NumberScaler(dom Domain, rg Range) Scaler {
	return numberScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (n numberScaler) Scale(v float64) float64 {
	return n.Range.F + n.Diff(v)*n.Space()
}

func (n numberScaler) Space() float64 {
	ext := n.Extend()
	if ext == 0 {
		return 0
	}
	return n.Len() / ext
}
