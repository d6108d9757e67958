package charts

// Number is the set of value types a Series can carry. Every value is
// converted to float64 before any computation.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type Point[T Number] struct {
	Value T
	Label string
}

func NumberPoint[T Number](v T, label string) Point[T] {
	return Point[T]{
		Value: v,
		Label: label,
	}
}

func (p Point[T]) Float() float64 {
	return float64(p.Value)
}

// Series is an ordered list of labelled values. Position in the list is the
// only identity a point has.
type Series[T Number] []Point[T]

// NewSeries builds a Series from bare values, using an empty label for
// each point.
func NewSeries[T Number](values ...T) Series[T] {
	s := make(Series[T], 0, len(values))
	for _, v := range values {
		s = append(s, Point[T]{Value: v})
	}
	return s
}

func (s Series[T]) Len() int {
	return len(s)
}

func (s Series[T]) Values() []float64 {
	all := make([]float64, len(s))
	for i := range s {
		all[i] = s[i].Float()
	}
	return all
}

func (s Series[T]) Labels() []string {
	all := make([]string, len(s))
	for i := range s {
		all[i] = s[i].Label
	}
	return all
}

func (s Series[T]) Sum() float64 {
	var sum float64
	for i := range s {
		sum += s[i].Float()
	}
	return sum
}

// XY is a point of a line chart.
type XY[T, U Number] struct {
	X T
	Y U
}

func XYPoint[T, U Number](x T, y U) XY[T, U] {
	return XY[T, U]{
		X: x,
		Y: y,
	}
}
