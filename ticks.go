package charts

import (
	"math"
	"strconv"
)

// DefaultMaxTicks is the number of ticks a chart asks for when none is
// configured.
const DefaultMaxTicks uint8 = 5

// TickSpacing describes the gridlines of an axis. MinPoint and MaxPoint are
// multiples of Spacing enclosing the range the plan was built from.
type TickSpacing struct {
	MinPoint float64
	MaxPoint float64
	Spacing  float64
	NumTicks uint8
}

// Tick is a gridline of an axis. Position is a percentage of the axis
// length measured from the top: the lowest tick sits at 100 and the highest
// at 0.
type Tick struct {
	Position float64
	Label    string
}

// NiceNum rounds x to a value of the form {1, 2, 5, 10} * 10^k. With round
// set, x is snapped to the closest such value. Otherwise the smallest such
// value not less than x is used.
//
// x must be strictly positive.
func NiceNum(x float64, round bool) float64 {
	var (
		exp  = math.Floor(math.Log10(x))
		frac = x / math.Pow(10, exp)
		nice float64
	)
	if round {
		switch {
		case frac < 1.5:
			nice = 1
		case frac < 3:
			nice = 2
		case frac < 7:
			nice = 5
		default:
			nice = 10
		}
	} else {
		switch {
		case frac <= 1:
			nice = 1
		case frac <= 2:
			nice = 2
		case frac <= 5:
			nice = 5
		default:
			nice = 10
		}
	}
	return nice * math.Pow(10, exp)
}

// NiceTicks computes a plan of at most maxTicks human friendly gridlines
// covering [min, max].
//
// When min equals max, the plan is built as if the range had a length of
// one, or of a billionth of the value for large values, and always holds
// two ticks. Ranges too wide to be represented fail with ErrTickOverflow.
func NiceTicks(min, max float64, maxTicks uint8) (TickSpacing, error) {
	var ts TickSpacing
	if maxTicks < 2 {
		return ts, configError("max ticks", maxTicks, ErrTooFewTicks)
	}
	for _, v := range []float64{min, max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ts, configError("range", v, ErrInvalidValue)
		}
	}
	if min > max {
		min, max = max, min
	}
	diff := max - min
	if math.IsInf(diff, 0) {
		return ts, configError("range", diff, ErrTickOverflow)
	}
	if diff == 0 {
		diff = math.Max(1, math.Abs(min)*1e-9)
	}
	var (
		rg      = NiceNum(diff, false)
		spacing = NiceNum(rg/float64(maxTicks-1), true)
	)
	ts.Spacing = spacing
	ts.MinPoint = math.Floor(min/spacing) * spacing
	ts.MaxPoint = math.Ceil(max/spacing) * spacing
	if ts.MinPoint == ts.MaxPoint {
		ts.MaxPoint += spacing
	}
	for _, v := range []float64{ts.MinPoint, ts.MaxPoint, ts.Spacing} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return TickSpacing{}, configError("range", v, ErrTickOverflow)
		}
	}
	if ts.MinPoint >= ts.MaxPoint {
		return TickSpacing{}, configError("range", min, ErrInvalidValue)
	}

	count := math.Round((ts.MaxPoint-ts.MinPoint)/spacing) + 1
	if math.IsNaN(count) || count > math.MaxUint8 {
		return TickSpacing{}, configError("ticks", count, ErrTickOverflow)
	}
	if count < 2 {
		return TickSpacing{}, configError("range", min, ErrInvalidValue)
	}
	ts.NumTicks = uint8(count)
	return ts, nil
}

// RangeTicks plans the ticks of rg.
func RangeTicks(rg Range, maxTicks uint8) (TickSpacing, error) {
	return NiceTicks(rg.Min(), rg.Max(), maxTicks)
}

// Span is the distance between the first and the last gridline.
func (ts TickSpacing) Span() float64 {
	return ts.MaxPoint - ts.MinPoint
}

// Values returns the value of every gridline, in ascending order.
func (ts TickSpacing) Values() []float64 {
	all := make([]float64, ts.NumTicks)
	for i := range all {
		all[i] = ts.MinPoint + float64(i)*ts.Spacing
	}
	return all
}

// Ticks lists the gridlines of the plan from the lowest to the highest
// value.
func (ts TickSpacing) Ticks() []Tick {
	var (
		values = ts.Values()
		list   = make([]Tick, 0, len(values))
		span   = ts.Span()
	)
	for _, v := range values {
		pos := 100.0
		if span != 0 {
			pos = 100 - (v-ts.MinPoint)/span*100
		}
		list = append(list, Tick{
			Position: pos,
			Label:    FormatValue(v),
		})
	}
	return list
}

// Position returns where v sits on an axis drawn from the plan, using the
// same convention as Tick.Position.
func (ts TickSpacing) Position(v float64) float64 {
	span := ts.Span()
	if span == 0 {
		return 100
	}
	return 100 - (v-ts.MinPoint)/span*100
}

// FormatValue formats v with the fewest digits needed to represent it
// exactly: integral values have no fractional part.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
