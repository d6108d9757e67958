package charts

import (
	"fmt"
	"math"
	"strconv"
)

var (
	Catppuccin Palette
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Catppuccin = splitColorString("dc8a788839effe640b40a02b04a5e5ea76cb1e66f5d20f39df8e1d209fb57287fde64553")
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, MustHex("#"+str[i:i+6]))
	}
	return arr
}

// Color is either a hex string as given by the user or an RGB triple. A
// color created with Hex keeps its original text when formatted.
type Color struct {
	hex     string
	r, g, b uint8
}

// Hex parses a color written as #rrggbb. Digits are case insensitive.
func Hex(str string) (Color, error) {
	if len(str) != 7 || str[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q: want #rrggbb", ErrInvalidColor, str)
	}
	var rgb [3]uint8
	for i := range rgb {
		n, err := strconv.ParseUint(str[1+i*2:3+i*2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %s", ErrInvalidColor, str, err)
		}
		rgb[i] = uint8(n)
	}
	c := RGB(rgb[0], rgb[1], rgb[2])
	c.hex = str
	return c, nil
}

// MustHex is like Hex but panics if str is not a valid color.
func MustHex(str string) Color {
	c, err := Hex(str)
	if err != nil {
		panic(err)
	}
	return c
}

func RGB(r, g, b uint8) Color {
	return Color{
		r: r,
		g: g,
		b: b,
	}
}

func (c Color) RGB() (uint8, uint8, uint8) {
	return c.r, c.g, c.b
}

func (c Color) String() string {
	if c.hex != "" {
		return c.hex
	}
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// Equal reports whether both colors have the same channels, whatever the way
// they were written.
func (c Color) Equal(other Color) bool {
	return c.r == other.r && c.g == other.g && c.b == other.b
}

// ColorStrategy picks the color of the i-th item out of total items.
type ColorStrategy interface {
	ColorForIndex(i, total int) Color
}

// Palette cycles through its colors.
type Palette []Color

// NewPalette builds a palette from hex strings.
func NewPalette(colors ...string) (Palette, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}
	p := make(Palette, 0, len(colors))
	for _, str := range colors {
		c, err := Hex(str)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

func (p Palette) ColorForIndex(i, _ int) Color {
	if len(p) == 0 {
		return Color{}
	}
	return p[i%len(p)]
}

func (p Palette) validate() error {
	if len(p) == 0 {
		return ErrEmptyPalette
	}
	return nil
}

// Strings returns the palette colors formatted as hex strings.
func (p Palette) Strings() []string {
	all := make([]string, len(p))
	for i := range p {
		all[i] = p[i].String()
	}
	return all
}

// Gradient interpolates between From and To. By default channels are
// interpolated in linear light and encoded back to sRGB, which keeps the
// perceived brightness even along the gradient: halfway between black and
// white is about 188, not 128. Set Linear to interpolate the encoded values
// directly.
type Gradient struct {
	From   Color
	To     Color
	Linear bool
}

func (g Gradient) ColorForIndex(i, total int) Color {
	if total <= 1 || i <= 0 {
		return g.From
	}
	if i == total-1 {
		return g.To
	}
	if g.Linear {
		return g.linear(i, total-1)
	}
	return g.gamma(float64(i) / float64(total-1))
}

func (g Gradient) linear(i, n int) Color {
	mix := func(from, to uint8) uint8 {
		c := float64(from) + float64(int(to)-int(from))*float64(i)/float64(n)
		return clampChannel(c)
	}
	return RGB(mix(g.From.r, g.To.r), mix(g.From.g, g.To.g), mix(g.From.b, g.To.b))
}

func (g Gradient) gamma(frac float64) Color {
	mix := func(from, to uint8) uint8 {
		var (
			f = decodeGamma(from)
			t = decodeGamma(to)
		)
		return encodeGamma((t-f)*frac + f)
	}
	return RGB(mix(g.From.r, g.To.r), mix(g.From.g, g.To.g), mix(g.From.b, g.To.b))
}

// CalculatedColor delegates the choice of a color to a user function.
type CalculatedColor func(i, total int) Color

func (c CalculatedColor) ColorForIndex(i, total int) Color {
	return c(i, total)
}

// Colors returns the colors cs assigns to total items.
func Colors(cs ColorStrategy, total int) ([]Color, error) {
	if cs == nil {
		return nil, configError("colors", nil, ErrEmptyPalette)
	}
	if v, ok := cs.(interface{ validate() error }); ok {
		if err := v.validate(); err != nil {
			return nil, err
		}
	}
	if total <= 0 {
		return nil, ErrEmptySeries
	}
	all := make([]Color, total)
	for i := range all {
		all[i] = cs.ColorForIndex(i, total)
	}
	return all, nil
}

// decodeGamma converts an sRGB channel to linear light in [0, 1].
func decodeGamma(channel uint8) float64 {
	rel := float64(channel) / 255
	if rel > 0.04045 {
		return math.Pow((rel+0.055)/1.055, 2.4)
	}
	return rel / 12.92
}

// encodeGamma converts linear light back to an sRGB channel.
func encodeGamma(channel float64) uint8 {
	var c float64
	if channel > 0.0031308 {
		c = 1.055*math.Pow(channel, 1/2.4) - 0.055
	} else {
		c = channel * 12.92
	}
	return clampChannel(c * 255)
}

// clampChannel truncates c to a channel value. The small offset absorbs the
// rounding error of the sRGB round trip, without it 255 comes back as 254.
func clampChannel(c float64) uint8 {
	c += 1e-9
	switch {
	case c <= 0:
		return 0
	case c >= 255:
		return 255
	default:
		return uint8(c)
	}
}
