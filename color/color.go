package color

import "math"

// Color is a high-resolution color: a tagged space plus three float
// coordinates. The zero value is the XYZ D65 origin.
type Color struct {
	Space  Space
	Coords Coords
}

func New(s Space, c Coords) Color { return Color{Space: s, Coords: c} }

func NewSRGB(r, g, b float64) Color         { return Color{Srgb, Coords{r, g, b}} }
func NewLinearSRGB(r, g, b float64) Color   { return Color{LinearSrgb, Coords{r, g, b}} }
func NewDisplayP3(r, g, b float64) Color    { return Color{DisplayP3, Coords{r, g, b}} }
func NewRec2020(r, g, b float64) Color      { return Color{Rec2020, Coords{r, g, b}} }
func NewOklab(l, a, b float64) Color        { return Color{Oklab, Coords{l, a, b}} }
func NewOklch(l, c, h float64) Color        { return Color{Oklch, Coords{l, c, h}} }
func NewOklrab(lr, a, b float64) Color      { return Color{Oklrab, Coords{lr, a, b}} }
func NewOklrch(lr, c, h float64) Color      { return Color{Oklrch, Coords{lr, c, h}} }
func NewXYZ(x, y, z float64) Color          { return Color{Xyz, Coords{x, y, z}} }

// From24Bit scales an 8-bit-per-channel RGB triple into sRGB.
func From24Bit(r, g, b uint8) Color {
	return NewSRGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// To converts the receiver into space s.
func (c Color) To(s Space) Color {
	return Color{Space: s, Coords: Convert(c.Space, s, c.Coords)}
}

// Normalized returns the receiver with its coordinates normalized.
func (c Color) Normalized() Color {
	return Color{Space: c.Space, Coords: Normalize(c.Space, c.Coords)}
}

// InGamut reports whether the receiver's coordinates lie in its space's
// gamut.
func (c Color) InGamut() bool { return InGamut(c.Space, c.Coords) }

// Clip clips the receiver's coordinates to its space's gamut.
func (c Color) Clip() Color { return Color{c.Space, Clip(c.Space, c.Coords)} }

// ToGamut maps the receiver into its space's gamut via binary-search
// chroma reduction in Oklch.
func (c Color) ToGamut() Color { return Color{c.Space, ToGamut(c.Space, c.Coords)} }

// DeltaEOk computes perceptual distance to other, per variant.
func (c Color) DeltaEOk(variant OkVariant, other Color) float64 {
	return DeltaEOk(variant, c.Space, c.Coords, other.Space, other.Coords)
}

// canonicalDigits controls Equal/Hash precision: coordinates are scaled by
// 10^(canonicalDigits-3) before rounding, matching the format package's
// default of 5 fractional digits.
const canonicalDigits = 5

// canonicalize reduces a color to a form tolerant of floating-point drift
// and of equivalent hue representations: normalize, take polar hue modulo
// 360 scaled into [0,1), scale remaining coordinates, round, and flatten
// negative zero.
func (c Color) canonicalize() Coords {
	n := Normalize(c.Space, c.Coords)
	scale := math.Pow(10, float64(canonicalDigits-3))
	out := n
	if c.Space.IsPolar() {
		if isMissing(n[2]) {
			out[2] = 0
		} else {
			h := math.Mod(n[2], 360)
			if h < 0 {
				h += 360
			}
			out[2] = h / 360
		}
	}
	for i := range out {
		out[i] = math.Round(out[i] * scale)
		if out[i] == 0 {
			out[i] = 0 // flattens -0 to +0
		}
	}
	return out
}

// Equal reports whether c and other are equal under a coarse,
// drift-tolerant equality: same space, same canonicalized bit pattern.
func (c Color) Equal(other Color) bool {
	if c.Space != other.Space {
		return false
	}
	a, b := c.canonicalize(), other.canonicalize()
	return a == b
}

// Hash returns a hash consistent with Equal: equal colors hash equal.
func (c Color) Hash() uint64 {
	cc := c.canonicalize()
	h := uint64(c.Space)
	for _, v := range cc {
		bits := math.Float64bits(v)
		h = h*1099511628211 ^ bits
	}
	return h
}
