package color

import "math"

// srgbToLinear and linearToSrgb implement the sRGB companding curve, shared
// by sRGB and Display P3 (both use the Rec.709-derived sRGB transfer
// function, only their primaries differ).
func srgbToLinear(c float64) float64 {
	sign := 1.0
	if c < 0 {
		sign = -1.0
		c = -c
	}
	if c <= 0.04045 {
		return sign * c / 12.92
	}
	return sign * math.Pow((c+0.055)/1.055, 2.4)
}

func linearToSrgb(c float64) float64 {
	sign := 1.0
	if c < 0 {
		sign = -1.0
		c = -c
	}
	if c <= 0.0031308 {
		return sign * c * 12.92
	}
	return sign * (1.055*math.Pow(c, 1.0/2.4) - 0.055)
}

// Rec. 2020's piecewise transfer function, per ITU-R BT.2020.
const rec2020Alpha = 1.09929682680944
const rec2020Beta = 0.018053968510807

func rec2020ToLinear(c float64) float64 {
	sign := 1.0
	if c < 0 {
		sign = -1.0
		c = -c
	}
	if c < rec2020Beta*4.5 {
		return sign * c / 4.5
	}
	return sign * math.Pow((c+rec2020Alpha-1)/rec2020Alpha, 1.0/0.45)
}

func linearToRec2020(c float64) float64 {
	sign := 1.0
	if c < 0 {
		sign = -1.0
		c = -c
	}
	if c < rec2020Beta {
		return sign * c * 4.5
	}
	return sign * (rec2020Alpha*math.Pow(c, 0.45) - (rec2020Alpha - 1))
}

func gammaToLinear(s Space, c Coords) Coords {
	switch s {
	case Srgb, DisplayP3:
		return Coords{srgbToLinear(c[0]), srgbToLinear(c[1]), srgbToLinear(c[2])}
	case Rec2020:
		return Coords{rec2020ToLinear(c[0]), rec2020ToLinear(c[1]), rec2020ToLinear(c[2])}
	}
	return c
}

func linearToGamma(s Space, c Coords) Coords {
	switch s {
	case LinearSrgb, LinearDisplayP3:
		return Coords{linearToSrgb(c[0]), linearToSrgb(c[1]), linearToSrgb(c[2])}
	case LinearRec2020:
		return Coords{linearToRec2020(c[0]), linearToRec2020(c[1]), linearToRec2020(c[2])}
	}
	return c
}

// gammaPairOf returns the linear space paired with a gamma-corrected RGB
// space, and vice versa, so the converter can take the one-hop shortcut
// instead of routing an RGB/linear-RGB pair through XYZ.
func gammaPairOf(s Space) (Space, bool) {
	switch s {
	case Srgb:
		return LinearSrgb, true
	case LinearSrgb:
		return Srgb, true
	case DisplayP3:
		return LinearDisplayP3, true
	case LinearDisplayP3:
		return DisplayP3, true
	case Rec2020:
		return LinearRec2020, true
	case LinearRec2020:
		return Rec2020, true
	}
	return 0, false
}
