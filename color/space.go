// License: GPLv3 Copyright: 2025, prettypretty-sub000 contributors

// Package color implements a graph of color-space conversions routed
// through a canonical XYZ D65 hub, gamut mapping by binary search,
// perceptual distance in Oklab, and interpolation with missing-component
// carry-forward.
package color

import "fmt"

// Space is a tagged color space identifier. Conversion routing is a match
// on this tag rather than dynamic dispatch, so every pair of spaces is
// exhaustively handled at compile time.
type Space uint8

const (
	Xyz Space = iota
	Srgb
	LinearSrgb
	DisplayP3
	LinearDisplayP3
	Rec2020
	LinearRec2020
	Oklab
	Oklch
	Oklrab
	Oklrch
	XyzD50
)

var spaceNames = [...]string{
	Srgb: "srgb", LinearSrgb: "linear-srgb", DisplayP3: "display-p3",
	LinearDisplayP3: "--linear-display-p3", Rec2020: "rec2020",
	LinearRec2020: "--linear-rec2020", Oklab: "oklab", Oklch: "oklch",
	Oklrab: "--oklrab", Oklrch: "--oklrch", Xyz: "xyz", XyzD50: "xyz-d50",
}

func (s Space) String() string {
	if int(s) < len(spaceNames) {
		return spaceNames[s]
	}
	return fmt.Sprintf("Space(%d)", uint8(s))
}

// IsPolar reports whether the space's third coordinate is a hue angle.
func (s Space) IsPolar() bool {
	return s == Oklch || s == Oklrch
}

// IsRGB reports whether the space is bounded to [0,1] per coordinate when
// in gamut (gamma-corrected or linear-light RGB triples).
func (s Space) IsRGB() bool {
	switch s {
	case Srgb, LinearSrgb, DisplayP3, LinearDisplayP3, Rec2020, LinearRec2020:
		return true
	}
	return false
}

// IsOkFamily reports whether the space is one of the four Oklab-derived
// spaces, whose lightness axis is bounded to [0,1].
func (s Space) IsOkFamily() bool {
	switch s {
	case Oklab, Oklch, Oklrab, Oklrch:
		return true
	}
	return false
}

// IsBounded reports whether the space has a well defined gamut at all
// (RGB spaces and the bounded-lightness Ok-family members do; XYZ and the
// two D50/D65 hubs do not).
func (s Space) IsBounded() bool {
	return s.IsRGB() || s.IsOkFamily()
}

// IsLinear reports whether the space's RGB-like coordinates are linear
// light rather than gamma-companded.
func (s Space) IsLinear() bool {
	switch s {
	case LinearSrgb, LinearDisplayP3, LinearRec2020, Xyz, XyzD50:
		return true
	}
	return false
}
