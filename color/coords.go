package color

import "math"

// Coords holds the three raw coordinates of a color in some space. Any
// coordinate may be NaN to denote "powerless" (e.g. hue when chroma is
// zero) or "missing" (explicitly unset for interpolation carry-forward).
type Coords [3]float64

func isMissing(v float64) bool { return math.IsNaN(v) }

// Normalize applies post-normalization invariants for coordinates in
// space s: NaN coordinates become 0, except that in a polar Ok-family
// space a NaN hue forces chroma to 0 instead. Ok-family lightness is
// clamped to [0,1] and polar chroma is clamped to [0, +Inf).
func Normalize(s Space, c Coords) Coords {
	out := c
	for i := range out {
		if isMissing(out[i]) && !(s.IsPolar() && i == 2) {
			out[i] = 0
		}
	}
	if s.IsPolar() {
		if isMissing(c[2]) {
			out[1] = 0
			out[2] = math.NaN()
		} else if out[1] < 0 {
			out[1] = 0
		}
	}
	if s.IsOkFamily() {
		out[0] = clamp01(out[0])
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
