package color

import "math"

// InGamut reports whether coordinates c are within space s's gamut. Only
// RGB spaces have a finite gamut in this model; every other space is
// always considered in-gamut.
func InGamut(s Space, c Coords) bool {
	if !s.IsRGB() {
		return true
	}
	return c[0] >= 0 && c[0] <= 1 && c[1] >= 0 && c[1] <= 1 && c[2] >= 0 && c[2] <= 1
}

// Clip clamps coordinates in an RGB space to [0,1] per channel; every other
// space is returned unchanged (the identity clip).
func Clip(s Space, c Coords) Coords {
	if !s.IsRGB() {
		return c
	}
	return Coords{clamp01(c[0]), clamp01(c[1]), clamp01(c[2])}
}

const (
	gamutMapJND     = 0.02
	gamutMapEpsilon = 1e-4
)

// ToGamut maps coordinates c in space s into s's gamut, following the CSS
// Color 4 algorithm: binary search chroma in Oklch for the largest value
// whose RGB-clipped rendering is within the JND of the unclipped
// candidate, measured in Oklab.
func ToGamut(s Space, c Coords) Coords {
	c = Normalize(s, c)
	if !s.IsBounded() || InGamut(s, c) {
		return c
	}
	oklch := Convert(s, Oklch, c)
	l := oklch[0]
	if l >= 1 {
		return Convert(Oklch, s, Coords{1, 0, math.NaN()})
	}
	if l <= 0 {
		return Convert(Oklch, s, Coords{0, 0, math.NaN()})
	}

	candidateInSpace := func(chroma float64) Coords {
		return Convert(Oklch, s, Coords{l, chroma, oklch[2]})
	}

	lo, hi := 0.0, oklch[1]
	var lastClipped Coords
	for hi-lo > gamutMapEpsilon {
		mid := (lo + hi) / 2
		candidate := candidateInSpace(mid)
		clipped := Clip(s, candidate)
		if InGamut(s, candidate) {
			lo = mid
			continue
		}
		candidateLab := Convert(s, Oklab, candidate)
		clippedLab := Convert(s, Oklab, clipped)
		if distanceOk(candidateLab, clippedLab) < gamutMapJND {
			lo = mid
			lastClipped = clipped
		} else {
			hi = mid
		}
	}
	final := candidateInSpace(lo)
	if InGamut(s, final) {
		return final
	}
	if lastClipped != (Coords{}) {
		return lastClipped
	}
	return Clip(s, final)
}
