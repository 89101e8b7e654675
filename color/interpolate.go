package color

import "math"

// HuePolicy selects how interpolation resolves the arc between two hue
// angles when the interpolation space is polar.
type HuePolicy uint8

const (
	Shorter HuePolicy = iota
	Longer
	Increasing
	Decreasing
)

func adjustHue(policy HuePolicy, h1, h2 float64) (float64, float64) {
	diff := h2 - h1
	switch policy {
	case Shorter:
		if diff > 180 {
			h2 -= 360
		} else if diff < -180 {
			h2 += 360
		}
	case Longer:
		if diff > 0 && diff < 180 {
			h2 -= 360
		} else if diff > -180 && diff <= 0 {
			h2 += 360
		}
	case Increasing:
		if diff < 0 {
			h2 += 360
		}
	case Decreasing:
		if diff > 0 {
			h2 -= 360
		}
	}
	return h1, h2
}

// Interpolator holds two colors already converted into a common
// interpolation space, with missing coordinates carried forward from the
// other endpoint and hue pairs adjusted for the chosen arc. Preparing and
// sampling are separate so a producer emitting a gradient can amortize the
// one-time preparation cost.
type Interpolator struct {
	space          Space
	coords1        Coords
	coords2        Coords
}

// analogousMask reports, per native-space axis, whether the input
// coordinate was missing (NaN) prior to normalization, so that missingness
// can be carried into the interpolation space when the native and
// interpolation spaces coincide.
func analogousMask(c Coords) [3]bool {
	return [3]bool{isMissing(c[0]), isMissing(c[1]), isMissing(c[2])}
}

// Prepare converts c1 and c2 into interpolationSpace, fills any coordinate
// missing in one endpoint from the other (carry-forward), and adjusts the
// hue pair per policy when interpolationSpace is polar.
func Prepare(c1Space Space, c1 Coords, c2Space Space, c2 Coords, interpolationSpace Space, policy HuePolicy) *Interpolator {
	mask1 := analogousMask(c1)
	mask2 := analogousMask(c2)

	coords1 := Convert(c1Space, interpolationSpace, c1)
	coords2 := Convert(c2Space, interpolationSpace, c2)

	if c1Space == interpolationSpace {
		for i, missing := range mask1 {
			if missing {
				coords1[i] = math.NaN()
			}
		}
	}
	if c2Space == interpolationSpace {
		for i, missing := range mask2 {
			if missing {
				coords2[i] = math.NaN()
			}
		}
	}

	for i := 0; i < 3; i++ {
		m1, m2 := isMissing(coords1[i]), isMissing(coords2[i])
		switch {
		case m1 && !m2:
			coords1[i] = coords2[i]
		case m2 && !m1:
			coords2[i] = coords1[i]
		case m1 && m2:
			coords1[i], coords2[i] = 0, 0
		}
	}

	if interpolationSpace.IsPolar() {
		coords1[2], coords2[2] = adjustHue(policy, coords1[2], coords2[2])
	}

	return &Interpolator{space: interpolationSpace, coords1: coords1, coords2: coords2}
}

// Space reports the space sampled colors are produced in.
func (ip *Interpolator) Space() Space { return ip.space }

// At linearly interpolates each coordinate at fraction t. At(0) reproduces
// the (carry-forward filled) first endpoint exactly; At(1) the second.
// In a polar space the sampled hue is reported within [0, 360).
func (ip *Interpolator) At(t float64) Coords {
	var out Coords
	for i := 0; i < 3; i++ {
		out[i] = ip.coords1[i] + (ip.coords2[i]-ip.coords1[i])*t
	}
	if ip.space.IsPolar() {
		out[2] = math.Mod(out[2], 360)
		if out[2] < 0 {
			out[2] += 360
		}
	}
	return out
}
