package color

import "math"

func distanceOk(a, b Coords) float64 {
	dl := a[0] - b[0]
	da := a[1] - b[1]
	db := a[2] - b[2]
	return math.Sqrt(dl*dl + da*da + db*db)
}

// OkVariant selects which Oklab-family lightness axis ΔE_Ok measures: the
// original Oklab L or the revised Oklrab Lr.
type OkVariant uint8

const (
	OkOriginal OkVariant = iota
	OkRevised
)

func (v OkVariant) labSpace() Space { return v.LabSpace() }

// LabSpace returns the Cartesian Oklab/Oklrab counterpart of the
// variant's lightness axis.
func (v OkVariant) LabSpace() Space {
	if v == OkRevised {
		return Oklrab
	}
	return Oklab
}

// PolarSpace returns the polar Oklch/Oklrch counterpart of the variant's
// lightness axis, for callers that need hue and chroma directly.
func (v OkVariant) PolarSpace() Space {
	if v == OkRevised {
		return Oklrch
	}
	return Oklch
}

// DeltaEOk computes the Euclidean color difference between colors in space
// s1/s2 with coordinates c1/c2, in Oklab or Oklrab depending on variant.
func DeltaEOk(variant OkVariant, s1 Space, c1 Coords, s2 Space, c2 Coords) float64 {
	lab := variant.labSpace()
	return distanceOk(Convert(s1, lab, c1), Convert(s2, lab, c2))
}
