package color

import "math"

// APCA-derived constants for the asymmetric perceptual contrast
// approximation used by Contrast. These mirror the widely deployed
// "APCA-W3" polynomial: text (foreground) and background luminances are
// not interchangeable, so darker-on-light and lighter-on-dark pairs use
// different exponents and a soft-clamp near black.
const (
	contrastNormBG  = 0.56
	contrastNormTXT = 0.57
	contrastRevBG   = 0.65
	contrastRevTXT  = 0.62
	contrastBlkThrs = 0.022
	contrastBlkClmp = 1.414
	contrastScale   = 1.14
	contrastLoClip  = 0.1
	contrastDeltaYMin = 0.0005
)

func softClamp(y float64) float64 {
	if y < contrastBlkThrs {
		return y + math.Pow(contrastBlkThrs-y, contrastBlkClmp)
	}
	return y
}

// relativeLuminance computes linear-light relative luminance for a color,
// choosing linear sRGB when the color is in that gamut and falling back to
// linear Display P3 (a superset) when it is not.
func relativeLuminance(s Space, c Coords) float64 {
	srgb := Convert(s, Srgb, c)
	target := LinearSrgb
	lin := Convert(s, LinearSrgb, c)
	if !InGamut(Srgb, srgb) {
		target = LinearDisplayP3
		lin = Convert(s, LinearDisplayP3, c)
	}
	_ = target
	return 0.2126729*lin[0] + 0.7151522*lin[1] + 0.0721750*lin[2]
}

// Contrast returns the asymmetric perceptual contrast between foreground
// color fg and background color bg. The sign of the result indicates
// polarity: positive when the background is lighter, negative when the
// foreground is lighter. Magnitude is not bounded to [0,100]; callers
// compare against APCA-style Lc thresholds.
func Contrast(fgSpace Space, fg Coords, bgSpace Space, bg Coords) float64 {
	yText := softClamp(relativeLuminance(fgSpace, fg))
	yBG := softClamp(relativeLuminance(bgSpace, bg))

	if math.Abs(yBG-yText) < contrastDeltaYMin {
		return 0
	}

	if yBG > yText {
		sapc := (math.Pow(yBG, contrastNormBG) - math.Pow(yText, contrastNormTXT)) * contrastScale
		if sapc < contrastLoClip {
			return 0
		}
		return sapc * 100
	}
	sapc := (math.Pow(yBG, contrastRevBG) - math.Pow(yText, contrastRevTXT)) * contrastScale
	if sapc > -contrastLoClip {
		return 0
	}
	return sapc * 100
}

// WCAGContrastRatio is the classic (L1 + 0.05) / (L2 + 0.05) luminance-ratio
// contrast check, retained alongside the perceptual Contrast formula above
// since some accessibility guidelines still key off it.
func WCAGContrastRatio(s1 Space, c1 Coords, s2 Space, c2 Coords) float64 {
	l1 := relativeLuminance(s1, c1)
	l2 := relativeLuminance(s2, c2)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}
