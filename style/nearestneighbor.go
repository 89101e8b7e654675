package style

import "github.com/apparebit/prettypretty-sub000/color"

// ToAnsi downsamples a high-resolution color to its closest ANSI theme
// entry: hue/lightness classification when the translator's table built
// successfully, otherwise exhaustive nearest-neighbor search over the 16
// ANSI coordinates in the chosen Ok variant.
func (t *Translator) ToAnsi(c color.Color) Colorant {
	var idx ThemeIndex
	if t.table != nil {
		idx = t.table.match(c.To(t.okSpace).Coords)
	} else {
		idx = t.nearestAnsiIndex(c)
	}
	out, _ := Ansi(uint8(idx))
	return out
}

func (t *Translator) nearestAnsiIndex(c color.Color) ThemeIndex {
	best := ThemeIndex(0)
	bestDist := color.DeltaEOk(t.variant, c.Space, c.Coords, t.theme.Ansi(0).Space, t.theme.Ansi(0).Coords)
	for i := 1; i < 16; i++ {
		entry := t.theme.Ansi(uint8(i))
		d := color.DeltaEOk(t.variant, c.Space, c.Coords, entry.Space, entry.Coords)
		if d < bestDist {
			bestDist, best = d, ThemeIndex(i)
		}
	}
	return best
}

// ToClosest8Bit downsamples a high-resolution color to its closest
// non-ANSI 8-bit repertoire entry (the 216-color embedded cube or the
// 24-step gray ramp) by nearest-neighbor ΔE_Ok.
func (t *Translator) ToClosest8Bit(c color.Color) Colorant {
	lab := c.To(t.variant.LabSpace())

	bestDist := -1.0
	var best Colorant

	for r := uint8(0); r < 6; r++ {
		for g := uint8(0); g < 6; g++ {
			for b := uint8(0); b < 6; b++ {
				idx := EmbeddedIndex(r, g, b) - 16
				d := color.DeltaEOk(t.variant, lab.Space, lab.Coords, t.okSpace, t.cube[idx])
				if bestDist < 0 || d < bestDist {
					bestDist = d
					best, _ = Embedded(r, g, b)
				}
			}
		}
	}
	for level := 0; level < 24; level++ {
		d := color.DeltaEOk(t.variant, lab.Space, lab.Coords, t.okSpace, t.gray[level])
		if d < bestDist {
			bestDist = d
			best, _ = Gray(uint8(level))
		}
	}
	return best
}

// ToAnsiRGB is a fast, theme-independent downsample: clip to linear sRGB,
// round each channel to {0,1}, compose a 3-bit index with blue as the
// high bit, and promote to the bright ANSI range when the index is at
// least 3.
func (t *Translator) ToAnsiRGB(c color.Color) Colorant {
	lin := c.To(color.LinearSrgb).Clip().Coords
	r, g, b := roundBit(lin[0]), roundBit(lin[1]), roundBit(lin[2])
	idx := b<<2 | g<<1 | r
	if idx >= 3 {
		idx += 8
	}
	out, _ := Ansi(uint8(idx))
	return out
}

func roundBit(v float64) int {
	if v >= 0.5 {
		return 1
	}
	return 0
}

// Cap downsamples a colorant to what fidelity can represent: nil for
// plain/no-color, ANSI-only for fidelity ANSI, 24-bit/hi-res downsampled
// to 8-bit for Fidelity8Bit, hi-res downsampled to 24-bit for
// Fidelity24Bit, and identity for FidelityHiRes.
func (t *Translator) Cap(c Colorant, fidelity Fidelity) *Colorant {
	switch fidelity {
	case Plain, NoColor:
		return nil
	case FidelityAnsi:
		if c.Kind == KindDefault || c.Kind == KindAnsi {
			return &c
		}
		out := t.ToAnsi(t.Resolve(c, true))
		return &out
	case Fidelity8Bit:
		if c.Kind == KindRgb || c.Kind == KindHiRes {
			out := t.ToClosest8Bit(t.Resolve(c, true))
			return &out
		}
		return &c
	case Fidelity24Bit:
		if c.Kind == KindHiRes {
			out := Rgb(clipByte(c.HiRes.To(color.Srgb).Coords))
			return &out
		}
		return &c
	default: // FidelityHiRes
		return &c
	}
}

func clipByte(c color.Coords) (uint8, uint8, uint8) {
	return toByte(c[0]), toByte(c[1]), toByte(c[2])
}

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
