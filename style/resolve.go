package style

import "github.com/apparebit/prettypretty-sub000/color"

// EmbeddedColor returns the high-resolution sRGB color for an embedded
// 6x6x6 cube colorant: 0 maps to
// 0.0, 1..=5 map to (55+40*k)/255.
func EmbeddedColor(r, g, b uint8) color.Color {
	return color.NewSRGB(embeddedMagnitude(r), embeddedMagnitude(g), embeddedMagnitude(b))
}

// GrayColor returns the high-resolution sRGB color for a 24-step gray
// gradient colorant, using the standard xterm 256-color gray-ramp mapping
// (8 + 10*level)/255.
func GrayColor(level uint8) color.Color {
	v := float64(8+10*int(level)) / 255
	return color.NewSRGB(v, v, v)
}

// Resolve produces a high-resolution color from any colorant: a theme
// lookup for Default/Ansi, the embedded/gray formulas above, promotion to
// sRGB for direct 24-bit, and identity for HiRes. foreground selects which
// theme default layer a Default colorant resolves to.
func (t *Translator) Resolve(c Colorant, foreground bool) color.Color {
	switch c.Kind {
	case KindDefault:
		if foreground {
			return t.theme.Foreground()
		}
		return t.theme.Background()
	case KindAnsi:
		return t.theme.Ansi(c.Ansi)
	case KindEmbedded:
		return EmbeddedColor(c.R, c.G, c.B)
	case KindGray:
		return GrayColor(c.Gray)
	case KindRgb:
		return color.From24Bit(c.R, c.G, c.B)
	case KindHiRes:
		return c.HiRes
	}
	return color.Color{}
}
