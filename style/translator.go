package style

import "github.com/apparebit/prettypretty-sub000/color"

// Translator downsamples high-resolution colors to whatever repertoire a
// terminal's fidelity actually supports, against a live Theme and a chosen
// Oklab variant. It precomputes the perceptual coordinates of every
// ANSI, embedded-cube, and gray-ramp entry once at construction so that
// matching a single color never re-walks the conversion graph more than
// necessary.
type Translator struct {
	theme   *Theme
	variant color.OkVariant
	okSpace color.Space

	ansiOk [16]color.Coords // theme ANSI colors in okSpace
	cube   [216]color.Coords
	gray   [24]color.Coords

	table *HueLightnessTable
}

// NewTranslator builds a Translator bound to theme (copied, not aliased)
// and variant. It attempts to build a HueLightnessTable from the theme's
// current ANSI colors; ToAnsi falls back to exhaustive nearest-neighbor
// matching when that fails.
func NewTranslator(theme Theme, variant color.OkVariant) *Translator {
	t := &Translator{theme: &theme, variant: variant}
	t.okSpace = variant.PolarSpace()
	t.rebuild()
	return t
}

// SetTheme replaces the translator's theme and recomputes every cached
// coordinate and the hue-lightness table.
func (t *Translator) SetTheme(theme Theme) {
	t.theme = &theme
	t.rebuild()
}

func (t *Translator) rebuild() {
	for i := 0; i < 16; i++ {
		t.ansiOk[i] = t.theme.Ansi(uint8(i)).To(t.okSpace).Coords
	}
	for r := uint8(0); r < 6; r++ {
		for g := uint8(0); g < 6; g++ {
			for b := uint8(0); b < 6; b++ {
				idx := EmbeddedIndex(r, g, b) - 16
				t.cube[idx] = EmbeddedColor(r, g, b).To(t.okSpace).Coords
			}
		}
	}
	for level := 0; level < 24; level++ {
		t.gray[level] = GrayColor(uint8(level)).To(t.okSpace).Coords
	}
	t.table, _ = buildHueLightnessTable(t.theme, t.okSpace)
}

// Theme returns a copy of the translator's current theme.
func (t *Translator) Theme() Theme { return *t.theme }
