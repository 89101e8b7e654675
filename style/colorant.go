// License: GPLv3 Copyright: 2025, prettypretty-sub000 contributors

// Package style implements the terminal color repertoires (ANSI, embedded
// RGB cube, gray gradient, 24-bit), the live theme, the translator that
// downsamples high-resolution colors to a terminal's actual fidelity, and
// the immutable Style/SGR serialization built on top of them.
package style

import (
	"fmt"
	"strconv"

	"github.com/apparebit/prettypretty-sub000/color"
)

// ColorantKind tags which of the six colorant variants a Colorant holds.
type ColorantKind uint8

const (
	KindDefault ColorantKind = iota
	KindAnsi
	KindEmbedded
	KindGray
	KindRgb
	KindHiRes
)

// Colorant is a value a terminal can display: the configured default, one
// of the 16 ANSI colors, an embedded 6x6x6 RGB cube index, a 24-step gray
// gradient index, a direct 24-bit RGB triple, or a high-resolution Color.
type Colorant struct {
	Kind   ColorantKind
	Ansi   uint8 // 0..=15
	R, G, B uint8 // Embedded: 0..=5 each; Rgb: 0..=255 each
	Gray   uint8 // 0..=23
	HiRes  color.Color
}

func Default() Colorant { return Colorant{Kind: KindDefault} }

func Ansi(i uint8) (Colorant, error) {
	if i > 15 {
		return Colorant{}, OutOfRangeError{Name: "ansi index", Value: int(i), Min: 0, Max: 15}
	}
	return Colorant{Kind: KindAnsi, Ansi: i}, nil
}

func Embedded(r, g, b uint8) (Colorant, error) {
	for _, v := range []uint8{r, g, b} {
		if v > 5 {
			return Colorant{}, OutOfRangeError{Name: "embedded component", Value: int(v), Min: 0, Max: 5}
		}
	}
	return Colorant{Kind: KindEmbedded, R: r, G: g, B: b}, nil
}

func Gray(level uint8) (Colorant, error) {
	if level > 23 {
		return Colorant{}, OutOfRangeError{Name: "gray level", Value: int(level), Min: 0, Max: 23}
	}
	return Colorant{Kind: KindGray, Gray: level}, nil
}

func Rgb(r, g, b uint8) Colorant { return Colorant{Kind: KindRgb, R: r, G: g, B: b} }

func HiRes(c color.Color) Colorant { return Colorant{Kind: KindHiRes, HiRes: c} }

// OutOfRangeError reports an integer argument outside its declared range.
type OutOfRangeError struct {
	Name     string
	Value    int
	Min, Max int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("style: %s %d out of range [%d,%d]", e.Name, e.Value, e.Min, e.Max)
}

// embeddedMagnitude maps an embedded-cube component (0..=5) to its 0..1
// channel magnitude.
func embeddedMagnitude(k uint8) float64 {
	if k == 0 {
		return 0
	}
	return float64(55+40*int(k)) / 255
}

// EmbeddedIndex computes the 8-bit palette index for an embedded RGB
// colorant: 16 + 36*r + 6*g + b.
func EmbeddedIndex(r, g, b uint8) int { return 16 + 36*int(r) + 6*int(g) + int(b) }

// GrayIndex computes the 8-bit palette index for a gray-gradient colorant:
// 232 + level.
func GrayIndex(level uint8) int { return 232 + int(level) }

// sgrParams returns the SGR parameter tokens for this colorant as a
// foreground (base 30/38/39) or background (base 40/48/49) color.
func (c Colorant) sgrParams(foreground bool) []string {
	fgBase, bgBase := 30, 40
	switch c.Kind {
	case KindDefault:
		if foreground {
			return []string{"39"}
		}
		return []string{"49"}
	case KindAnsi:
		base := fgBase
		if !foreground {
			base = bgBase
		}
		n := int(c.Ansi)
		offset := 0
		if n >= 8 {
			offset = 60
			n -= 8
		}
		return []string{strconv.Itoa(base + offset + n)}
	case KindEmbedded:
		idx := EmbeddedIndex(c.R, c.G, c.B)
		return eightBitParams(idx, foreground)
	case KindGray:
		idx := GrayIndex(c.Gray)
		return eightBitParams(idx, foreground)
	case KindRgb:
		return trueColorParams(c.R, c.G, c.B, foreground)
	case KindHiRes:
		// A HiRes colorant has no direct SGR encoding; callers must cap it
		// to a terminal-representable colorant first via Translator.Cap.
		return nil
	}
	return nil
}

func eightBitParams(idx int, foreground bool) []string {
	base := "38"
	if !foreground {
		base = "48"
	}
	return []string{base, "5", strconv.Itoa(idx)}
}

func trueColorParams(r, g, b uint8, foreground bool) []string {
	base := "38"
	if !foreground {
		base = "48"
	}
	return []string{base, "2", strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(b))}
}

// AnsiMeta describes an ANSI colorant's base-8 color, brightness, and
// whether it names an achromatic slot (black, white, or their brights).
type AnsiMeta struct {
	Base8     uint8
	IsBright  bool
	IsAchromatic bool
}

func AnsiMetaOf(i uint8) AnsiMeta {
	base := i % 8
	bright := i >= 8
	achromatic := base == 0 || base == 7
	return AnsiMeta{Base8: base, IsBright: bright, IsAchromatic: achromatic}
}
