package style

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/apparebit/prettypretty-sub000/color"
)

// ThemeIndex names the 18 slots of a Theme in the order
// theme queries use: the 16 ANSI colors (regular 0..7, bright 8..15), then the
// default foreground, then the default background.
type ThemeIndex uint8

const (
	Black ThemeIndex = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
	DefaultForeground
	DefaultBackground

	ThemeSize = int(DefaultBackground) + 1
)

// Theme is the terminal's current mapping from the 16 ANSI indices and the
// two default layers to concrete high-resolution colors. It is owned by a
// Translator and replaced wholesale on theme change.
type Theme struct {
	Colors [ThemeSize]color.Color
}

// Ansi returns the theme's color for ANSI index i (0..=15).
func (t *Theme) Ansi(i uint8) color.Color { return t.Colors[i] }

func (t *Theme) SetAnsi(i uint8, c color.Color) { t.Colors[i] = c }

func (t *Theme) Foreground() color.Color { return t.Colors[DefaultForeground] }
func (t *Theme) Background() color.Color { return t.Colors[DefaultBackground] }

func (t *Theme) SetForeground(c color.Color) { t.Colors[DefaultForeground] = c }
func (t *Theme) SetBackground(c color.Color) { t.Colors[DefaultBackground] = c }

// themeIndexNames names every slot a Theme carries, used only to build a
// stable, alphabetically ordered listing for diagnostics.
var themeIndexNames = map[ThemeIndex]string{
	Black: "black", Red: "red", Green: "green", Yellow: "yellow",
	Blue: "blue", Magenta: "magenta", Cyan: "cyan", White: "white",
	BrightBlack: "bright-black", BrightRed: "bright-red", BrightGreen: "bright-green",
	BrightYellow: "bright-yellow", BrightBlue: "bright-blue", BrightMagenta: "bright-magenta",
	BrightCyan: "bright-cyan", BrightWhite: "bright-white",
	DefaultForeground: "foreground", DefaultBackground: "background",
}

// SlotNames returns every theme slot's name in alphabetical order, for
// diagnostics and config-file reporting that must not depend on Go's
// unordered map iteration.
func SlotNames() []string {
	names := maps.Values(themeIndexNames)
	slices.Sort(names)
	return names
}
