package color

import (
	"math"
	"strconv"
	"strings"
)

const defaultPrecision = 5

var colorFunctionNameFor = map[Space]string{
	Srgb: "srgb", LinearSrgb: "linear-srgb", DisplayP3: "display-p3",
	LinearDisplayP3: "--linear-display-p3", Rec2020: "rec2020",
	LinearRec2020: "--linear-rec2020", Oklrab: "--oklrab", Oklrch: "--oklrch",
	Xyz: "xyz", XyzD50: "xyz-d50",
}

func formatComponent(v float64, precision int) string {
	if math.IsNaN(v) {
		return "none"
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Format renders the receiver in its CSS Color 4-like textual form.
// precision is the number of fractional digits for non-hue coordinates;
// hue (the third coordinate of a polar space) uses precision-2, floored at
// zero. A NaN coordinate is rendered as the literal "none".
func (c Color) Format(precision int) string {
	if precision < 0 {
		precision = defaultPrecision
	}
	huePrecision := precision - 2
	if huePrecision < 0 {
		huePrecision = 0
	}

	co := c.Coords
	switch c.Space {
	case Oklab:
		return "oklab(" + formatComponent(co[0], precision) + " " + formatComponent(co[1], precision) + " " + formatComponent(co[2], precision) + ")"
	case Oklch:
		return "oklch(" + formatComponent(co[0], precision) + " " + formatComponent(co[1], precision) + " " + formatComponent(co[2], huePrecision) + ")"
	}

	name, ok := colorFunctionNameFor[c.Space]
	if !ok {
		name = c.Space.String()
	}
	parts := []string{formatComponent(co[0], precision), formatComponent(co[1], precision), formatComponent(co[2], precision)}
	return "color(" + name + " " + strings.Join(parts, " ") + ")"
}

// String formats the receiver with the default precision of 5 fractional
// digits (3 for hue).
func (c Color) String() string { return c.Format(defaultPrecision) }
