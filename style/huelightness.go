package style

import "github.com/apparebit/prettypretty-sub000/color"

// grayChromaThreshold separates achromatic from chromatic ANSI theme
// entries when building a HueLightnessTable. A gray entry must fall at or
// below it; a chromatic entry must exceed it.
var grayChromaThreshold = 0.05

// SetGrayChromaThreshold overrides the chroma threshold used to separate
// achromatic from chromatic ANSI theme entries. Values at or below zero
// are ignored, keeping the previous threshold in place.
func SetGrayChromaThreshold(threshold float64) {
	if threshold > 0 {
		grayChromaThreshold = threshold
	}
}

// hueFamilyOrder lists the six chromatic ANSI color pairs in the
// counter-clockwise hue order a theme's live colors are expected to
// follow: red, yellow, green, cyan, blue, magenta.
var hueFamilyOrder = [6]struct {
	name            string
	regular, bright ThemeIndex
}{
	{"red", Red, BrightRed},
	{"yellow", Yellow, BrightYellow},
	{"green", Green, BrightGreen},
	{"cyan", Cyan, BrightCyan},
	{"blue", Blue, BrightBlue},
	{"magenta", Magenta, BrightMagenta},
}

// grayIndices lists the four ANSI theme entries a HueLightnessTable treats
// as achromatic anchors.
var grayIndices = [4]ThemeIndex{Black, BrightBlack, White, BrightWhite}

type ansiEntry struct {
	index            ThemeIndex
	hue, chroma, lr  float64
}

type familyEntry struct {
	name            string
	regular, bright ansiEntry
}

// HueLightnessTable is a validated partition of a theme's 16 ANSI colors
// into achromatic anchors sorted by revised lightness and chromatic
// families sorted by hue, used to classify an arbitrary color's closest
// ANSI match without falling back to an exhaustive nearest-neighbor scan.
type HueLightnessTable struct {
	grays    [4]ansiEntry
	families [6]familyEntry
}

// buildHueLightnessTable attempts to construct a HueLightnessTable from
// the theme's current 16 ANSI colors, measured in oklSpace (Oklch or
// Oklrch depending on the translator's chosen variant). Construction
// fails, returning ok=false, if any designated gray entry is chromatic,
// any designated chromatic entry is achromatic, or the chromatic entries'
// measured hues do not follow the required cyclic order; callers should
// fall back to exhaustive nearest-neighbor matching in that case.
func buildHueLightnessTable(theme *Theme, oklSpace color.Space) (*HueLightnessTable, bool) {
	var t HueLightnessTable

	for i, idx := range grayIndices {
		c := theme.Ansi(uint8(idx)).To(oklSpace).Coords
		if c[1] > grayChromaThreshold {
			return nil, false
		}
		t.grays[i] = ansiEntry{index: idx, hue: c[2], chroma: c[1], lr: c[0]}
	}
	sortAnsiEntriesByLr(t.grays[:])

	for i, fam := range hueFamilyOrder {
		reg := theme.Ansi(uint8(fam.regular)).To(oklSpace).Coords
		bri := theme.Ansi(uint8(fam.bright)).To(oklSpace).Coords
		if reg[1] <= grayChromaThreshold || bri[1] <= grayChromaThreshold {
			return nil, false
		}
		t.families[i] = familyEntry{
			name:    fam.name,
			regular: ansiEntry{index: fam.regular, hue: reg[2], chroma: reg[1], lr: reg[0]},
			bright:  ansiEntry{index: fam.bright, hue: bri[2], chroma: bri[1], lr: bri[0]},
		}
	}

	if !t.hueOrderConsistent() {
		return nil, false
	}
	return &t, true
}

func sortAnsiEntriesByLr(es []ansiEntry) {
	for i := 1; i < len(es); i++ {
		for j := i; j > 0 && es[j].lr < es[j-1].lr; j-- {
			es[j], es[j-1] = es[j-1], es[j]
		}
	}
}

// hueOrderConsistent reports whether the six families' representative
// hues advance monotonically around the circle in the declared order,
// each forward step spanning less than a full turn and all steps together
// adding up to a single turn.
func (t *HueLightnessTable) hueOrderConsistent() bool {
	total := 0.0
	for i := 0; i < len(t.families); i++ {
		cur := t.families[i].regular.hue
		next := t.families[(i+1)%len(t.families)].regular.hue
		step := next - cur
		for step < 0 {
			step += 360
		}
		if step <= 0 || step >= 360 {
			return false
		}
		total += step
	}
	return total < 720
}

// match classifies an Oklch/Oklrch-space coordinate triple against the
// table, returning the ANSI theme index of its closest entry.
func (t *HueLightnessTable) match(c color.Coords) ThemeIndex {
	if c[1] <= grayChromaThreshold || isNaN(c[2]) {
		return t.nearestGray(c[0])
	}
	return t.nearestChromatic(c[2], c[0])
}

func (t *HueLightnessTable) nearestGray(lr float64) ThemeIndex {
	best := t.grays[0]
	bestDist := absFloat(lr - best.lr)
	for _, g := range t.grays[1:] {
		if d := absFloat(lr - g.lr); d < bestDist {
			best, bestDist = g, d
		}
	}
	return best.index
}

// flatEntry is one member of the 12-entry cyclic hue list: each family's
// regular/bright pair sorted by hue ascending, families visited in the
// declared counter-clockwise order.
type flatEntry struct {
	ansiEntry
	family int
}

func (t *HueLightnessTable) flatten() [12]flatEntry {
	var flat [12]flatEntry
	for i, fam := range t.families {
		a, b := fam.regular, fam.bright
		if b.hue < a.hue {
			a, b = b, a
		}
		flat[2*i] = flatEntry{a, i}
		flat[2*i+1] = flatEntry{b, i}
	}
	return flat
}

// nearestChromatic finds the adjacent pair in the cyclic 12-entry hue
// list that brackets hue. If both members share a family, it picks
// between them by closer Lr directly; otherwise it decides whether hue
// lies closer to the bracket's leading or trailing family and picks by
// closer Lr within that family's regular/bright pair.
func (t *HueLightnessTable) nearestChromatic(hue, lr float64) ThemeIndex {
	flat := t.flatten()
	n := len(flat)
	lo := n - 1
	for i := 0; i < n; i++ {
		if hueInArc(flat[i].hue, flat[(i+1)%n].hue, hue) {
			lo = i
			break
		}
	}
	hi := (lo + 1) % n
	a, b := flat[lo], flat[hi]

	if a.family == b.family {
		return pickByLr(a.ansiEntry, b.ansiEntry, lr)
	}

	fa, fb := t.families[a.family], t.families[b.family]
	if hueDistance(hue, a.hue) <= hueDistance(hue, b.hue) {
		return pickByLr(fa.regular, fa.bright, lr)
	}
	return pickByLr(fb.regular, fb.bright, lr)
}

func pickByLr(a, b ansiEntry, lr float64) ThemeIndex {
	if absFloat(lr-a.lr) <= absFloat(lr-b.lr) {
		return a.index
	}
	return b.index
}

// hueInArc reports whether hue lies on the counter-clockwise arc from
// start to end (inclusive of start, exclusive of end), handling wraparound.
func hueInArc(start, end, hue float64) bool {
	span := end - start
	for span < 0 {
		span += 360
	}
	off := hue - start
	for off < 0 {
		off += 360
	}
	for off >= 360 {
		off -= 360
	}
	return off < span || span == 0
}

func isNaN(v float64) bool { return v != v }

func hueDistance(a, b float64) float64 {
	d := a - b
	for d < -180 {
		d += 360
	}
	for d > 180 {
		d -= 360
	}
	return absFloat(d)
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
