package color

// okFamilyPath fixes the Ok-family sub-graph as the path
// Oklrab - Oklab - Oklch - Oklrch, matching the six directed conversion
// edges: Oklab<->Oklch (polar/Cartesian), Oklab<->Oklrab and
// Oklch<->Oklrch (lightness rescaling).
var okFamilyPath = [4]Space{Oklrab, Oklab, Oklch, Oklrch}

func okFamilyIndex(s Space) int {
	for i, v := range okFamilyPath {
		if v == s {
			return i
		}
	}
	return -1
}

func okFamilyEdge(from, to Space, c Coords) Coords {
	switch {
	case from == Oklrab && to == Oklab:
		return oklrabToOklab(c)
	case from == Oklab && to == Oklrab:
		return oklabToOklrab(c)
	case from == Oklab && to == Oklch:
		return oklabToOklch(c)
	case from == Oklch && to == Oklab:
		return oklchToOklab(c)
	case from == Oklch && to == Oklrch:
		return Coords{lToLr(c[0]), c[1], c[2]}
	case from == Oklrch && to == Oklch:
		return Coords{lrToL(c[0]), c[1], c[2]}
	}
	return c
}

// convertOkFamily walks okFamilyPath one edge at a time, so e.g.
// Oklrab -> Oklrch takes the three direct edges Oklrab->Oklab->Oklch->Oklrch
// without ever touching XYZ.
func convertOkFamily(from, to Space, c Coords) Coords {
	i, j := okFamilyIndex(from), okFamilyIndex(to)
	step := 1
	if j < i {
		step = -1
	}
	cur := c
	for i != j {
		next := i + step
		cur = okFamilyEdge(okFamilyPath[i], okFamilyPath[next], cur)
		i = next
	}
	return cur
}

// toXyzD65 converts coordinates in space s to the XYZ D65 hub.
func toXyzD65(s Space, c Coords) Coords {
	switch s {
	case Xyz:
		return c
	case XyzD50:
		return xyzD50ToD65.mulVec(c)
	case Srgb:
		return linearSrgbToXyz.mulVec(gammaToLinear(Srgb, c))
	case LinearSrgb:
		return linearSrgbToXyz.mulVec(c)
	case DisplayP3:
		return linearP3ToXyz.mulVec(gammaToLinear(DisplayP3, c))
	case LinearDisplayP3:
		return linearP3ToXyz.mulVec(c)
	case Rec2020:
		return linearRec2020ToXyz.mulVec(gammaToLinear(Rec2020, c))
	case LinearRec2020:
		return linearRec2020ToXyz.mulVec(c)
	case Oklab:
		return oklabToXyz(c)
	case Oklch:
		return oklabToXyz(oklchToOklab(c))
	case Oklrab:
		return oklabToXyz(oklrabToOklab(c))
	case Oklrch:
		return oklabToXyz(convertOkFamily(Oklrch, Oklab, c))
	}
	return c
}

// fromXyzD65 converts XYZ D65 hub coordinates to space s.
func fromXyzD65(s Space, xyz Coords) Coords {
	switch s {
	case Xyz:
		return xyz
	case XyzD50:
		return xyzD65ToD50.mulVec(xyz)
	case Srgb:
		return linearToGamma(LinearSrgb, xyzToLinearSrgb.mulVec(xyz))
	case LinearSrgb:
		return xyzToLinearSrgb.mulVec(xyz)
	case DisplayP3:
		return linearToGamma(LinearDisplayP3, xyzToLinearP3.mulVec(xyz))
	case LinearDisplayP3:
		return xyzToLinearP3.mulVec(xyz)
	case Rec2020:
		return linearToGamma(LinearRec2020, xyzToLinearRec2020.mulVec(xyz))
	case LinearRec2020:
		return xyzToLinearRec2020.mulVec(xyz)
	case Oklab:
		return xyzToOklab(xyz)
	case Oklch:
		return oklabToOklch(xyzToOklab(xyz))
	case Oklrab:
		return oklabToOklrab(xyzToOklab(xyz))
	case Oklrch:
		return convertOkFamily(Oklab, Oklrch, xyzToOklab(xyz))
	}
	return xyz
}

// directConvert implements the in-family and RGB-gamma-pair shortcuts that
// bypass the XYZ hub. It returns ok=false when from and to are unrelated
// and must route through XYZ D65.
func directConvert(from, to Space, c Coords) (Coords, bool) {
	if from.IsOkFamily() && to.IsOkFamily() {
		return convertOkFamily(from, to, c), true
	}
	if pair, ok := gammaPairOf(from); ok && pair == to {
		if from.IsLinear() {
			return linearToGamma(from, c), true
		}
		return gammaToLinear(from, c), true
	}
	return c, false
}

// Convert routes coordinates c from space "from" to space "to". It first
// normalizes the input, returns immediately if from == to, takes an
// in-family or RGB-gamma-pair shortcut when one exists, and otherwise
// routes through the XYZ D65 hub (with a Bradford adaptation for XYZ D50).
func Convert(from, to Space, c Coords) Coords {
	c = Normalize(from, c)
	if from == to {
		return c
	}
	if out, ok := directConvert(from, to, c); ok {
		return Normalize(to, out)
	}
	xyz := toXyzD65(from, c)
	out := fromXyzD65(to, xyz)
	return Normalize(to, out)
}
