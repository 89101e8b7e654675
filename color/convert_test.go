package color

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func coordsApprox(a, b Coords, tol float64) bool {
	return approxEqual(a[0], b[0], tol) && approxEqual(a[1], b[1], tol) && approxEqual(a[2], b[2], tol)
}

func TestConvertIdentityIsNormalize(t *testing.T) {
	spaces := []Space{Srgb, LinearSrgb, DisplayP3, LinearDisplayP3, Rec2020, LinearRec2020, Oklab, Oklch, Oklrab, Oklrch, Xyz, XyzD50}
	for _, s := range spaces {
		c := Coords{0.3, -0.1, 40}
		got := Convert(s, s, c)
		want := Normalize(s, c)
		if got != want {
			t.Errorf("Convert(%v,%v,...) = %v, want %v", s, s, got, want)
		}
	}
}

func TestHexToOklrch(t *testing.T) {
	col, err := Parse("#6c7479")
	if err != nil {
		t.Fatal(err)
	}
	if col.Space != Srgb {
		t.Fatalf("expected Srgb, got %v", col.Space)
	}
	oklrch := Convert(Srgb, Oklrch, col.Coords)
	want := Coords{0.4827939631351205, 0.012421260273578993, 234.98550533688365}
	if !coordsApprox(oklrch, want, 2e-3) {
		t.Errorf("oklrch = %v, want ~%v", oklrch, want)
	}
}

func TestGamutMapDisplayP3GreenIntoSrgb(t *testing.T) {
	p3Green := Color{DisplayP3, Coords{0, 1, 0}}
	srgb := p3Green.To(Srgb)
	mapped := srgb.ToGamut()
	if !mapped.InGamut() {
		t.Fatalf("mapped color not in gamut: %v", mapped.Coords)
	}
	want := Coords{0.0, 0.9857637107710325, 0.15974244397344017}
	if !coordsApprox(mapped.Coords, want, 5e-3) {
		t.Errorf("mapped = %v, want ~%v", mapped.Coords, want)
	}
}

func TestRGBGammaRoundTrip(t *testing.T) {
	for _, c := range []Coords{{0, 0, 0}, {1, 1, 1}, {0.2, 0.5, 0.8}} {
		lin := Convert(Srgb, LinearSrgb, c)
		back := Convert(LinearSrgb, Srgb, lin)
		if !coordsApprox(back, c, 1e-9) {
			t.Errorf("round trip %v -> %v -> %v", c, lin, back)
		}
	}
}

func TestOkFamilyRoundTrip(t *testing.T) {
	base := Coords{0.7, 0.1, 50.0}
	oklch := base
	oklab := Convert(Oklch, Oklab, oklch)
	back := Convert(Oklab, Oklch, oklab)
	if !coordsApprox(back, oklch, 1e-9) {
		t.Errorf("oklch->oklab->oklch: %v -> %v -> %v", oklch, oklab, back)
	}

	oklrch := Convert(Oklch, Oklrch, oklch)
	back2 := Convert(Oklrch, Oklch, oklrch)
	if !coordsApprox(back2, oklch, 1e-9) {
		t.Errorf("oklch->oklrch->oklch: %v -> %v -> %v", oklch, oklrch, back2)
	}

	oklrab := Convert(Oklab, Oklrab, oklab)
	back3 := Convert(Oklrab, Oklab, oklrab)
	if !coordsApprox(back3, oklab, 1e-9) {
		t.Errorf("oklab->oklrab->oklab: %v -> %v -> %v", oklab, oklrab, back3)
	}
}

func TestNaNHueZeroChromaRoundTrip(t *testing.T) {
	oklch := Coords{0.5, 0, math.NaN()}
	oklab := Convert(Oklch, Oklab, oklch)
	if math.IsNaN(oklab[1]) || math.IsNaN(oklab[2]) {
		t.Fatalf("oklab has NaN a/b: %v", oklab)
	}
	back := Convert(Oklab, Oklch, oklab)
	if !math.IsNaN(back[2]) {
		t.Errorf("expected NaN hue, got %v", back[2])
	}
}

func TestInGamutImpliesClipIsNormalize(t *testing.T) {
	c := Coords{0.2, 0.4, 0.6}
	if Clip(Srgb, c) != Normalize(Srgb, c) {
		t.Errorf("clip of in-gamut color changed it")
	}
}

func TestXYZHubConsistency(t *testing.T) {
	c := Coords{0.3, 0.6, 0.9}
	direct := Convert(DisplayP3, Xyz, c)
	viaSrgbHub := Convert(Srgb, Xyz, Convert(DisplayP3, Srgb, c))
	if !coordsApprox(direct, viaSrgbHub, 1e-9) {
		t.Errorf("hub consistency broke: %v vs %v", direct, viaSrgbHub)
	}
}
