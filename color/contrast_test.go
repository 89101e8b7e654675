package color

import "testing"

func TestContrastSignIndicatesPolarity(t *testing.T) {
	black := Coords{0, 0, 0}
	white := Coords{1, 1, 1}
	darkOnLight := Contrast(Srgb, black, Srgb, white)
	lightOnDark := Contrast(Srgb, white, Srgb, black)
	if darkOnLight <= 0 {
		t.Errorf("black-on-white contrast should be positive, got %v", darkOnLight)
	}
	if lightOnDark >= 0 {
		t.Errorf("white-on-black contrast should be negative, got %v", lightOnDark)
	}
}

func TestContrastSameColorIsZero(t *testing.T) {
	c := Coords{0.5, 0.5, 0.5}
	if v := Contrast(Srgb, c, Srgb, c); v != 0 {
		t.Errorf("same-color contrast = %v, want 0", v)
	}
}

func TestWCAGContrastRatioBounds(t *testing.T) {
	ratio := WCAGContrastRatio(Srgb, Coords{0, 0, 0}, Srgb, Coords{1, 1, 1})
	if ratio < 20 || ratio > 21.1 {
		t.Errorf("black/white WCAG ratio = %v, want ~21", ratio)
	}
}
