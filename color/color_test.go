package color

import (
	"math"
	"testing"
)

func TestEqualToleratesDrift(t *testing.T) {
	a := NewSRGB(0.5, 0.5, 0.5)
	b := NewSRGB(0.5+1e-9, 0.5-1e-9, 0.5)
	if !a.Equal(b) {
		t.Errorf("expected drift-tolerant equality")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("expected equal hashes for equal colors")
	}
}

func TestEqualHueModulo360(t *testing.T) {
	a := NewOklch(0.5, 0.1, 10)
	b := NewOklch(0.5, 0.1, 370)
	if !a.Equal(b) {
		t.Errorf("expected hue-modulo-360 equality")
	}
}

func TestEqualDifferentSpaceNotEqual(t *testing.T) {
	a := NewSRGB(1, 1, 1)
	b := NewOklch(1, 0, math.NaN())
	if a.Equal(b) {
		t.Errorf("colors in different spaces must not be equal")
	}
}

func TestDefaultColorIsXYZOrigin(t *testing.T) {
	var c Color
	if c.Space != Xyz || c.Coords != (Coords{0, 0, 0}) {
		t.Errorf("zero value = %v, want XYZ origin", c)
	}
}
