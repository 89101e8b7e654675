package color

import (
	"errors"
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Coords
	}{
		{"three digit", "#fff", Coords{1, 1, 1}},
		{"six digit", "#6c7479", Coords{108.0 / 255, 116.0 / 255, 121.0 / 255}},
		{"uppercase", "#FFFFFF", Coords{1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if got.Space != Srgb {
				t.Fatalf("space = %v, want Srgb", got.Space)
			}
			if !coordsApprox(got.Coords, tt.want, 1e-9) {
				t.Errorf("coords = %v, want %v", got.Coords, tt.want)
			}
		})
	}
}

func TestParseHexErrors(t *testing.T) {
	for _, in := range []string{"#ff", "#fffff", "#gggggg"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) expected error", in)
		} else if !errors.Is(err, ErrMalformedHex) {
			t.Errorf("Parse(%q) = %v, want ErrMalformedHex", in, err)
		}
	}
}

func TestParseRgbColon(t *testing.T) {
	got, err := Parse("rgb:ff/00/00")
	if err != nil {
		t.Fatal(err)
	}
	if !coordsApprox(got.Coords, Coords{1, 0, 0}, 1e-9) {
		t.Errorf("coords = %v", got.Coords)
	}

	got2, err := Parse("rgb:f/0/0")
	if err != nil {
		t.Fatal(err)
	}
	if !coordsApprox(got2.Coords, Coords{1, 0, 0}, 1e-9) {
		t.Errorf("single-digit coords = %v", got2.Coords)
	}
}

func TestParseColorFunction(t *testing.T) {
	got, err := Parse("color(display-p3 0 1 0)")
	if err != nil {
		t.Fatal(err)
	}
	if got.Space != DisplayP3 {
		t.Fatalf("space = %v", got.Space)
	}
	if !coordsApprox(got.Coords, Coords{0, 1, 0}, 1e-9) {
		t.Errorf("coords = %v", got.Coords)
	}
}

func TestParseOklabOklch(t *testing.T) {
	got, err := Parse("oklch(0.7 0.1 180)")
	if err != nil {
		t.Fatal(err)
	}
	if got.Space != Oklch {
		t.Fatalf("space = %v", got.Space)
	}
	if !coordsApprox(got.Coords, Coords{0.7, 0.1, 180}, 1e-9) {
		t.Errorf("coords = %v", got.Coords)
	}
}

func TestParseRejectsNone(t *testing.T) {
	if _, err := Parse("oklch(none 0.1 180)"); err == nil {
		t.Errorf("expected error parsing 'none' on input")
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	col := NewOklch(0.77742, 0.15, 45.5)
	formatted := col.Format(5)
	back, err := Parse(formatted)
	if err != nil {
		t.Fatal(err)
	}
	if !col.Equal(back) {
		t.Errorf("round trip %v -> %q -> %v not equal", col, formatted, back)
	}
}

func TestFormatNaNIsNone(t *testing.T) {
	col := NewOklch(0.5, 0, math.NaN())
	formatted := col.Format(5)
	if formatted != "oklch(0.50000 0.00000 none)" {
		t.Errorf("formatted = %q", formatted)
	}
}
