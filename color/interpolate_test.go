package color

import "testing"

func TestInterpolateEndpoints(t *testing.T) {
	c1, _ := Parse("#e187fd")
	c2, _ := Parse("#f7aa31")
	ip := Prepare(c1.Space, c1.Coords, c2.Space, c2.Coords, Oklch, Shorter)
	start := ip.At(0)
	end := ip.At(1)
	wantStart := Convert(c1.Space, Oklch, c1.Coords)
	wantEnd := Convert(c2.Space, Oklch, c2.Coords)
	if !coordsApprox(start, wantStart, 1e-9) {
		t.Errorf("At(0) = %v, want %v", start, wantStart)
	}
	if !coordsApprox(end, wantEnd, 1e-9) {
		t.Errorf("At(1) = %v, want %v", end, wantEnd)
	}
}

func TestInterpolateMidpointOklchShorter(t *testing.T) {
	c1, _ := Parse("#e187fd")
	c2, _ := Parse("#f7aa31")
	ip := Prepare(c1.Space, c1.Coords, c2.Space, c2.Coords, Oklch, Shorter)
	mid := ip.At(0.5)
	if !approxEqual(mid[0], 0.77742, 5e-3) {
		t.Errorf("midpoint L = %v, want ~0.77742", mid[0])
	}
}

func TestHueInterpolationShorterNeverExceeds180(t *testing.T) {
	ip := Prepare(Oklch, Coords{0.5, 0.1, 10}, Oklch, Coords{0.5, 0.1, 350}, Oklch, Shorter)
	diff := ip.coords2[2] - ip.coords1[2]
	if diff > 180 || diff < -180 {
		t.Errorf("shorter arc diff = %v, want within [-180,180]", diff)
	}
}

func TestHueInterpolationLongerAtLeast180(t *testing.T) {
	ip := Prepare(Oklch, Coords{0.5, 0.1, 10}, Oklch, Coords{0.5, 0.1, 30}, Oklch, Longer)
	diff := ip.coords2[2] - ip.coords1[2]
	if diff > -180 && diff < 180 {
		t.Errorf("longer arc diff = %v, want magnitude >= 180", diff)
	}
}

func TestHueInterpolationIncreasingMonotonic(t *testing.T) {
	ip := Prepare(Oklch, Coords{0.5, 0.1, 350}, Oklch, Coords{0.5, 0.1, 10}, Oklch, Increasing)
	if ip.coords2[2] < ip.coords1[2] {
		t.Errorf("increasing policy must not decrease hue: %v -> %v", ip.coords1[2], ip.coords2[2])
	}
}

func TestInterpolateMissingCarryForward(t *testing.T) {
	c1 := Coords{0.5, 0.1, 10}
	c2Missing := Coords{0.7, floatNaN(), 20}
	ip := Prepare(Oklch, c1, Oklch, c2Missing, Oklch, Shorter)
	if ip.coords2[1] != c1[1] {
		t.Errorf("missing chroma should carry forward from other endpoint: got %v, want %v", ip.coords2[1], c1[1])
	}
}

func floatNaN() float64 {
	var f float64
	return f / f
}
