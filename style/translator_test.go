package style

import (
	"testing"

	"github.com/apparebit/prettypretty-sub000/color"
)

func vgaTheme() Theme {
	rgb := func(r, g, b int) color.Color { return color.From24Bit(uint8(r), uint8(g), uint8(b)) }
	var th Theme
	th.SetAnsi(0, rgb(0, 0, 0))
	th.SetAnsi(1, rgb(170, 0, 0))
	th.SetAnsi(2, rgb(0, 170, 0))
	th.SetAnsi(3, rgb(170, 85, 0))
	th.SetAnsi(4, rgb(0, 0, 170))
	th.SetAnsi(5, rgb(170, 0, 170))
	th.SetAnsi(6, rgb(0, 170, 170))
	th.SetAnsi(7, rgb(170, 170, 170))
	th.SetAnsi(8, rgb(85, 85, 85))
	th.SetAnsi(9, rgb(255, 85, 85))
	th.SetAnsi(10, rgb(85, 255, 85))
	th.SetAnsi(11, rgb(255, 255, 85))
	th.SetAnsi(12, rgb(85, 85, 255))
	th.SetAnsi(13, rgb(255, 85, 255))
	th.SetAnsi(14, rgb(85, 255, 255))
	th.SetAnsi(15, rgb(255, 255, 255))
	th.SetForeground(rgb(229, 229, 229))
	th.SetBackground(rgb(0, 0, 0))
	return th
}

func TestToClosestAnsiBrightYellow(t *testing.T) {
	tr := NewTranslator(vgaTheme(), color.OkRevised)
	got := tr.ToAnsi(color.NewSRGB(1, 1, 0))
	want, _ := Ansi(uint8(BrightYellow))
	if got != want {
		t.Errorf("ToAnsi(yellow) = %+v, want %+v", got, want)
	}
}

func TestToClosest8BitEmbeddedRoundTrip(t *testing.T) {
	tr := NewTranslator(vgaTheme(), color.OkRevised)
	for r := uint8(0); r < 6; r++ {
		for g := uint8(0); g < 6; g++ {
			for b := uint8(0); b < 6; b++ {
				c := EmbeddedColor(r, g, b)
				got := tr.ToClosest8Bit(c)
				want, _ := Embedded(r, g, b)
				if got != want {
					t.Errorf("ToClosest8Bit(embedded %d,%d,%d) = %+v, want %+v", r, g, b, got, want)
				}
			}
		}
	}
}

func TestResolveAnsiMatchesTheme(t *testing.T) {
	th := vgaTheme()
	tr := NewTranslator(th, color.OkOriginal)
	for i := uint8(0); i < 16; i++ {
		c, _ := Ansi(i)
		got := tr.Resolve(c, true)
		want := th.Ansi(i)
		if !got.Equal(want) {
			t.Errorf("Resolve(Ansi(%d)) = %v, want %v", i, got, want)
		}
	}
}

func TestToAnsiRGBPromotesBright(t *testing.T) {
	tr := NewTranslator(vgaTheme(), color.OkOriginal)
	got := tr.ToAnsiRGB(color.NewSRGB(1, 1, 1))
	if got.Kind != KindAnsi || got.Ansi != uint8(BrightWhite) {
		t.Errorf("ToAnsiRGB(white) = %+v, want BrightWhite", got)
	}
}

func TestCapPlainIsNil(t *testing.T) {
	tr := NewTranslator(vgaTheme(), color.OkOriginal)
	c := Rgb(10, 20, 30)
	if got := tr.Cap(c, Plain); got != nil {
		t.Errorf("Cap(plain) = %v, want nil", got)
	}
}
