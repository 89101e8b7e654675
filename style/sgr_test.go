package style

import "testing"

func TestSGREmpty(t *testing.T) {
	var s Style
	if got := s.SGR(); got != "" {
		t.Errorf("empty style SGR = %q, want empty", got)
	}
}

func TestSGRBoldUnderlinedEmbeddedForeground(t *testing.T) {
	fg, err := Embedded(5, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	s := Style{Format: FormatUpdate{}.Enable(Bold).Enable(Underlined)}.WithForeground(fg)

	want := "\x1b[1;4;38;5;215m"
	if got := s.SGR(); got != want {
		t.Errorf("SGR() = %q, want %q", got, want)
	}

	neg := s.Negate()
	wantNeg := "\x1b[22;24;39m"
	if got := neg.SGR(); got != wantNeg {
		t.Errorf("negated SGR() = %q, want %q", got, wantNeg)
	}
}

func TestNegateOfNegateIsInvolutionWithoutDefaults(t *testing.T) {
	fg, _ := Ansi(3)
	bg, _ := Ansi(4)
	s := Style{Format: FormatUpdate{}.Enable(Italic).Enable(Reversed)}.WithForeground(fg).WithBackground(bg)

	twice := s.Negate().Negate()
	if twice.SGR() != s.SGR() {
		t.Errorf("negate twice = %q, want %q", twice.SGR(), s.SGR())
	}
}

func TestNegateOfDefaultColorantIsNoChange(t *testing.T) {
	s := Style{}.WithForeground(Default())
	neg := s.Negate()
	if neg.Foreground != nil {
		t.Errorf("negating a default foreground should stay unset, got %v", neg.Foreground)
	}
}

func TestBoldThinMutualExclusion(t *testing.T) {
	f := FormatUpdate{}.Disable(Bold).Disable(Thin).Enable(Bold)
	codes := f.disableCodes()
	for _, c := range codes {
		if c == 22 {
			t.Errorf("enabling Bold should clear the shared weight-disable code, got %v", codes)
		}
	}
}
