package style

import "testing"

func TestAnsiRangeValidation(t *testing.T) {
	if _, err := Ansi(16); err == nil {
		t.Error("Ansi(16) should be out of range")
	}
	if _, err := Ansi(15); err != nil {
		t.Errorf("Ansi(15) should be valid, got %v", err)
	}
}

func TestEmbeddedIndexFormula(t *testing.T) {
	if got := EmbeddedIndex(5, 3, 1); got != 215 {
		t.Errorf("EmbeddedIndex(5,3,1) = %d, want 215", got)
	}
}

func TestGrayIndexFormula(t *testing.T) {
	if got := GrayIndex(0); got != 232 {
		t.Errorf("GrayIndex(0) = %d, want 232", got)
	}
	if got := GrayIndex(23); got != 255 {
		t.Errorf("GrayIndex(23) = %d, want 255", got)
	}
}

func TestAnsiMetaBrightAndAchromatic(t *testing.T) {
	m := AnsiMetaOf(uint8(BrightWhite))
	if !m.IsBright || !m.IsAchromatic || m.Base8 != 7 {
		t.Errorf("AnsiMetaOf(BrightWhite) = %+v", m)
	}
	m2 := AnsiMetaOf(uint8(Red))
	if m2.IsBright || m2.IsAchromatic {
		t.Errorf("AnsiMetaOf(Red) = %+v", m2)
	}
}

func TestSgrParamsAnsiBrightOffset(t *testing.T) {
	c, _ := Ansi(uint8(BrightRed))
	params := c.sgrParams(true)
	if len(params) != 1 || params[0] != "91" {
		t.Errorf("sgrParams(BrightRed) = %v, want [91]", params)
	}
}

func TestSgrParamsDefault(t *testing.T) {
	if got := Default().sgrParams(true); len(got) != 1 || got[0] != "39" {
		t.Errorf("Default foreground sgrParams = %v, want [39]", got)
	}
	if got := Default().sgrParams(false); len(got) != 1 || got[0] != "49" {
		t.Errorf("Default background sgrParams = %v, want [49]", got)
	}
}
