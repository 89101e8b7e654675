package term

import "testing"

func TestRequestCursorPositionParse(t *testing.T) {
	pos, err := RequestCursorPosition.Parse([]byte("6;10R"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if pos != (CursorPosition{Row: 6, Col: 10}) {
		t.Errorf("Parse() = %+v, want {6 10}", pos)
	}
}

func TestRequestCursorPositionParseMalformed(t *testing.T) {
	if _, err := RequestCursorPosition.Parse([]byte("nope")); err == nil {
		t.Error("Parse() error = nil, want error")
	}
}

func TestRequestBatchModeParse(t *testing.T) {
	cases := []struct {
		payload string
		want    BatchMode
	}{
		{"?2026;0$y", BatchNotSupported},
		{"?2026;1$y", BatchEnabled},
		{"?2026;2$y", BatchDisabled},
		{"?2026;4$y", BatchPermanentlyDisabled},
		{"?2026;3$y", BatchUndefined},
	}
	for _, c := range cases {
		got, err := RequestBatchMode.Parse([]byte(c.payload))
		if err != nil {
			t.Errorf("Parse(%q) error = %v", c.payload, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %v, want %v", c.payload, got, c.want)
		}
	}
}

func TestRequestTerminalIDParse(t *testing.T) {
	id, err := RequestTerminalID.Parse([]byte(">|kitty(0.26.1)"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if id.Name != "kitty" || id.Version != "0.26.1" {
		t.Errorf("Parse() = %+v, want {kitty 0.26.1}", id)
	}

	id, err = RequestTerminalID.Parse([]byte(">|xterm"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if id.Name != "xterm" || id.Version != "" {
		t.Errorf("Parse() = %+v, want {xterm \"\"}", id)
	}
}

func TestRequestThemeANSIParseRed(t *testing.T) {
	c, err := RequestThemeANSI(1).Parse([]byte("4;1;rgb:ff/00/00"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Coords[0] != 1 || c.Coords[1] != 0 || c.Coords[2] != 0 {
		t.Errorf("Parse() coords = %v, want {1 0 0}", c.Coords)
	}
}

func TestRequestActiveStyleParse(t *testing.T) {
	s, err := RequestActiveStyle.Parse([]byte("1$r1;31m"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s != "1;31" {
		t.Errorf("Parse() = %q, want %q", s, "1;31")
	}
}

func TestSimpleCommandStrings(t *testing.T) {
	cases := []struct {
		cmd  Command
		want string
	}{
		{ResetStyle, "\x1b[m"},
		{MoveTo(6, 10), "\x1b[6;10H"},
		{MoveUp(3), "\x1b[3A"},
		{EnterAlternateScreen, "\x1b[?1049h"},
		{BeginBatchedOutput, "\x1b[?2026h"},
		{RequestCursorPosition, "\x1b[6n"},
		{RequestThemeANSI(7), "\x1b]4;7;?\x1b\\"},
		{RequestThemeForeground, "\x1b]10;?\x1b\\"},
	}
	for _, c := range cases {
		if got := c.cmd.String(); got != c.want {
			t.Errorf("%#v.String() = %q, want %q", c.cmd, got, c.want)
		}
	}
}
