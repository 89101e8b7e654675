package term

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apparebit/prettypretty-sub000/color"
)

// Command is any value whose text representation is the ANSI escape
// sequence a terminal should receive to carry out one instruction.
type Command interface {
	fmt.Stringer
}

// simpleCommand is a zero-argument command with a fixed sequence.
type simpleCommand string

func (c simpleCommand) String() string { return string(c) }

const (
	ResetStyle               = simpleCommand("\x1b[m")
	SaveWindowTitleOnStack   = simpleCommand("\x1b[22;2t")
	LoadWindowTitleFromStack = simpleCommand("\x1b[23;2t")
	EnterAlternateScreen     = simpleCommand("\x1b[?1049h")
	ExitAlternateScreen      = simpleCommand("\x1b[?1049l")
	EraseScreen              = simpleCommand("\x1b[2J")
	EraseLine                = simpleCommand("\x1b[2K")
	HideCursor               = simpleCommand("\x1b[?25l")
	ShowCursor               = simpleCommand("\x1b[?25h")
	SaveCursorPosition       = simpleCommand("\x1b7")
	RestoreCursorPosition    = simpleCommand("\x1b8")
	BeginBatchedOutput       = simpleCommand("\x1b[?2026h")
	EndBatchedOutput         = simpleCommand("\x1b[?2026l")
	BeginBracketedPaste      = simpleCommand("\x1b[?2004h")
	EndBracketedPaste        = simpleCommand("\x1b[?2004l")
)

// numArgCommand is a one-argument command of the form prefix, decimal
// argument, suffix.
type numArgCommand struct {
	prefix, suffix string
	n              uint16
}

func (c numArgCommand) String() string { return fmt.Sprintf("%s%d%s", c.prefix, c.n, c.suffix) }

func MoveUp(n uint16) Command    { return numArgCommand{"\x1b[", "A", n} }
func MoveDown(n uint16) Command  { return numArgCommand{"\x1b[", "B", n} }
func MoveRight(n uint16) Command { return numArgCommand{"\x1b[", "C", n} }
func MoveLeft(n uint16) Command  { return numArgCommand{"\x1b[", "D", n} }
func MoveToColumn(n uint16) Command { return numArgCommand{"\x1b[", "G", n} }
func MoveToRow(n uint16) Command    { return numArgCommand{"\x1b[", "d", n} }

// MoveTo positions the cursor at the given row and column, both 1-based.
func MoveTo(row, col uint16) Command {
	return simpleCommand(fmt.Sprintf("\x1b[%d;%dH", row, col))
}

// SetWindowTitle sets the terminal window's title via OSC 2.
func SetWindowTitle(title string) Command {
	return simpleCommand("\x1b]2;" + title + "\x1b\\")
}

// Link renders text as a clickable hyperlink using OSC 8. An empty id omits
// the `id=` parameter.
func Link(text, href, id string) Command {
	var b strings.Builder
	b.WriteString("\x1b]8;")
	if id != "" {
		b.WriteString("id=")
		b.WriteString(id)
	}
	b.WriteByte(';')
	b.WriteString(href)
	b.WriteString("\x1b\\")
	b.WriteString(text)
	b.WriteString("\x1b]8;;\x1b\\")
	return simpleCommand(b.String())
}

// SetForegroundDefault, SetBackgroundDefault reset a layer to the theme's
// default color via SGR 39/49.
const (
	SetForegroundDefault = simpleCommand("\x1b[39m")
	SetBackgroundDefault = simpleCommand("\x1b[49m")
)

// SetForeground8/SetBackground8 select one of the 256 indexed colors.
func SetForeground8(index uint8) Command { return simpleCommand(fmt.Sprintf("\x1b[38;5;%dm", index)) }
func SetBackground8(index uint8) Command { return simpleCommand(fmt.Sprintf("\x1b[48;5;%dm", index)) }

// SetForeground24/SetBackground24 select a 24-bit truecolor value.
func SetForeground24(r, g, b uint8) Command {
	return simpleCommand(fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b))
}

func SetBackground24(r, g, b uint8) Command {
	return simpleCommand(fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b))
}

// Query is a command that also knows how to validate and parse the
// payload of the response it triggers.
type Query[R any] interface {
	Command
	// ExpectedControl is the introducer the response's token must carry.
	ExpectedControl() Control
	// Parse turns a validated response payload into a typed result.
	Parse(payload []byte) (R, error)
}

func badPayload(what string) error { return ScannerError{Kind: "malformed-" + what} }

// ---------------------------------------------------------------- cursor

type requestCursorPosition struct{}

// RequestCursorPosition asks the terminal to report the cursor's current
// row and column.
var RequestCursorPosition Query[CursorPosition] = requestCursorPosition{}

// CursorPosition is a 1-based row/column pair as reported by the terminal.
type CursorPosition struct{ Row, Col uint16 }

func (requestCursorPosition) String() string          { return "\x1b[6n" }
func (requestCursorPosition) ExpectedControl() Control { return CSI }

func (requestCursorPosition) Parse(payload []byte) (CursorPosition, error) {
	s := string(payload)
	s, ok := strings.CutSuffix(s, "R")
	if !ok {
		return CursorPosition{}, badPayload("cursor-position")
	}
	row, col, ok := strings.Cut(s, ";")
	if !ok {
		return CursorPosition{}, badPayload("cursor-position")
	}
	r, err1 := strconv.ParseUint(row, 10, 16)
	c, err2 := strconv.ParseUint(col, 10, 16)
	if err1 != nil || err2 != nil {
		return CursorPosition{}, badPayload("cursor-position")
	}
	return CursorPosition{Row: uint16(r), Col: uint16(c)}, nil
}

// ------------------------------------------------------------ batch mode

type requestBatchMode struct{}

// RequestBatchMode asks the terminal whether it supports synchronized
// output batching.
var RequestBatchMode Query[BatchMode] = requestBatchMode{}

// BatchMode is the terminal's reported synchronized-output support.
type BatchMode uint8

const (
	BatchNotSupported BatchMode = iota
	BatchEnabled
	BatchDisabled
	BatchUndefined
	BatchPermanentlyDisabled
)

func (requestBatchMode) String() string          { return "\x1b[?2026$p" }
func (requestBatchMode) ExpectedControl() Control { return CSI }

func (requestBatchMode) Parse(payload []byte) (BatchMode, error) {
	s := string(payload)
	s, ok := strings.CutPrefix(s, "?2026;")
	if !ok {
		return 0, badPayload("batch-mode")
	}
	s, ok = strings.CutSuffix(s, "$y")
	if !ok {
		return 0, badPayload("batch-mode")
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, badPayload("batch-mode")
	}
	switch n {
	case 0:
		return BatchNotSupported, nil
	case 1:
		return BatchEnabled, nil
	case 2:
		return BatchDisabled, nil
	case 4:
		return BatchPermanentlyDisabled, nil
	default:
		return BatchUndefined, nil
	}
}

// -------------------------------------------------------------- terminal id

type requestTerminalID struct{}

// RequestTerminalID asks the terminal to identify itself by name and,
// optionally, version.
var RequestTerminalID Query[TerminalID] = requestTerminalID{}

// TerminalID is the terminal's self-reported name and optional version.
type TerminalID struct {
	Name    string
	Version string
}

func (requestTerminalID) String() string          { return "\x1b[>q" }
func (requestTerminalID) ExpectedControl() Control { return DCS }

func (requestTerminalID) Parse(payload []byte) (TerminalID, error) {
	s := string(payload)
	s, ok := strings.CutPrefix(s, ">|")
	if !ok {
		return TerminalID{}, badPayload("terminal-id")
	}
	if rest, ok := strings.CutSuffix(s, ")"); ok {
		name, version, ok := strings.Cut(rest, "(")
		if !ok {
			return TerminalID{}, badPayload("terminal-id")
		}
		return TerminalID{Name: strings.TrimSpace(name), Version: strings.TrimSpace(version)}, nil
	}
	return TerminalID{Name: strings.TrimSpace(s)}, nil
}

// -------------------------------------------------------------- active style

type requestActiveStyle struct{}

// RequestActiveStyle asks the terminal for the SGR parameters describing
// its currently active style.
var RequestActiveStyle Query[string] = requestActiveStyle{}

func (requestActiveStyle) String() string          { return "\x1bP$qm\x1b\\" }
func (requestActiveStyle) ExpectedControl() Control { return DCS }

func (requestActiveStyle) Parse(payload []byte) (string, error) {
	s := string(payload)
	s, ok := strings.CutPrefix(s, "1$r")
	if !ok {
		return "", badPayload("active-style")
	}
	s, ok = strings.CutSuffix(s, "m")
	if !ok {
		return "", badPayload("active-style")
	}
	return s, nil
}

// -------------------------------------------------------------- theme colors

// requestThemeColor queries one theme entry: an ANSI index (OSC 4) or one
// of the two default layers (OSC 10/11).
type requestThemeColor struct {
	prefix string // e.g. "4;7;" or "10;"
}

// RequestThemeANSI queries the concrete color the terminal currently
// assigns to ANSI index i (0..15).
func RequestThemeANSI(i uint8) Query[color.Color] {
	return requestThemeColor{prefix: fmt.Sprintf("4;%d;", i)}
}

// RequestThemeForeground and RequestThemeBackground query the terminal's
// default foreground/background colors via OSC 10/11.
var (
	RequestThemeForeground Query[color.Color] = requestThemeColor{prefix: "10;"}
	RequestThemeBackground Query[color.Color] = requestThemeColor{prefix: "11;"}
)

func (q requestThemeColor) String() string          { return "\x1b]" + q.prefix + "?\x1b\\" }
func (requestThemeColor) ExpectedControl() Control { return OSC }

func (q requestThemeColor) Parse(payload []byte) (color.Color, error) {
	s := string(payload)
	s, ok := strings.CutPrefix(s, q.prefix)
	if !ok {
		return color.Color{}, badPayload("theme-color")
	}
	c, err := color.Parse(s)
	if err != nil {
		return color.Color{}, err
	}
	return c, nil
}
