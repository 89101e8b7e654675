package style

import "fmt"

// Attr names one of the eight text attributes a FormatUpdate can toggle.
type Attr uint8

const (
	Bold Attr = iota
	Thin
	Italic
	Underlined
	Blinking
	Reversed
	Hidden
	Stricken

	attrCount = int(Stricken) + 1
)

type attrMask uint8

func (a Attr) bit() attrMask { return 1 << attrMask(a) }

// sgrEnableCode returns the parameter that enables this attribute.
func (a Attr) sgrEnableCode() int {
	switch a {
	case Bold:
		return 1
	case Thin:
		return 2
	case Italic:
		return 3
	case Underlined:
		return 4
	case Blinking:
		return 5
	case Reversed:
		return 7
	case Hidden:
		return 8
	case Stricken:
		return 9
	}
	return 0
}

// sgrDisableCode returns the parameter that disables this attribute.
// Bold and Thin share the single "normal intensity" code.
func (a Attr) sgrDisableCode() int {
	switch a {
	case Bold, Thin:
		return 22
	case Italic:
		return 23
	case Underlined:
		return 24
	case Blinking:
		return 25
	case Reversed:
		return 27
	case Hidden:
		return 28
	case Stricken:
		return 29
	}
	return 0
}

// attrOrder fixes the serialization order for both enable and disable
// parameter groups.
var attrOrder = [attrCount]Attr{Bold, Thin, Italic, Underlined, Blinking, Reversed, Hidden, Stricken}

// FormatUpdate is a pair of disjoint attribute sets: attributes to turn
// off, and attributes to turn on. Enabling Bold clears Thin from the
// disable set and vice versa, since the two share a single weight axis.
type FormatUpdate struct {
	disable attrMask
	enable  attrMask
}

// Enable returns an update with a turned on. If a is Bold or Thin, the
// other weight attribute is removed from the disable set.
func (f FormatUpdate) Enable(a Attr) FormatUpdate {
	f.enable |= a.bit()
	f.disable &^= a.bit()
	if a == Bold {
		f.disable &^= Thin.bit()
	} else if a == Thin {
		f.disable &^= Bold.bit()
	}
	return f
}

// Disable returns an update with a turned off.
func (f FormatUpdate) Disable(a Attr) FormatUpdate {
	f.disable |= a.bit()
	f.enable &^= a.bit()
	return f
}

func (f FormatUpdate) isEmpty() bool { return f.disable == 0 && f.enable == 0 }

// negate swaps the disable and enable sets.
func (f FormatUpdate) negate() FormatUpdate {
	return FormatUpdate{disable: f.enable, enable: f.disable}
}

func (f FormatUpdate) disableCodes() []int { return codesFor(f.disable, Attr.sgrDisableCode) }
func (f FormatUpdate) enableCodes() []int  { return codesFor(f.enable, Attr.sgrEnableCode) }

func codesFor(mask attrMask, code func(Attr) int) []int {
	var out []int
	seen := map[int]bool{}
	for _, a := range attrOrder {
		if mask&a.bit() == 0 {
			continue
		}
		c := code(a)
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

func (f FormatUpdate) String() string {
	return fmt.Sprintf("FormatUpdate{disable=%08b, enable=%08b}", f.disable, f.enable)
}
