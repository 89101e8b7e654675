package term

// scanState is the scanner's current position in the escape-sequence
// grammar: Ground plus per-family scanning states for single-character
// escapes, CSI, DCS, and the string-typed sequences (OSC/SOS/PM/APC)
// with their string-end substates.
type scanState uint8

const (
	stGround scanState = iota
	stEscape
	stEscapeIntermediate
	stSingleShift
	stStringBody
	stStringEnd
	stCsiEntry
	stCsiParam
	stCsiIntermediate
	stCsiIgnore
	stDcsEntry
	stDcsParam
	stDcsIntermediate
	stDcsPassthrough
	stDcsPassthroughEnd
	stDcsIgnore
	stDcsIgnoreEnd
)

// scanAction is the side effect the scanner performs for one input byte.
type scanAction uint8

const (
	actPrint scanAction = iota
	actStartSequence
	actIgnoreByte
	actRetainByte
	actAbortSequence
	actAbortThenRetry
	actDispatch
	actHandleControl
)

type controlRef struct {
	control Control
	has     bool
}

func ctl(c Control) controlRef { return controlRef{control: c, has: true} }

// transition is the scanner's total (state, byte) -> (state, action,
// optional control) function.
func transition(state scanState, b byte) (scanState, scanAction, controlRef) {
	switch state {
	case stGround:
		return ground(b)
	case stEscape:
		return escape(b)
	case stEscapeIntermediate:
		return escapeIntermediate(b)
	case stSingleShift:
		return singleShift(b)
	case stStringBody:
		return stringBody(b)
	case stStringEnd:
		return stringEnd(b)
	case stCsiEntry:
		return csiEntry(b)
	case stCsiParam:
		return csiParam(b)
	case stCsiIntermediate:
		return csiIntermediate(b)
	case stCsiIgnore:
		return csiIgnore(b)
	case stDcsEntry:
		return dcsEntry(b)
	case stDcsParam:
		return dcsParam(b)
	case stDcsIntermediate:
		return dcsIntermediate(b)
	case stDcsPassthrough:
		return dcsPassthrough(b)
	case stDcsPassthroughEnd:
		return dcsPassthroughEnd(b)
	case stDcsIgnore:
		return dcsIgnore(b)
	case stDcsIgnoreEnd:
		return dcsIgnoreEnd(b)
	}
	return state, actIgnoreByte, controlRef{}
}

func otherwise(b byte, state scanState) (scanState, scanAction, controlRef) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1c && b <= 0x1f):
		return state, actHandleControl, controlRef{}
	case b == 0x18 || b == 0x1a || b == 0x1b:
		return stGround, actAbortThenRetry, controlRef{}
	case b >= 0x20 && b <= 0x7e:
		return state, actIgnoreByte, controlRef{}
	case b == 0x7f:
		return state, actIgnoreByte, controlRef{}
	case b == 0x9c:
		return stGround, actAbortSequence, controlRef{}
	case b >= 0x80 && b < 0xa0:
		return stGround, actAbortThenRetry, controlRef{}
	default:
		return state, actIgnoreByte, controlRef{}
	}
}

func ground(b byte) (scanState, scanAction, controlRef) {
	switch {
	case b == 0x18 || b == 0x1a:
		return stGround, actHandleControl, controlRef{}
	case b == 0x1b:
		return stEscape, actStartSequence, ctl(ESC)
	case b >= 0x20 && b <= 0x7f:
		return stGround, actPrint, controlRef{}
	case (b >= 0x80 && b <= 0x8d) || (b >= 0x91 && b <= 0x97) || b == 0x99 || b == 0x9a:
		return stGround, actHandleControl, controlRef{}
	case b == 0x8e:
		return stSingleShift, actStartSequence, ctl(SS2)
	case b == 0x8f:
		return stSingleShift, actStartSequence, ctl(SS3)
	case b == 0x90:
		return stDcsEntry, actStartSequence, ctl(DCS)
	case b == 0x98:
		return stStringBody, actStartSequence, ctl(SOS)
	case b == 0x9b:
		return stCsiEntry, actStartSequence, ctl(CSI)
	case b == 0x9c:
		return stGround, actIgnoreByte, controlRef{}
	case b == 0x9d:
		return stStringBody, actStartSequence, ctl(OSC)
	case b == 0x9e:
		return stStringBody, actStartSequence, ctl(PM)
	case b == 0x9f:
		return stStringBody, actStartSequence, ctl(APC)
	case b >= 0xa0:
		return stGround, actPrint, controlRef{}
	default:
		return otherwise(b, stGround)
	}
}

func escape(b byte) (scanState, scanAction, controlRef) {
	switch {
	case b >= 0x20 && b <= 0x2f:
		return stEscapeIntermediate, actRetainByte, controlRef{}
	case (b >= 0x30 && b <= 0x4d) || (b >= 0x51 && b <= 0x57) || b == 0x59 || b == 0x5a || b == 0x5c || (b >= 0x60 && b <= 0x7e):
		return stGround, actDispatch, controlRef{}
	case b == 0x4e:
		return stSingleShift, actIgnoreByte, ctl(SS2)
	case b == 0x4f:
		return stSingleShift, actIgnoreByte, ctl(SS3)
	case b == 0x50:
		return stDcsEntry, actIgnoreByte, ctl(DCS)
	case b == 0x58:
		return stStringBody, actIgnoreByte, ctl(SOS)
	case b == 0x5b:
		return stCsiEntry, actIgnoreByte, ctl(CSI)
	case b == 0x5d:
		return stStringBody, actIgnoreByte, ctl(OSC)
	case b == 0x5e:
		return stStringBody, actIgnoreByte, ctl(PM)
	case b == 0x5f:
		return stStringBody, actIgnoreByte, ctl(APC)
	default:
		return otherwise(b, stEscape)
	}
}

func escapeIntermediate(b byte) (scanState, scanAction, controlRef) {
	switch {
	case b >= 0x20 && b <= 0x2f:
		return stEscapeIntermediate, actRetainByte, controlRef{}
	case b >= 0x30 && b <= 0x7e:
		return stGround, actDispatch, controlRef{}
	default:
		return otherwise(b, stEscapeIntermediate)
	}
}

func singleShift(b byte) (scanState, scanAction, controlRef) {
	if b >= 0x20 && b <= 0x7e {
		return stGround, actDispatch, controlRef{}
	}
	return otherwise(b, stSingleShift)
}

func stringBody(b byte) (scanState, scanAction, controlRef) {
	switch {
	case (b <= 0x06) || (b >= 0x08 && b <= 0x17) || b == 0x19 || (b >= 0x1c && b <= 0x1f):
		return stStringBody, actIgnoreByte, controlRef{}
	case b == 0x07:
		return stGround, actDispatch, controlRef{}
	case b == 0x1b:
		return stStringEnd, actIgnoreByte, controlRef{}
	case b >= 0x20 && b <= 0x7f:
		return stStringBody, actRetainByte, controlRef{}
	case b == 0x9c:
		return stGround, actDispatch, controlRef{}
	default:
		return otherwise(b, stStringBody)
	}
}

func stringEnd(b byte) (scanState, scanAction, controlRef) {
	if b == 0x5c {
		return stGround, actDispatch, controlRef{}
	}
	return stEscape, actAbortThenRetry, ctl(ESC)
}

func csiEntry(b byte) (scanState, scanAction, controlRef) {
	switch {
	case b >= 0x20 && b <= 0x2f:
		return stCsiIntermediate, actRetainByte, controlRef{}
	case (b >= 0x30 && b <= 0x39) || (b >= 0x3b && b <= 0x3f):
		return stCsiParam, actRetainByte, controlRef{}
	case b == 0x3a:
		return stCsiIgnore, actIgnoreByte, controlRef{}
	case b >= 0x40 && b <= 0x7e:
		return stGround, actDispatch, controlRef{}
	default:
		return otherwise(b, stCsiEntry)
	}
}

func csiParam(b byte) (scanState, scanAction, controlRef) {
	switch {
	case b >= 0x20 && b <= 0x2f:
		return stCsiIntermediate, actRetainByte, controlRef{}
	case (b >= 0x30 && b <= 0x39) || b == 0x3b:
		return stCsiParam, actRetainByte, controlRef{}
	case b == 0x3a || (b >= 0x3c && b <= 0x3f):
		return stCsiIgnore, actIgnoreByte, controlRef{}
	case b >= 0x40 && b <= 0x7e:
		return stGround, actDispatch, controlRef{}
	default:
		return otherwise(b, stCsiParam)
	}
}

func csiIntermediate(b byte) (scanState, scanAction, controlRef) {
	switch {
	case b >= 0x20 && b <= 0x2f:
		return stCsiIntermediate, actRetainByte, controlRef{}
	case b >= 0x30 && b <= 0x3f:
		return stCsiIgnore, actIgnoreByte, controlRef{}
	case b >= 0x40 && b <= 0x7e:
		return stGround, actDispatch, controlRef{}
	default:
		return otherwise(b, stCsiIntermediate)
	}
}

func csiIgnore(b byte) (scanState, scanAction, controlRef) {
	switch {
	case b >= 0x20 && b <= 0x3f:
		return stCsiIgnore, actIgnoreByte, controlRef{}
	case b >= 0x40 && b <= 0x7e:
		return stGround, actAbortSequence, controlRef{}
	default:
		return otherwise(b, stCsiIgnore)
	}
}

func dcsEntry(b byte) (scanState, scanAction, controlRef) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1c && b <= 0x1f):
		return stDcsEntry, actIgnoreByte, controlRef{}
	case b >= 0x20 && b <= 0x2f:
		return stDcsIntermediate, actRetainByte, controlRef{}
	case (b >= 0x30 && b <= 0x39) || (b >= 0x3b && b <= 0x3f):
		return stDcsParam, actRetainByte, controlRef{}
	case b == 0x3a:
		return stDcsIgnore, actIgnoreByte, controlRef{}
	case b >= 0x40 && b <= 0x7e:
		return stDcsPassthrough, actRetainByte, controlRef{}
	default:
		return otherwise(b, stDcsEntry)
	}
}

func dcsParam(b byte) (scanState, scanAction, controlRef) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1c && b <= 0x1f):
		return stDcsParam, actIgnoreByte, controlRef{}
	case b >= 0x20 && b <= 0x2f:
		return stDcsIntermediate, actRetainByte, controlRef{}
	case (b >= 0x30 && b <= 0x39) || b == 0x3b:
		return stDcsParam, actRetainByte, controlRef{}
	case b == 0x3a || (b >= 0x3c && b <= 0x3f):
		return stDcsIgnore, actIgnoreByte, controlRef{}
	case b >= 0x40 && b <= 0x7e:
		return stDcsPassthrough, actRetainByte, controlRef{}
	default:
		return otherwise(b, stDcsParam)
	}
}

func dcsIntermediate(b byte) (scanState, scanAction, controlRef) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1c && b <= 0x1f):
		return stDcsIntermediate, actIgnoreByte, controlRef{}
	case b >= 0x20 && b <= 0x2f:
		return stDcsIntermediate, actRetainByte, controlRef{}
	case b >= 0x30 && b <= 0x3f:
		return stDcsIgnore, actIgnoreByte, controlRef{}
	case b >= 0x40 && b <= 0x7e:
		return stDcsPassthrough, actRetainByte, controlRef{}
	default:
		return otherwise(b, stDcsIntermediate)
	}
}

func dcsPassthrough(b byte) (scanState, scanAction, controlRef) {
	switch {
	case (b <= 0x06) || (b >= 0x08 && b <= 0x17) || b == 0x19 || (b >= 0x1c && b <= 0x1f):
		return stDcsPassthrough, actRetainByte, controlRef{}
	case b == 0x07:
		return stGround, actDispatch, controlRef{}
	case b == 0x1b:
		return stDcsPassthroughEnd, actIgnoreByte, controlRef{}
	case b >= 0x20 && b <= 0x7e:
		return stDcsPassthrough, actRetainByte, controlRef{}
	case b == 0x9c:
		return stGround, actDispatch, controlRef{}
	default:
		return otherwise(b, stDcsPassthrough)
	}
}

func dcsPassthroughEnd(b byte) (scanState, scanAction, controlRef) {
	if b == 0x5c {
		return stGround, actDispatch, controlRef{}
	}
	return stEscape, actAbortThenRetry, ctl(ESC)
}

func dcsIgnore(b byte) (scanState, scanAction, controlRef) {
	switch {
	case (b <= 0x06) || (b >= 0x08 && b <= 0x17) || b == 0x19 || (b >= 0x1c && b <= 0x1f):
		return stDcsIgnore, actIgnoreByte, controlRef{}
	case b == 0x07:
		return stGround, actAbortSequence, controlRef{}
	case b == 0x1b:
		return stDcsIgnoreEnd, actIgnoreByte, controlRef{}
	case b >= 0x20 && b <= 0x7f:
		return stDcsIgnore, actIgnoreByte, controlRef{}
	case b == 0x9c:
		return stGround, actAbortSequence, controlRef{}
	default:
		return otherwise(b, stDcsIgnore)
	}
}

func dcsIgnoreEnd(b byte) (scanState, scanAction, controlRef) {
	if b == 0x5c {
		return stGround, actAbortSequence, controlRef{}
	}
	return otherwise(b, stGround)
}
