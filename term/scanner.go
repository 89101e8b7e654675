package term

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// validUTF8 reports whether payload is well-formed UTF-8, using the same
// validating transformer golang.org/x/text/encoding builds its charset
// decoders on, rather than hand-rolling a decode loop.
func validUTF8(payload []byte) bool {
	_, _, err := transform.Bytes(encoding.UTF8Validator, payload)
	return err == nil
}

// TokenKind tags which of the three shapes a Token holds.
type TokenKind uint8

const (
	TokenText TokenKind = iota
	TokenControl
	TokenSequence
)

// Token is one unit produced by the scanner: a run of printable text, a
// standalone control byte, or a complete escape sequence with its
// introducing Control and payload bytes.
type Token struct {
	Kind    TokenKind
	Control Control
	Payload []byte
	// Valid reports whether a TokenText payload is well-formed UTF-8. It
	// is always true for TokenSequence, whose payload is plain ASCII.
	Valid bool
}

// ErrTimeout is returned by ReadToken when the underlying read timed out
// with no data available, distinguishing a cooperative timeout from EOF
// or another I/O failure.
var ErrTimeout = errors.New("term: read timed out")

// ScannerError reports a scanner-level failure: payload overflow, a
// pathological oversized sequence, an illegal in-flight read, a token that
// is not the expected sequence, or a malformed query response payload.
type ScannerError struct {
	Kind string // "out-of-memory", "pathological-sequence", "in-flight", "not-a-sequence", "bad-control", "malformed-<response>"
}

func (e ScannerError) Error() string { return fmt.Sprintf("term: scanner error: %s", e.Kind) }

const defaultReadBufferSize = 1024

// Scanner turns a byte stream into Tokens using a 17-state escape-sequence
// grammar, with a fixed-size reusable buffer and a pathological-length
// guard so hostile input can never grow memory without bound.
type Scanner struct {
	buf        *scanBuffer
	state      scanState
	read       func([]byte) (int, error)
	seqControl Control
	seqLen     int
	maxSeqLen  int
	overflowed bool
	inFlight   bool
}

// NewScanner creates a Scanner with the given buffer size (bytes) that
// pulls more input from read as needed.
func NewScanner(bufSize int, read func([]byte) (int, error)) *Scanner {
	if bufSize <= 0 {
		bufSize = defaultReadBufferSize
	}
	return &Scanner{
		buf:       newScanBuffer(bufSize),
		read:      read,
		maxSeqLen: 2 * bufSize,
	}
}

// SetMaxSequenceLength overrides the pathological-length guard (default
// twice the read buffer size).
func (s *Scanner) SetMaxSequenceLength(n int) {
	if n > 0 {
		s.maxSeqLen = n
	}
}

// FillBuf returns the scanner's currently unread bytes without
// consuming them, for byte-reader-style access between tokens. It fails
// with an in-flight ScannerError if called while a sequence is being
// scanned.
func (s *Scanner) FillBuf() ([]byte, error) {
	if s.inFlight {
		return nil, ScannerError{Kind: "in-flight"}
	}
	if !s.buf.isReadable() {
		if _, err := s.fillMore(); err != nil {
			return nil, err
		}
	}
	return s.buf.peekMany(), nil
}

// Consume advances past n bytes most recently returned by FillBuf.
func (s *Scanner) Consume(n int) { s.buf.consumeMany(n) }

func (s *Scanner) fillMore() (int, error) {
	if !s.buf.hasCapacity() {
		if s.buf.isFragmented() {
			s.buf.defrag()
		} else {
			s.forceReset()
			return 0, ScannerError{Kind: "pathological-sequence"}
		}
	}
	return s.buf.fillFrom(s.read)
}

func (s *Scanner) forceReset() {
	s.buf.reset()
	s.state = stGround
	s.seqLen = 0
	s.overflowed = false
	s.inFlight = false
}

func (s *Scanner) checkPathological() error {
	if s.seqLen <= s.maxSeqLen {
		return nil
	}
	s.forceReset()
	return ScannerError{Kind: "pathological-sequence"}
}

// dispatchesWithFinalByte names the single-character sequence families
// whose dispatching byte is itself meaningful payload (the command
// letter), as opposed to the string-typed families (DCS/OSC/SOS/PM/APC)
// whose terminator (BEL or ST) carries no payload content.
func dispatchesWithFinalByte(c Control) bool {
	switch c {
	case ESC, CSI, SS2, SS3:
		return true
	default:
		return false
	}
}

// ReadToken scans and returns the next Token, performing as many
// underlying reads as necessary to complete a sequence. It never reads
// ahead while accumulating a text run; a text token always ends at the
// current buffer boundary.
func (s *Scanner) ReadToken() (Token, error) {
	for {
		if !s.buf.isReadable() {
			if s.state == stGround && s.buf.tokenEnd > s.buf.tokenStart {
				return s.dispatchText(), nil
			}
			n, err := s.fillMore()
			if err != nil {
				return Token{}, err
			}
			if n == 0 {
				return Token{}, ErrTimeout
			}
			continue
		}

		b, _ := s.buf.peek()
		next, action, control := transition(s.state, b)

		switch action {
		case actPrint:
			s.buf.consume()
			s.buf.retain()
			s.state = next

		case actStartSequence:
			if s.state == stGround && s.buf.tokenEnd > s.buf.tokenStart {
				return s.dispatchText(), nil
			}
			s.buf.consume()
			s.buf.startToken()
			s.seqControl = control.control
			s.seqLen = 1
			s.overflowed = false
			s.inFlight = true
			s.state = next

		case actIgnoreByte:
			s.buf.consume()
			if control.has {
				s.seqControl = control.control
			}
			s.seqLen++
			s.state = next
			if err := s.checkPathological(); err != nil {
				return Token{}, err
			}

		case actRetainByte:
			s.buf.consume()
			if control.has {
				s.seqControl = control.control
			}
			s.retainOrOverflow()
			s.seqLen++
			s.state = next
			if err := s.checkPathological(); err != nil {
				return Token{}, err
			}

		case actAbortSequence:
			s.buf.consume()
			s.state = next
			s.buf.startToken()
			s.seqLen = 0
			s.overflowed = false
			s.inFlight = false

		case actAbortThenRetry:
			// The byte that just triggered this (unterminated string-end)
			// is reinterpreted as the start of a fresh sequence: the ESC
			// that preceded it was consumed already, so the new sequence's
			// length starts at 1 and stays in flight.
			s.state = next
			s.buf.startToken()
			s.seqLen = 1
			s.overflowed = false
			s.inFlight = true
			if control.has {
				s.seqControl = control.control
			}
			// byte is not consumed; the loop re-peeks it from the new state

		case actDispatch:
			s.buf.consume()
			s.state = next
			if dispatchesWithFinalByte(s.seqControl) {
				s.retainOrOverflow()
			}
			tok, overflowed := s.dispatchSequence()
			if overflowed {
				return tok, ScannerError{Kind: "out-of-memory"}
			}
			return tok, nil

		case actHandleControl:
			if s.state == stGround && s.buf.tokenEnd > s.buf.tokenStart {
				return s.dispatchText(), nil
			}
			s.buf.consume()
			// A control byte interrupting an in-flight sequence is
			// reported inline rather than disrupting the sequence.
			s.state = next
			return Token{Kind: TokenControl, Payload: []byte{b}}, nil
		}
	}
}

func (s *Scanner) retainOrOverflow() {
	const maxTokenPayload = 1 << 16
	if s.buf.tokenEnd-s.buf.tokenStart >= maxTokenPayload {
		s.overflowed = true
		return
	}
	s.buf.retain()
}

func (s *Scanner) dispatchText() Token {
	payload := append([]byte(nil), s.buf.token()...)
	s.buf.startToken()
	return Token{Kind: TokenText, Payload: payload, Valid: validUTF8(payload)}
}

func (s *Scanner) dispatchSequence() (Token, bool) {
	payload := append([]byte(nil), s.buf.token()...)
	control := s.seqControl
	overflowed := s.overflowed
	s.buf.startToken()
	s.seqLen = 0
	s.overflowed = false
	s.inFlight = false
	return Token{Kind: TokenSequence, Control: control, Payload: payload, Valid: true}, overflowed
}

// ReadSequence reads the next token and requires it to be a Sequence
// with the expected control, failing with a ScannerError otherwise.
func (s *Scanner) ReadSequence(expected Control) (Token, error) {
	tok, err := s.ReadToken()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != TokenSequence {
		return Token{}, ScannerError{Kind: "not-a-sequence"}
	}
	if tok.Control != expected {
		return Token{}, ScannerError{Kind: "bad-control"}
	}
	return tok, nil
}
