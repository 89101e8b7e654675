package term

import (
	"bufio"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/apparebit/prettypretty-sub000/color"
	"github.com/apparebit/prettypretty-sub000/internal/tty"
	"github.com/apparebit/prettypretty-sub000/style"
)

// ttyWriter adapts tty.Term's WriteAll to io.Writer so it can sit behind
// a bufio.Writer.
type ttyWriter struct{ t *tty.Term }

func (w ttyWriter) Write(p []byte) (int, error) {
	if err := w.t.WriteAll(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Connection owns a terminal device, providing mutually exclusive,
// thread-safe access to reading tokens and writing commands. Opening a
// connection reconfigures the terminal's line discipline; Close restores
// the original configuration.
type Connection struct {
	options Options
	tty     *tty.Term
	id      uuid.UUID

	writeMu sync.Mutex
	writer  *bufio.Writer

	scanMu  sync.Mutex
	scanner *Scanner
}

// Open acquires the controlling terminal and applies the requested mode.
func Open(opts Options) (*Connection, error) {
	opts = opts.normalize()

	var modes []tty.Mode
	switch opts.Mode {
	case ModeCharred:
		// no changes to the terminal configuration
	case ModeCooked:
		modes = []tty.Mode{tty.Cooked, tty.ReadTimeout(opts.Timeout)}
	case ModeRaw:
		modes = []tty.Mode{tty.Raw, tty.ReadTimeout(opts.Timeout)}
	default:
		modes = []tty.Mode{tty.Cbreak, tty.ReadTimeout(opts.Timeout)}
	}

	t, err := tty.OpenControlling(modes...)
	if err != nil {
		return nil, err
	}

	c := &Connection{options: opts, tty: t, id: uuid.New()}
	c.writer = bufio.NewWriterSize(ttyWriter{t}, opts.WriteBufferSize)
	c.scanner = NewScanner(opts.ReadBufferSize, t.Read)
	c.scanner.SetMaxSequenceLength(opts.PathologicalSize)
	return c, nil
}

// Close restores the terminal's original configuration and releases the
// underlying file descriptor.
func (c *Connection) Close() error { return c.tty.RestoreAndClose() }

// Fd returns the underlying file descriptor, mostly for diagnostics.
func (c *Connection) Fd() int { return c.tty.Fd() }

// ID returns the connection's unique identifier, generated when it was
// opened. It has no protocol meaning; it exists so a process juggling
// multiple connections can correlate a query with its response in error
// messages and diagnostics without reusing a possibly-recycled file
// descriptor number.
func (c *Connection) ID() uuid.UUID { return c.id }

// Fidelity detects the styling fidelity of the connected terminal from
// the process environment and whether the connection's descriptor is
// actually a terminal device.
func (c *Connection) Fidelity() style.Fidelity {
	return DetectFidelity(tty.IsTerminal(uintptr(c.Fd())))
}

// Exec writes cmd's escape sequence and flushes immediately.
func (c *Connection) Exec(cmd Command) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if _, err := c.writer.WriteString(cmd.String()); err != nil {
		return err
	}
	return c.writer.Flush()
}

// Print writes arbitrary text, not interpreted as a command, and flushes
// immediately.
func (c *Connection) Print(text string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if _, err := c.writer.WriteString(text); err != nil {
		return err
	}
	return c.writer.Flush()
}

// ReadToken reads the next token from the connection.
func (c *Connection) ReadToken() (Token, error) {
	c.scanMu.Lock()
	defer c.scanMu.Unlock()
	return c.scanner.ReadToken()
}

// InFlight reports whether the scanner is mid-sequence, i.e. whether a
// byte-granularity read is currently unsafe.
func (c *Connection) InFlight() bool {
	c.scanMu.Lock()
	defer c.scanMu.Unlock()
	return c.scanner.inFlight
}

// RunQuery executes q: write its command, then read and parse the
// response. Holds both the write and scan locks for the duration, so
// concurrent queries on the same connection serialize.
func RunQuery[R any](c *Connection, q Query[R]) (R, error) {
	var zero R
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if _, err := c.writer.WriteString(q.String()); err != nil {
		return zero, err
	}
	if err := c.writer.Flush(); err != nil {
		return zero, err
	}
	c.scanMu.Lock()
	defer c.scanMu.Unlock()
	tok, err := c.scanner.ReadSequence(q.ExpectedControl())
	if err != nil {
		return zero, err
	}
	return q.Parse(tok.Payload)
}

// ThemeQueryError identifies which of the 18 theme entries failed to
// query or parse.
type ThemeQueryError struct {
	Connection uuid.UUID
	Index      style.ThemeIndex
	Err        error
}

func (e *ThemeQueryError) Error() string {
	return fmt.Sprintf("term: connection %s: theme entry %d: %v", e.Connection, e.Index, e.Err)
}

func (e *ThemeQueryError) Unwrap() error { return e.Err }

// QueryTheme reads the terminal's current theme: the 16 ANSI colors plus
// the two default layers. It writes all 18 query commands first and only
// then reads the 18 responses, masking round-trip latency behind a
// single batch instead of paying it once per entry.
func QueryTheme(c *Connection) (*style.Theme, error) {
	queries := make([]Query[color.Color], style.ThemeSize)
	for i := 0; i < 16; i++ {
		queries[i] = RequestThemeANSI(uint8(i))
	}
	queries[style.DefaultForeground] = RequestThemeForeground
	queries[style.DefaultBackground] = RequestThemeBackground

	c.writeMu.Lock()
	for _, q := range queries {
		if _, err := c.writer.WriteString(q.String()); err != nil {
			c.writeMu.Unlock()
			return nil, err
		}
	}
	err := c.writer.Flush()
	c.writeMu.Unlock()
	if err != nil {
		return nil, err
	}

	var theme style.Theme
	c.scanMu.Lock()
	defer c.scanMu.Unlock()
	for i, q := range queries {
		tok, err := c.scanner.ReadSequence(q.ExpectedControl())
		if err != nil {
			return nil, &ThemeQueryError{Connection: c.id, Index: style.ThemeIndex(i), Err: err}
		}
		col, err := q.Parse(tok.Payload)
		if err != nil {
			return nil, &ThemeQueryError{Connection: c.id, Index: style.ThemeIndex(i), Err: err}
		}
		theme.Colors[i] = col
	}
	return &theme, nil
}
