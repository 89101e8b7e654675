// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

// Package tty wraps the controlling terminal device: opening it, saving
// and restoring line-discipline state, and performing timeout-bounded
// reads via pselect/select.
package tty

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

const (
	tcsaNow uintptr = iota
	tcsaDrain
	tcsaFlush
)

// Term is a connection to a terminal device with a stack of saved
// termios states, so that Apply/Restore can nest.
type Term struct {
	file   *os.File
	states []unix.Termios
}

func eintrRetryErr(f func() error) error {
	for {
		err := f()
		if err == unix.EINTR {
			continue
		}
		return err
	}
}

func eintrRetryIntErr(f func() (int, error)) (int, error) {
	for {
		n, err := f()
		if err == unix.EINTR {
			continue
		}
		return n, err
	}
}

// IsTerminal reports whether fd refers to a terminal device.
func IsTerminal(fd uintptr) bool {
	var t unix.Termios
	return eintrRetryErr(func() error { return tcgetattr(int(fd), &t) }) == nil
}

// Mode is a termios-modifying operation applied when a Term is opened or
// when Apply is called directly.
type Mode func(t *unix.Termios)

func vminVtimeFor(d time.Duration) (uint8, uint8) {
	if d > 0 {
		deci := d.Milliseconds() / 100
		if deci < 1 {
			deci = 1
		}
		if deci > 0xff {
			deci = 0xff
		}
		return 0, uint8(deci)
	}
	return 1, 0
}

// ReadTimeout sets the VMIN/VTIME pair for a bounded blocking read; d<=0
// blocks until at least one byte arrives.
func ReadTimeout(d time.Duration) Mode {
	vmin, vtime := vminVtimeFor(d)
	return func(t *unix.Termios) {
		t.Cc[unix.VMIN] = vmin
		t.Cc[unix.VTIME] = vtime
	}
}

// Cooked leaves line discipline in its default canonical, echoing state;
// it exists only as a named no-op alternative to Raw/Cbreak.
var Cooked Mode = func(t *unix.Termios) {}

// Cbreak disables canonical processing and echo but leaves signal
// generation (Ctrl-C etc.) and output processing intact.
var Cbreak Mode = func(t *unix.Termios) {
	t.Lflag &^= unix.ICANON | unix.ECHO
}

// Raw replicates cfmakeraw(3): no line editing, no signals, no special
// character translation, 8-bit clean.
var Raw Mode = func(t *unix.Termios) {
	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cflag &^= unix.CSIZE | unix.PARENB
	t.Cflag |= unix.CS8
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
}

// Ctermid names the controlling terminal device; Go's standard library
// has no wrapper for the libc function of the same name.
func Ctermid() string { return "/dev/tty" }

// Open opens name (typically the controlling terminal) and applies modes
// in order.
func Open(name string, modes ...Mode) (*Term, error) {
	fd, err := eintrRetryIntErr(func() (int, error) {
		return unix.Open(name, unix.O_NOCTTY|unix.O_CLOEXEC|unix.O_NDELAY|unix.O_RDWR, 0666)
	})
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}
	return wrap(fd, name, modes...)
}

// OpenControlling opens the controlling terminal device.
func OpenControlling(modes ...Mode) (*Term, error) {
	return Open(Ctermid(), modes...)
}

func wrap(fd int, name string, modes ...Mode) (*Term, error) {
	if name == "" {
		name = fmt.Sprintf("<fd: %d>", fd)
	}
	f := os.NewFile(uintptr(fd), name)
	if f == nil {
		return nil, os.ErrInvalid
	}
	t := &Term{file: f}
	if err := t.Apply(modes...); err != nil {
		t.Close()
		return nil, err
	}
	return t, nil
}

func (t *Term) Fd() int {
	if t.file == nil {
		return -1
	}
	return int(t.file.Fd())
}

func (t *Term) Close() error {
	if t.file == nil {
		return nil
	}
	err := eintrRetryErr(func() error { return t.file.Close() })
	t.file = nil
	return err
}

func (t *Term) tcgetattr(out *unix.Termios) error {
	return eintrRetryErr(func() error { return tcgetattr(t.Fd(), out) })
}

func (t *Term) tcsetattr(when uintptr, in *unix.Termios) error {
	return eintrRetryErr(func() error { return tcsetattr(t.Fd(), when, in) })
}

// Apply pushes the current termios state onto the stack and applies
// modes in order, taking effect immediately (TCSANOW).
func (t *Term) Apply(modes ...Mode) error {
	if len(modes) == 0 {
		return nil
	}
	var state unix.Termios
	if err := t.tcgetattr(&state); err != nil {
		return err
	}
	next := state
	for _, m := range modes {
		m(&next)
	}
	if err := t.tcsetattr(tcsaNow, &next); err != nil {
		return err
	}
	t.states = append(t.states, state)
	return nil
}

// Pop restores the most recently pushed termios state, flushing
// unwritten output and unread input first.
func (t *Term) Pop() error {
	if len(t.states) == 0 {
		return nil
	}
	idx := len(t.states) - 1
	if err := t.tcsetattr(tcsaFlush, &t.states[idx]); err != nil {
		return err
	}
	t.states = t.states[:idx]
	return nil
}

// Restore pops every pushed termios state, returning to how the
// terminal was found when first opened.
func (t *Term) Restore() error {
	if len(t.states) == 0 {
		return nil
	}
	first := t.states[0]
	t.states = t.states[:1]
	if err := t.tcsetattr(tcsaFlush, &first); err != nil {
		return err
	}
	t.states = nil
	return nil
}

// RestoreAndClose restores original termios state and closes the
// device, returning the close error; any restore error is discarded.
func (t *Term) RestoreAndClose() error {
	_ = t.Restore()
	return t.Close()
}

func isTemporaryReadError(err error) bool {
	return errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK)
}

// Read performs one blocking read, transparently retrying on EINTR and
// the spurious EAGAIN some platforms surface under concurrent writers.
func (t *Term) Read(b []byte) (int, error) {
	for {
		n, err := t.file.Read(b)
		if err != nil && isTemporaryReadError(err) && n <= 0 {
			continue
		}
		return n, err
	}
}

// ReadWithTimeout waits up to d (pselect/select) for the device to
// become readable, then performs exactly one Read. A zero-byte, nil-error
// return means the wait elapsed with nothing ready.
func (t *Term) ReadWithTimeout(b []byte, d time.Duration) (int, error) {
	var r, w, e unix.FdSet
	ready, err := func() (int, error) {
		r.Zero()
		w.Zero()
		e.Zero()
		r.Set(t.Fd())
		return selectFd(t.Fd()+1, &r, &w, &e, d)
	}()
	if err != nil {
		return 0, err
	}
	if ready == 0 {
		return 0, nil
	}
	for {
		n, err := t.Read(b)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return n, err
	}
}

func isTemporaryWriteError(err error) bool {
	return errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, io.ErrShortWrite)
}

// WriteAll writes b in full, retrying on temporary errors.
func (t *Term) WriteAll(b []byte) error {
	for len(b) > 0 {
		n, err := t.file.Write(b)
		if err != nil && !isTemporaryWriteError(err) {
			return err
		}
		b = b[n:]
	}
	return nil
}

// GetSize reads the terminal's row/column/pixel geometry.
func GetSize(fd int) (*unix.Winsize, error) {
	for {
		sz, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
		if err != unix.EINTR {
			return sz, err
		}
	}
}

func (t *Term) GetSize() (*unix.Winsize, error) { return GetSize(t.Fd()) }
