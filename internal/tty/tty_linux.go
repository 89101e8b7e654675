// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package tty

import "golang.org/x/sys/unix"

const (
	tcsets  = 0x5402
	tcsetsw = 0x5403
	tcsetsf = 0x5404
)

func tcgetattr(fd int, argp *unix.Termios) error {
	return unix.IoctlSetTermios(fd, unix.TCGETS, argp)
}

func tcsetattr(fd int, action uintptr, argp *unix.Termios) error {
	var request uint
	switch action {
	case tcsaNow:
		request = tcsets
	case tcsaDrain:
		request = tcsetsw
	case tcsaFlush:
		request = tcsetsf
	default:
		return unix.EINVAL
	}
	return unix.IoctlSetTermios(fd, request, argp)
}
