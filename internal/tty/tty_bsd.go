// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>
//go:build darwin || freebsd || openbsd || netbsd || dragonfly

package tty

import "golang.org/x/sys/unix"

func tcgetattr(fd int, argp *unix.Termios) error {
	return unix.IoctlSetTermios(fd, unix.TIOCGETA, argp)
}

func tcsetattr(fd int, opt uintptr, argp *unix.Termios) error {
	switch opt {
	case tcsaNow:
		opt = unix.TIOCSETA
	case tcsaDrain:
		opt = unix.TIOCSETAW
	case tcsaFlush:
		opt = unix.TIOCSETAF
	default:
		return unix.EINVAL
	}
	return unix.IoctlSetTermios(fd, uint(opt), argp)
}
