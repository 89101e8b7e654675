// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

//go:build !linux

package tty

import (
	"time"

	"golang.org/x/sys/unix"
)

// Go's x/sys/unix does not wrap pselect on darwin/bsd.
func selectFd(nfd int, r, w, e *unix.FdSet, timeout time.Duration) (n int, err error) {
	if timeout < 0 {
		return unix.Select(nfd, r, w, e, nil)
	}
	tv := unix.NsecToTimeval(int64(timeout))
	return unix.Select(nfd, r, w, e, &tv)
}
