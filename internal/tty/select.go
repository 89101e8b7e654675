// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

//go:build linux

package tty

import (
	"time"

	"golang.org/x/sys/unix"
)

func selectFd(nfd int, r, w, e *unix.FdSet, timeout time.Duration) (n int, err error) {
	if timeout < 0 {
		return unix.Pselect(nfd, r, w, e, nil, nil)
	}
	ts := unix.NsecToTimespec(int64(timeout))
	return unix.Pselect(nfd, r, w, e, &ts, nil)
}
