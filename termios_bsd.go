//go:build darwin || freebsd || netbsd || openbsd

package rawterm

import "golang.org/x/sys/unix"

// TIOCSETAF applies after draining pending output and flushing unread input.
const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETAF
)
