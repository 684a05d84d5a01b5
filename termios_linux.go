//go:build linux

package rawterm

import "golang.org/x/sys/unix"

// TCSETSF applies after draining pending output and flushing unread input.
const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETSF
)
