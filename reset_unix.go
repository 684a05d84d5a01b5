//go:build linux || darwin || freebsd || netbsd || openbsd

package rawterm

import (
	"os"

	"golang.org/x/sys/unix"
)

// Reset forces the terminal back toward a usable cooked mode. It is the
// crash-path companion to Handle.Disable: call it from panic recovery when
// the Handle is unreachable. Best-effort; errors are ignored because there
// is nothing left to do with them in a crash context.
func Reset() {
	// Go through the controlling terminal so this works even when stdin was
	// redirected away from it.
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	attr, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return
	}
	attr.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	attr.Iflag |= unix.ICRNL
	attr.Oflag |= unix.OPOST
	unix.IoctlSetTermios(fd, ioctlWriteTermios, attr)
}
