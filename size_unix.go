//go:build linux || darwin || freebsd || netbsd || openbsd

package rawterm

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func getSize(fd int) (Size, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return Size{Width: int(ws.Col), Height: int(ws.Row)}, nil
}
