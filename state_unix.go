//go:build linux || darwin || freebsd || netbsd || openbsd

package rawterm

import (
	"fmt"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// termState is the pre-raw snapshot: the full termios struct, restored
// wholesale so bits the policy never touches come back too.
type termState struct {
	attr unix.Termios
}

// rawAttr derives raw-mode attributes from a captured set: break, parity,
// strip and software flow control off on input; output post-processing off;
// 8-bit characters; echo, canonical input, extended processing and signal
// keys off; VMIN per read mode; VTIME fixed at one decisecond.
func rawAttr(attr unix.Termios, mode Mode) unix.Termios {
	raw := attr
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = minBytes(mode)
	raw.Cc[unix.VTIME] = interByteTimeoutDecisec
	return raw
}

func enableRaw(fd int, mode Mode) (*termState, error) {
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%w: fd %d is not a terminal", ErrInvalidHandle, fd)
	}

	attr, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStateRead, err)
	}
	saved := termState{attr: *attr}

	// Flush-on-apply: input queued under the old discipline is discarded so
	// raw reads never see it.
	raw := rawAttr(*attr, mode)
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStateWrite, err)
	}
	return &saved, nil
}

func restoreState(fd int, s *termState) error {
	attr := s.attr
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &attr); err != nil {
		return fmt.Errorf("%w: restore: %v", ErrStateWrite, err)
	}
	return nil
}
