//go:build linux || darwin || freebsd || netbsd || openbsd

package rawterm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sys/unix"
)

func TestRawAttrClearsDiscipline(t *testing.T) {
	var attr unix.Termios
	attr.Iflag = unix.BRKINT | unix.ICRNL | unix.ISTRIP | unix.IXON | unix.INLCR
	attr.Oflag = unix.OPOST
	attr.Cflag = unix.PARENB
	attr.Lflag = unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN

	raw := rawAttr(attr, ModeBlocking)

	if raw.Iflag&(unix.BRKINT|unix.ICRNL|unix.ISTRIP|unix.IXON|unix.INLCR) != 0 {
		t.Errorf("input flags not cleared: %#x", raw.Iflag)
	}
	if raw.Oflag&unix.OPOST != 0 {
		t.Errorf("output post-processing still on: %#x", raw.Oflag)
	}
	if raw.Cflag&unix.CS8 != unix.CS8 {
		t.Errorf("character size not forced to 8 bits: %#x", raw.Cflag)
	}
	if raw.Cflag&unix.PARENB != 0 {
		t.Errorf("parity still enabled: %#x", raw.Cflag)
	}
	if raw.Lflag&(unix.ECHO|unix.ECHONL|unix.ICANON|unix.ISIG|unix.IEXTEN) != 0 {
		t.Errorf("local flags not cleared: %#x", raw.Lflag)
	}
}

func TestRawAttrModeSelection(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		wantMin uint8
	}{
		{"Blocking", ModeBlocking, 1},
		{"Nonblocking", ModeNonblocking, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawAttr(unix.Termios{}, tt.mode)
			if raw.Cc[unix.VMIN] != tt.wantMin {
				t.Errorf("VMIN = %d, want %d", raw.Cc[unix.VMIN], tt.wantMin)
			}
			if raw.Cc[unix.VTIME] != interByteTimeoutDecisec {
				t.Errorf("VTIME = %d, want %d", raw.Cc[unix.VTIME], interByteTimeoutDecisec)
			}
		})
	}
}

func TestRawAttrLeavesInputIntact(t *testing.T) {
	// The snapshot owns the only copy of the original bits; deriving the
	// raw attributes must not touch it.
	attr := unix.Termios{Iflag: unix.ICRNL, Lflag: unix.ECHO | unix.ICANON}
	orig := attr

	rawAttr(attr, ModeBlocking)

	if diff := cmp.Diff(orig, attr); diff != "" {
		t.Errorf("rawAttr mutated its input (-want +got):\n%s", diff)
	}
}
