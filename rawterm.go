package rawterm

import (
	"fmt"
	"sync"
)

// Mode selects how many bytes a raw read must observe before returning.
type Mode int

const (
	// ModeBlocking waits until at least one byte arrives.
	ModeBlocking Mode = iota
	// ModeNonblocking returns immediately when no byte is pending.
	ModeNonblocking
)

func (m Mode) String() string {
	switch m {
	case ModeBlocking:
		return "blocking"
	case ModeNonblocking:
		return "nonblocking"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Size holds terminal dimensions in character cells.
type Size struct {
	Width  int
	Height int
}

// Handle owns one raw-mode switch on one descriptor: the saved state needed
// to undo it, and the exactly-once restore discipline. Handles are created
// only by a successful Enable and must not be copied.
type Handle struct {
	fd    int
	mode  Mode
	saved *termState

	mu       sync.Mutex
	restored bool
}

// Enable captures the terminal state of fd and switches it to raw mode.
// Either the switch fully succeeds and the returned Handle can undo it, or
// the terminal is left untouched and an error is returned.
//
// On Windows a negative fd makes Enable resolve the console input device by
// name instead.
func Enable(fd int, mode Mode) (*Handle, error) {
	saved, err := enableRaw(fd, mode)
	if err != nil {
		return nil, err
	}
	return &Handle{fd: fd, mode: mode, saved: saved}, nil
}

// Fd returns the descriptor the handle controls.
func (h *Handle) Fd() int { return h.fd }

// Mode returns the read policy the handle was enabled with.
func (h *Handle) Mode() Mode { return h.mode }

// Restored reports whether the saved state has been written back.
func (h *Handle) Restored() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.restored
}

// Disable writes the saved state back to the terminal, bit-for-bit as it was
// captured. It is safe to call from any cleanup path: a second call on a
// restored handle is a no-op returning nil. A non-nil error means the
// terminal may still be in raw mode; surface it.
func (h *Handle) Disable() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.restored {
		return nil
	}
	if err := restoreState(h.fd, h.saved); err != nil {
		return err
	}
	h.restored = true
	return nil
}

// GetSize queries the current terminal dimensions of fd. The result is
// computed fresh on every call and is valid with or without an active
// Handle. On platforms without a size query it fails with
// ErrUnsupportedPlatform instead of guessing.
func GetSize(fd int) (Size, error) {
	return getSize(fd)
}
