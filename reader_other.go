//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows

package rawterm

import "fmt"

// Reader performs byte-level reads against a raw-mode descriptor. No such
// descriptor exists on this platform.
type Reader struct{}

// NewReader returns a reader for the descriptor h controls.
func NewReader(h *Handle) *Reader {
	return &Reader{}
}

// Read always fails on this platform.
func (r *Reader) Read(stopCh <-chan struct{}) ([]byte, error) {
	return nil, fmt.Errorf("%w: raw read", ErrUnsupportedPlatform)
}
