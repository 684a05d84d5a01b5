//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows

package rawterm

import "fmt"

// ResizeWatcher delivers terminal dimension changes. No resize signal exists
// on this platform.
type ResizeWatcher struct {
	eventCh chan Size
}

// WatchResize always fails on this platform.
func WatchResize(fd int) (*ResizeWatcher, error) {
	return nil, fmt.Errorf("%w: resize watch", ErrUnsupportedPlatform)
}

// Events returns the resize event channel.
func (w *ResizeWatcher) Events() <-chan Size { return w.eventCh }

// Stop is a no-op.
func (w *ResizeWatcher) Stop() {}
