//go:build windows

package rawterm

import (
	"time"
)

// resizePollInterval is how often the console size is compared. The console
// has no SIGWINCH analog, so the watcher polls.
const resizePollInterval = 250 * time.Millisecond

// ResizeWatcher delivers terminal dimension changes.
type ResizeWatcher struct {
	fd      int
	last    Size
	eventCh chan Size
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// WatchResize starts a watcher for fd. Stop it exactly once to release its
// goroutine.
func WatchResize(fd int) (*ResizeWatcher, error) {
	w := &ResizeWatcher{
		fd:      fd,
		eventCh: make(chan Size, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	w.last, _ = GetSize(fd)
	go w.watchLoop()
	return w, nil
}

// Events returns the resize event channel.
func (w *ResizeWatcher) Events() <-chan Size { return w.eventCh }

// Stop stops the watcher and waits for its goroutine to exit.
func (w *ResizeWatcher) Stop() {
	close(w.stopCh)
	<-w.doneCh
}

func (w *ResizeWatcher) watchLoop() {
	defer close(w.doneCh)

	ticker := time.NewTicker(resizePollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			size, err := GetSize(w.fd)
			if err != nil || size == w.last || size.Width <= 0 || size.Height <= 0 {
				continue
			}
			w.last = size
			w.publish(size)
		}
	}
}

// publish sends without blocking, replacing an unconsumed older event.
func (w *ResizeWatcher) publish(size Size) {
	select {
	case w.eventCh <- size:
	default:
		select {
		case <-w.eventCh:
		default:
		}
		w.eventCh <- size
	}
}
