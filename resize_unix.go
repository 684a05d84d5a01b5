//go:build linux || darwin || freebsd || netbsd || openbsd

package rawterm

import (
	"os"
	"os/signal"
	"syscall"
)

// ResizeWatcher delivers terminal dimension changes. On unix it listens for
// SIGWINCH and re-queries the size.
type ResizeWatcher struct {
	fd      int
	sigCh   chan os.Signal
	eventCh chan Size
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// WatchResize starts a watcher for fd. Stop it exactly once to release the
// signal handler.
func WatchResize(fd int) (*ResizeWatcher, error) {
	w := &ResizeWatcher{
		fd:      fd,
		sigCh:   make(chan os.Signal, 1),
		eventCh: make(chan Size, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	signal.Notify(w.sigCh, syscall.SIGWINCH)
	go w.watchLoop()
	return w, nil
}

// Events returns the resize event channel.
func (w *ResizeWatcher) Events() <-chan Size { return w.eventCh }

// Stop stops the watcher and waits for its goroutine to exit.
func (w *ResizeWatcher) Stop() {
	signal.Stop(w.sigCh)
	close(w.stopCh)
	<-w.doneCh
}

func (w *ResizeWatcher) watchLoop() {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			return
		case <-w.sigCh:
			size, err := GetSize(w.fd)
			if err != nil || size.Width <= 0 || size.Height <= 0 {
				continue
			}
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
