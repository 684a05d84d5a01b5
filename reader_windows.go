//go:build windows

package rawterm

import (
	"golang.org/x/sys/windows"
)

// Reader performs byte-level reads against a raw-mode console. It waits on
// the input handle with a bounded timeout so a pending read can be abandoned
// through the stop channel.
type Reader struct {
	console windows.Handle
	mode    Mode
	buf     []byte
}

// NewReader returns a reader for the console h controls, honoring the read
// policy h was enabled with.
func NewReader(h *Handle) *Reader {
	return &Reader{console: h.saved.console, mode: h.Mode(), buf: make([]byte, 256)}
}

// Read returns the next chunk of input bytes. In blocking mode it waits for
// input, rechecking stopCh between wait timeouts; in nonblocking mode it
// returns a nil slice immediately when nothing is pending. A nil slice with
// a nil error also means stop or EOF.
func (r *Reader) Read(stopCh <-chan struct{}) ([]byte, error) {
	for {
		select {
		case <-stopCh:
			return nil, nil
		default:
		}

		timeout := uint32(pollTimeoutMs)
		if r.mode == ModeNonblocking {
			timeout = 0
		}
		ev, err := windows.WaitForSingleObject(r.console, timeout)
		if err != nil {
			return nil, err
		}
		if ev == uint32(windows.WAIT_TIMEOUT) {
			if r.mode == ModeNonblocking {
				return nil, nil
			}
			continue
		}

		var done uint32
		if err := windows.ReadFile(r.console, r.buf, &done, nil); err != nil {
			return nil, err
		}
		if done == 0 {
			// EOF
			return nil, nil
		}

		out := make([]byte, done)
		copy(out, r.buf[:done])
		return out, nil
	}
}
