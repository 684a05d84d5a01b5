//go:build linux || darwin || freebsd || netbsd || openbsd

package rawterm

import (
	"golang.org/x/sys/unix"
)

// Reader performs byte-level reads against a raw-mode descriptor. It polls
// rather than blocking in read(2) so a pending read can be abandoned through
// the stop channel.
type Reader struct {
	fd   int
	mode Mode
	buf  []byte
}

// NewReader returns a reader for the descriptor h controls, honoring the
// read policy h was enabled with.
func NewReader(h *Handle) *Reader {
	return &Reader{fd: h.Fd(), mode: h.Mode(), buf: make([]byte, 256)}
}

// Read returns the next chunk of input bytes. In blocking mode it waits for
// input, rechecking stopCh between poll timeouts; in nonblocking mode it
// returns a nil slice immediately when nothing is pending. A nil slice with
// a nil error also means stop or EOF.
func (r *Reader) Read(stopCh <-chan struct{}) ([]byte, error) {
	for {
		select {
		case <-stopCh:
			return nil, nil
		default:
		}

		timeout := pollTimeoutMs
		if r.mode == ModeNonblocking {
			timeout = 0
		}
		fds := []unix.PollFd{
			{Fd: int32(r.fd), Events: unix.POLLIN},
		}
		n, err := unix.Poll(fds, timeout)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, err
		}
		if n == 0 {
			if r.mode == ModeNonblocking {
				return nil, nil
			}
			continue
		}

		rn, err := unix.Read(r.fd, r.buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return nil, err
		}
		if rn == 0 {
			// EOF
			return nil, nil
		}

		out := make([]byte, rn)
		copy(out, r.buf[:rn])
		return out, nil
	}
}
