//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows

package rawterm

import "fmt"

type termState struct{}

func enableRaw(fd int, mode Mode) (*termState, error) {
	return nil, fmt.Errorf("%w: raw mode", ErrUnsupportedPlatform)
}

func restoreState(fd int, s *termState) error {
	return fmt.Errorf("%w: raw mode", ErrUnsupportedPlatform)
}
