//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows

package rawterm

import "fmt"

func getSize(fd int) (Size, error) {
	return Size{}, fmt.Errorf("%w: size query", ErrUnsupportedPlatform)
}
