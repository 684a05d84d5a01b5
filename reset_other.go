//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows

package rawterm

// Reset is a no-op on platforms without a terminal discipline.
func Reset() {}
