package rawterm

import "errors"

// Failure kinds. OS-level causes are wrapped underneath; classify with
// errors.Is.
var (
	// ErrUnsupportedPlatform marks operations with no meaning on this OS.
	ErrUnsupportedPlatform = errors.New("rawterm: unsupported platform")

	// ErrInvalidHandle marks a descriptor or console handle rejected before
	// any terminal state was touched.
	ErrInvalidHandle = errors.New("rawterm: invalid terminal handle")

	// ErrStateRead marks a failed read of the current discipline state.
	ErrStateRead = errors.New("rawterm: read terminal state")

	// ErrStateWrite marks a failed write of discipline state. When restore
	// fails the real terminal may still be raw; never drop this error.
	ErrStateWrite = errors.New("rawterm: write terminal state")

	// ErrQueryFailed marks a failed size query.
	ErrQueryFailed = errors.New("rawterm: size query")
)
