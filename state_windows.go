//go:build windows

package rawterm

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// termState is the pre-raw snapshot: the console handle the mode was read
// from and the full mode dword, restored wholesale.
type termState struct {
	console windows.Handle
	mode    uint32
}

// ConsoleInputHandle opens the console input device by name. Used when the
// caller has no usable descriptor, and internally to replace stale handles.
func ConsoleInputHandle() (windows.Handle, error) {
	name, err := windows.UTF16PtrFromString("CONIN$")
	if err != nil {
		return windows.InvalidHandle, fmt.Errorf("%w: %v", ErrInvalidHandle, err)
	}
	h, err := windows.CreateFile(name,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ, nil, windows.OPEN_EXISTING, 0, 0)
	if err != nil {
		return windows.InvalidHandle, fmt.Errorf("%w: open CONIN$: %v", ErrInvalidHandle, err)
	}
	return h, nil
}

// resolveConsole probes h and swaps in a fresh CONIN$ handle when the probe
// fails. Console handles go stale when the process is reattached to another
// console; writing through a stale handle silently does nothing.
func resolveConsole(h windows.Handle) (windows.Handle, uint32, error) {
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err == nil {
		return h, mode, nil
	}
	fresh, err := ConsoleInputHandle()
	if err != nil {
		return windows.InvalidHandle, 0, err
	}
	if err := windows.GetConsoleMode(fresh, &mode); err != nil {
		windows.CloseHandle(fresh)
		return windows.InvalidHandle, 0, fmt.Errorf("%w: %v", ErrStateRead, err)
	}
	return fresh, mode, nil
}

func enableRaw(fd int, mode Mode) (*termState, error) {
	console := windows.Handle(fd)
	if fd < 0 {
		h, err := ConsoleInputHandle()
		if err != nil {
			return nil, err
		}
		console = h
	}

	console, current, err := resolveConsole(console)
	if err != nil {
		return nil, err
	}
	saved := termState{console: console, mode: current}

	// There is no VMIN analog in the console mode dword; the read policy is
	// carried on the Handle and applied by Reader.
	if err := windows.SetConsoleMode(console, rawConsoleMode(current)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStateWrite, err)
	}
	return &saved, nil
}

func restoreState(fd int, s *termState) error {
	// Re-validate before writing: restoring through a revoked handle would
	// be a silent no-op and leave the real console raw.
	console, _, err := resolveConsole(s.console)
	if err != nil {
		return fmt.Errorf("%w: restore: %v", ErrStateWrite, err)
	}
	if err := windows.SetConsoleMode(console, s.mode); err != nil {
		return fmt.Errorf("%w: restore: %v", ErrStateWrite, err)
	}
	return nil
}
