//go:build windows

package rawterm

import (
	"golang.org/x/sys/windows"
)

// Reset forces the console back toward a usable cooked mode. It is the
// crash-path companion to Handle.Disable: call it from panic recovery when
// the Handle is unreachable. Best-effort; errors are ignored because there
// is nothing left to do with them in a crash context.
func Reset() {
	// Resolve by name so this works even when the saved handle went stale.
	h, err := ConsoleInputHandle()
	if err != nil {
		return
	}
	defer windows.CloseHandle(h)

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return
	}
	windows.SetConsoleMode(h, mode|conLineInput|conEchoInput|conProcessedInput)
}
