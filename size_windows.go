//go:build windows

package rawterm

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func getSize(fd int) (Size, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return Size{}, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return Size{
		Width:  int(info.Window.Right-info.Window.Left) + 1,
		Height: int(info.Window.Bottom-info.Window.Top) + 1,
	}, nil
}
