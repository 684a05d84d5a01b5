// Command rawprobe switches the terminal to raw mode and hex-dumps
// keystrokes as they arrive. Press q or Ctrl-D to quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/rawterm"
)

func main() {
	nonblocking := flag.Bool("nonblocking", false, "use the nonblocking read policy")
	flag.Parse()

	mode := rawterm.ModeBlocking
	if *nonblocking {
		mode = rawterm.ModeNonblocking
	}

	if err := run(mode); err != nil {
		fmt.Fprintf(os.Stderr, "rawprobe: %v\n", err)
		os.Exit(1)
	}
}

func run(mode rawterm.Mode) error {
	fd := int(os.Stdin.Fd())

	h, err := rawterm.Enable(fd, mode)
	if err != nil {
		return err
	}
	defer func() {
		if err := h.Disable(); err != nil {
			// A failed restore leaves the terminal raw; the user needs to know.
			fmt.Fprintf(os.Stderr, "\r\nrestore failed: %v\r\n", err)
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			rawterm.Reset()
			fmt.Fprintf(os.Stderr, "\r\npanic: %v\r\n%s\r\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	if size, err := rawterm.GetSize(fd); err == nil {
		fmt.Printf("terminal %dx%d, %s reads, q or Ctrl-D quits\r\n", size.Width, size.Height, mode)
	}

	watcher, err := rawterm.WatchResize(fd)
	if err == nil {
		defer watcher.Stop()
	}

	reader := rawterm.NewReader(h)
	stopCh := make(chan struct{})

	for {
		if watcher != nil {
			select {
			case size := <-watcher.Events():
				fmt.Printf("resize %dx%d\r\n", size.Width, size.Height)
			default:
			}
		}

		buf, err := reader.Read(stopCh)
		if err != nil {
			return err
		}
		if buf == nil {
			if mode == rawterm.ModeNonblocking {
				time.Sleep(10 * time.Millisecond)
				continue
			}
			// EOF
			return nil
		}

		for _, b := range buf {
			fmt.Printf("%#02x ", b)
		}
		fmt.Print("\r\n")

		for _, b := range buf {
			if b == 'q' || b == 0x04 {
				return nil
			}
		}
	}
}
