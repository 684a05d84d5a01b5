package rawterm

import "testing"

func TestMinBytes(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want uint8
	}{
		{"Blocking waits for one byte", ModeBlocking, 1},
		{"Nonblocking returns immediately", ModeNonblocking, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := minBytes(tt.mode); got != tt.want {
				t.Errorf("minBytes(%v) = %d, want %d", tt.mode, got, tt.want)
			}
		})
	}
}

func TestInterByteTimeoutIsFixed(t *testing.T) {
	// Both read modes share the 100ms ceiling; termios counts deciseconds.
	if interByteTimeoutDecisec != 1 {
		t.Errorf("inter-byte timeout = %d deciseconds, want 1", interByteTimeoutDecisec)
	}
	if pollTimeoutMs != 100 {
		t.Errorf("poll timeout = %dms, want 100", pollTimeoutMs)
	}
}

func TestRawConsoleModeBitIsolation(t *testing.T) {
	// Line input, echo input and processed input occupy bits 0-2; the
	// unrelated window-input bit 3 must survive the transform.
	const original = uint32(conProcessedInput | conLineInput | conEchoInput | conWindowInput)
	if original != 0b1111 {
		t.Fatalf("bit layout drifted: original = %#04b", original)
	}

	raw := rawConsoleMode(original)
	if raw&(conProcessedInput|conLineInput|conEchoInput) != 0 {
		t.Errorf("raw mode %#04b still has cooked-input bits set", raw)
	}
	if raw&conWindowInput == 0 {
		t.Errorf("raw mode %#04b cleared the unrelated window-input bit", raw)
	}
}

func TestRawConsoleModePreservesUnrelatedBits(t *testing.T) {
	const (
		quickEdit = 0x0040
		vtInput   = 0x0200
	)

	mode := uint32(conLineInput | conEchoInput | conMouseInput | quickEdit | vtInput)
	if got, want := rawConsoleMode(mode), uint32(quickEdit|vtInput); got != want {
		t.Errorf("rawConsoleMode(%#x) = %#x, want %#x", mode, got, want)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeBlocking, "blocking"},
		{ModeNonblocking, "nonblocking"},
		{Mode(7), "Mode(7)"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}
