package rawterm

// The raw-mode flag policy, kept free of OS calls so both backends and the
// tests share one source of truth.

const (
	// interByteTimeoutDecisec bounds how long a raw read waits once the
	// minimum-byte condition is otherwise unmet. Termios expresses it in
	// deciseconds; 1 is the fixed 100ms ceiling applied in both read modes.
	interByteTimeoutDecisec = 1

	// pollTimeoutMs is the same ceiling for the poll/wait based Reader.
	pollTimeoutMs = 100
)

// minBytes is the minimum-bytes-before-return control value for a mode:
// 1 blocks until a byte arrives, 0 returns immediately.
func minBytes(m Mode) uint8 {
	if m == ModeNonblocking {
		return 0
	}
	return 1
}

// Console input mode bits, mirroring wincon.h. Defined here untagged so the
// bitmask policy stays testable on every platform.
const (
	conProcessedInput = 0x0001
	conLineInput      = 0x0002
	conEchoInput      = 0x0004
	conWindowInput    = 0x0008
	conMouseInput     = 0x0010
)

// conRawClearMask is the set of console behaviors raw mode disables: line
// buffering, echo, Ctrl+C/Break processing and mouse reporting. Window and
// focus event bits are left alone.
const conRawClearMask = conLineInput | conEchoInput | conProcessedInput | conMouseInput

// rawConsoleMode derives the raw-mode bitmask from a captured one. Restore
// never uses the reverse transform; it writes the full snapshot back.
func rawConsoleMode(mode uint32) uint32 {
	return mode &^ conRawClearMask
}
