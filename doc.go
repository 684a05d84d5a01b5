// Package rawterm switches a terminal between its normal line discipline and
// raw mode, and restores the saved state exactly.
//
// Features:
//   - Capture/modify/restore of POSIX line-discipline attributes
//   - Windows console-mode control with stale-handle recovery
//   - Blocking and nonblocking read policies with a fixed 100ms inter-byte timeout
//   - Terminal size query
//   - Resize watching and crash-path recovery helpers
//
// This package toggles OS-level input/output processing only. It does not
// parse capability strings, decode input events, or render anything; those
// layers consume a Handle and a size query and live elsewhere.
//
// The terminal's discipline is global to the device, not to the process.
// Two Handles over the same device, in one process or across processes, will
// clobber each other's saved snapshot. Callers must keep at most one active
// Handle per physical terminal at a time; this package does not arbitrate.
package rawterm
