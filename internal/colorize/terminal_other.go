//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package colorize

// IsTerminal returns whether the file descriptor refers to a terminal.
// Terminal detection is not supported on this platform.
func IsTerminal(uintptr) bool {
	return false
}
