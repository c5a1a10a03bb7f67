//go:build darwin || freebsd || netbsd || openbsd

package colorize

import "golang.org/x/sys/unix"

// IsTerminal returns whether the file descriptor refers to a terminal.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TIOCGETA)
	return err == nil
}
