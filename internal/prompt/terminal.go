package prompt

import "os"

// IsTerminal reports whether f is attached to a character device
// (used to pick the TUI prompter over the console one).
func IsTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
