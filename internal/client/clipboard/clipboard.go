// Package clipboard writes copied usernames and secrets to the system
// clipboard.
package clipboard

import "github.com/atotto/clipboard"

// Writer is a write-only clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard (xclip/xsel/wl-copy on Linux, pbcopy on
// macOS, the Win32 API on Windows).
type System struct{}

func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard utility was found.
func Available() bool {
	return !clipboard.Unsupported
}

// Nop discards everything written to it.
type Nop struct{}

func (Nop) WriteAll(string) error { return nil }

// Detect returns System when the platform has a clipboard, otherwise Nop.
func Detect() Writer {
	if Available() {
		return System{}
	}
	return Nop{}
}
