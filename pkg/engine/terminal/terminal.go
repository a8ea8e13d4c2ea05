package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal returns true if f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Fits returns true if a board of the given size can be drawn in a
// width×height terminal, with cellWidth columns per cell and reserved
// lines kept free for the status area.
func Fits(size, cellWidth, reserved, width, height int) bool {
	return size*cellWidth <= width && size+reserved <= height
}
