// Package gui shows a small bordered terminal window with a single label.
//
// The window is a bubbletea program that runs for a fixed number of timed
// iterations and then quits on its own. It never reads input.
package gui

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

// Options configures the window.
type Options struct {
	Title string
	Label string

	// Width and Height are the inner size of the window in cells.
	Width  int
	Height int

	// Iterations is the number of Interval waits before the window closes.
	Iterations int
	Interval   time.Duration

	NoColor bool
}

// DefaultOptions returns a 30x8 window that stays up for about a second.
func DefaultOptions() Options {
	return Options{
		Title:      "GUI Toolkit Test",
		Label:      "GUI toolkit is working!",
		Width:      30,
		Height:     8,
		Iterations: 10,
		Interval:   100 * time.Millisecond,
	}
}

// IsTTY checks if output is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}

	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

// DetectNoColor checks if NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}
