// Package backend defines the terminal driver boundary for the UI.
// The runtime talks to a Backend; swapping the tcell implementation for
// the simulation one lets the whole application run under test without
// a terminal.
package backend

import "github.com/rfarias/tuido/pkg/ui/terminal"

// Backend is the terminal abstraction layer.
type Backend interface {
	// Init enters the alternate screen and raw mode.
	Init() error

	// Fini restores the terminal state.
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetContent stages a cell at (x, y). The comb slice carries
	// combining characters and may be nil.
	SetContent(x, y int, mainc rune, comb []rune, style Style)

	// Show flushes staged cells to the terminal. Only Show performs
	// terminal output.
	Show()

	// Clear stages a full-screen erase.
	Clear()

	// HideCursor hides the terminal cursor.
	HideCursor()

	// ShowCursor makes the cursor visible at its current position.
	ShowCursor()

	// SetCursorPos moves the visible cursor.
	SetCursorPos(x, y int)

	// PollEvent blocks until input arrives. A nil return means the
	// backend shut down and the event loop must exit.
	PollEvent() terminal.Event

	// PostEvent injects an event into the input queue.
	PostEvent(ev terminal.Event) error

	// Beep rings the terminal bell.
	Beep()

	// Sync forces a full repaint on the next Show.
	Sync()
}
