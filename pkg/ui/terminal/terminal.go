// Package terminal provides the input event types shared by every UI layer.
package terminal

// Event is a terminal input event.
type Event interface {
	eventMarker()
}

// KeyEvent represents a single key press.
//
// Shift+Tab arrives as KeyTab with Shift set; Ctrl-letter combinations
// arrive as KeyRune with Ctrl set and the lowercase letter in Rune.
type KeyEvent struct {
	Key   Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyEvent) eventMarker() {}

// ResizeEvent indicates the terminal size changed.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) eventMarker() {}

// Key identifies special keys. Printable characters use KeyRune.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// KeyOf builds a KeyEvent for a special key.
func KeyOf(k Key) KeyEvent {
	return KeyEvent{Key: k}
}

// RuneOf builds a KeyEvent for a printable character.
func RuneOf(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// BackTab builds the Shift+Tab event used for reverse focus traversal.
func BackTab() KeyEvent {
	return KeyEvent{Key: KeyTab, Shift: true}
}
