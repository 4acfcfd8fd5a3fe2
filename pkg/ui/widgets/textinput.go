package widgets

import (
	"unicode"

	"github.com/rfarias/tuido/pkg/ui/backend"
	"github.com/rfarias/tuido/pkg/ui/runtime"
	"github.com/rfarias/tuido/pkg/ui/terminal"
)

// TextInput is a single line text editor. The cursor offset stays in
// [0, len]; content longer than the widget scrolls horizontally so
// the cursor is always visible.
type TextInput struct {
	runtime.FocusableBase
	Placeholder      string
	MaxLen           int // 0 means unlimited
	Style            backend.Style
	FocusedStyle     backend.Style
	PlaceholderStyle backend.Style

	text   []rune
	cursor int
	scroll int
}

// NewTextInput creates an empty input.
func NewTextInput() *TextInput {
	return &TextInput{
		Style:            backend.DefaultStyle(),
		FocusedStyle:     backend.DefaultStyle().Bold(true),
		PlaceholderStyle: backend.DefaultStyle().Dim(true),
	}
}

// Text returns the content.
func (t *TextInput) Text() string {
	return string(t.text)
}

// SetText replaces the content and puts the cursor at the end.
func (t *TextInput) SetText(s string) {
	t.text = []rune(s)
	if t.MaxLen > 0 && len(t.text) > t.MaxLen {
		t.text = t.text[:t.MaxLen]
	}
	t.cursor = len(t.text)
}

// Cursor returns the cursor offset.
func (t *TextInput) Cursor() int {
	return t.cursor
}

// HandleKey edits the content. Keys that cannot change anything, like
// Backspace on an empty input, are Ignored.
func (t *TextInput) HandleKey(ev terminal.KeyEvent) runtime.Outcome {
	switch ev.Key {
	case terminal.KeyRune:
		if ev.Ctrl || ev.Alt || !unicode.IsPrint(ev.Rune) {
			return runtime.Ignored
		}
		if t.MaxLen > 0 && len(t.text) >= t.MaxLen {
			return runtime.Consumed
		}
		t.text = append(t.text[:t.cursor], append([]rune{ev.Rune}, t.text[t.cursor:]...)...)
		t.cursor++
		return runtime.Consumed
	case terminal.KeyBackspace:
		if t.cursor == 0 {
			return runtime.Ignored
		}
		t.text = append(t.text[:t.cursor-1], t.text[t.cursor:]...)
		t.cursor--
		return runtime.Consumed
	case terminal.KeyDelete:
		if t.cursor >= len(t.text) {
			return runtime.Ignored
		}
		t.text = append(t.text[:t.cursor], t.text[t.cursor+1:]...)
		return runtime.Consumed
	case terminal.KeyLeft:
		if t.cursor == 0 {
			return runtime.Ignored
		}
		t.cursor--
		return runtime.Consumed
	case terminal.KeyRight:
		if t.cursor >= len(t.text) {
			return runtime.Ignored
		}
		t.cursor++
		return runtime.Consumed
	case terminal.KeyHome:
		if t.cursor == 0 {
			return runtime.Ignored
		}
		t.cursor = 0
		return runtime.Consumed
	case terminal.KeyEnd:
		if t.cursor == len(t.text) {
			return runtime.Ignored
		}
		t.cursor = len(t.text)
		return runtime.Consumed
	}
	return runtime.Ignored
}

// Render draws the visible slice of the content and places the
// hardware cursor when focused.
func (t *TextInput) Render(s *runtime.Surface) {
	b := t.Bounds()
	if b.Width <= 0 || b.Height <= 0 {
		return
	}

	style := t.Style
	if t.Focused() {
		style = t.FocusedStyle
	}

	if len(t.text) == 0 && !t.Focused() && t.Placeholder != "" {
		s.SetString(b.X, b.Y, fit(t.Placeholder, b.Width), t.PlaceholderStyle)
		return
	}

	// Keep the cursor inside the window, leaving one cell for the
	// cursor to sit past the last rune.
	if t.cursor < t.scroll {
		t.scroll = t.cursor
	}
	if t.cursor >= t.scroll+b.Width {
		t.scroll = t.cursor - b.Width + 1
	}
	if t.scroll < 0 {
		t.scroll = 0
	}

	end := min(len(t.text), t.scroll+b.Width)
	visible := string(t.text[t.scroll:end])
	s.Fill(runtime.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: 1}, ' ', style)
	s.SetString(b.X, b.Y, visible, style)

	if t.Focused() {
		s.SetCursor(b.X+t.cursor-t.scroll, b.Y)
	}
}
