package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/rfarias/tuido/pkg/ui/backend"
	"github.com/rfarias/tuido/pkg/ui/runtime"
)

// Frame is a border box with an optional centered title, drawn behind
// the widgets placed inside it.
type Frame struct {
	runtime.Base
	Title      string
	Style      backend.Style
	TitleStyle backend.Style
}

// NewFrame creates a frame with the default styles.
func NewFrame(title string) *Frame {
	return &Frame{
		Title:      title,
		Style:      backend.DefaultStyle(),
		TitleStyle: backend.DefaultStyle().Bold(true),
	}
}

// Render draws the border and the title over its top edge.
func (f *Frame) Render(s *runtime.Surface) {
	b := f.Bounds()
	s.DrawBox(b, f.Style)
	if f.Title == "" || b.Width < 4 {
		return
	}
	title := " " + fit(f.Title, b.Width-4) + " "
	x := b.X + (b.Width-runewidth.StringWidth(title))/2
	s.SetString(x, b.Y, title, f.TitleStyle)
}
