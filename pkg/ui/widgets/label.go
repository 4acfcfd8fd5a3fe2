package widgets

import (
	"github.com/rfarias/tuido/pkg/ui/backend"
	"github.com/rfarias/tuido/pkg/ui/runtime"
)

// Label is a static line of text.
type Label struct {
	runtime.Base
	Text  string
	Style backend.Style
}

// NewLabel creates a label with the default style.
func NewLabel(text string) *Label {
	return &Label{Text: text, Style: backend.DefaultStyle()}
}

// Render draws the text clipped to the label's width.
func (l *Label) Render(s *runtime.Surface) {
	b := l.Bounds()
	s.SetString(b.X, b.Y, fit(l.Text, b.Width), l.Style)
}
