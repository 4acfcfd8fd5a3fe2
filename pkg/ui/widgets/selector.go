package widgets

import (
	"github.com/rfarias/tuido/pkg/ui/backend"
	"github.com/rfarias/tuido/pkg/ui/runtime"
	"github.com/rfarias/tuido/pkg/ui/terminal"
)

// Selector cycles through a fixed list of options. Left and Right
// move the selection and wrap around, so every option is reachable
// from every other in either direction.
type Selector struct {
	runtime.FocusableBase
	Options      []string
	OnChange     func(index int)
	Style        backend.Style
	FocusedStyle backend.Style

	index int
}

// NewSelector creates a selector over options with the first one
// selected.
func NewSelector(options ...string) *Selector {
	return &Selector{
		Options:      options,
		Style:        backend.DefaultStyle(),
		FocusedStyle: backend.DefaultStyle().Bold(true),
	}
}

// Index returns the selected position.
func (sel *Selector) Index() int {
	return sel.index
}

// Selected returns the selected option, or "" when empty.
func (sel *Selector) Selected() string {
	if sel.index < 0 || sel.index >= len(sel.Options) {
		return ""
	}
	return sel.Options[sel.index]
}

// SetIndex moves the selection, clamped into range.
func (sel *Selector) SetIndex(i int) {
	if len(sel.Options) == 0 {
		sel.index = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(sel.Options) {
		i = len(sel.Options) - 1
	}
	sel.index = i
}

// HandleKey moves the selection on Left/Right, wrapping modulo the
// option count.
func (sel *Selector) HandleKey(ev terminal.KeyEvent) runtime.Outcome {
	n := len(sel.Options)
	if n == 0 {
		return runtime.Ignored
	}
	switch ev.Key {
	case terminal.KeyLeft:
		sel.index = (sel.index - 1 + n) % n
	case terminal.KeyRight:
		sel.index = (sel.index + 1) % n
	default:
		return runtime.Ignored
	}
	if sel.OnChange != nil {
		sel.OnChange(sel.index)
	}
	return runtime.Consumed
}

// Render draws the selection between angle markers.
func (sel *Selector) Render(s *runtime.Surface) {
	b := sel.Bounds()
	style := sel.Style
	if sel.Focused() {
		style = sel.FocusedStyle
	}
	s.Fill(runtime.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: 1}, ' ', style)
	s.SetString(b.X, b.Y, fit("< "+sel.Selected()+" >", b.Width), style)
}
