package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/rfarias/tuido/pkg/ui/backend"
	"github.com/rfarias/tuido/pkg/ui/runtime"
	"github.com/rfarias/tuido/pkg/ui/terminal"
)

// Button is a bordered, three row push button. Enter activates it.
type Button struct {
	runtime.FocusableBase
	Label        string
	OnPress      func()
	Style        backend.Style
	FocusedStyle backend.Style
}

// NewButton creates a button calling onPress when activated.
func NewButton(label string, onPress func()) *Button {
	return &Button{
		Label:        label,
		OnPress:      onPress,
		Style:        backend.DefaultStyle(),
		FocusedStyle: backend.DefaultStyle().Bold(true),
	}
}

// Render draws the border and the centered label, highlighted while
// focused.
func (b *Button) Render(s *runtime.Surface) {
	style := b.Style
	if b.Focused() {
		style = b.FocusedStyle
	}
	r := b.Bounds()
	s.DrawBox(r, style)
	if r.Height < 3 || r.Width < 4 {
		return
	}
	label := fit(b.Label, r.Width-2)
	x := r.X + (r.Width-runewidth.StringWidth(label))/2
	s.SetString(x, r.Y+r.Height/2, label, style)
}

// HandleKey activates the button on Enter.
func (b *Button) HandleKey(ev terminal.KeyEvent) runtime.Outcome {
	if ev.Key == terminal.KeyEnter {
		if b.OnPress != nil {
			b.OnPress()
		}
		return runtime.Activated
	}
	return runtime.Ignored
}
