package widgets

import (
	"github.com/rfarias/tuido/pkg/ui/backend"
	"github.com/rfarias/tuido/pkg/ui/runtime"
	"github.com/rfarias/tuido/pkg/ui/terminal"
)

// Checkbox is a toggle with a label. Enter or Space flips it.
type Checkbox struct {
	runtime.FocusableBase
	Label        string
	Checked      bool
	OnToggle     func(checked bool)
	Style        backend.Style
	FocusedStyle backend.Style
}

// NewCheckbox creates an unchecked box.
func NewCheckbox(label string) *Checkbox {
	return &Checkbox{
		Label:        label,
		Style:        backend.DefaultStyle(),
		FocusedStyle: backend.DefaultStyle().Bold(true),
	}
}

// SetChecked sets the state without firing OnToggle.
func (c *Checkbox) SetChecked(on bool) {
	c.Checked = on
}

// HandleKey toggles on Enter or Space.
func (c *Checkbox) HandleKey(ev terminal.KeyEvent) runtime.Outcome {
	if ev.Key == terminal.KeyEnter || (ev.Key == terminal.KeyRune && ev.Rune == ' ') {
		c.Checked = !c.Checked
		if c.OnToggle != nil {
			c.OnToggle(c.Checked)
		}
		return runtime.Consumed
	}
	return runtime.Ignored
}

// Render draws the box and its label.
func (c *Checkbox) Render(s *runtime.Surface) {
	b := c.Bounds()
	style := c.Style
	if c.Focused() {
		style = c.FocusedStyle
	}
	mark := "[ ] "
	if c.Checked {
		mark = "[x] "
	}
	s.SetString(b.X, b.Y, fit(mark+c.Label, b.Width), style)
}
