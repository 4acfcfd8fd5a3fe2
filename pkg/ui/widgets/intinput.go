package widgets

import (
	"strconv"

	"github.com/rfarias/tuido/pkg/ui/backend"
	"github.com/rfarias/tuido/pkg/ui/runtime"
	"github.com/rfarias/tuido/pkg/ui/terminal"
)

// IntInput edits an integer. With a range set, every edit that would
// leave the range is rejected, so the value is always in range.
// Digits append to the value, Backspace drops the last digit, and
// Up/Down step by one.
type IntInput struct {
	runtime.FocusableBase
	Style        backend.Style
	FocusedStyle backend.Style

	value   int
	bounded bool
	min     int
	max     int
}

// NewIntInput creates an unbounded input holding value.
func NewIntInput(value int) *IntInput {
	return &IntInput{
		Style:        backend.DefaultStyle(),
		FocusedStyle: backend.DefaultStyle().Bold(true),
		value:        value,
	}
}

// SetRange constrains the value to [lo, hi] and clamps it.
func (n *IntInput) SetRange(lo, hi int) {
	n.bounded = true
	n.min, n.max = lo, hi
	n.value = n.clamp(n.value)
}

// Value returns the current value.
func (n *IntInput) Value() int {
	return n.value
}

// SetValue sets the value, clamped into the range.
func (n *IntInput) SetValue(v int) {
	n.value = n.clamp(v)
}

func (n *IntInput) clamp(v int) int {
	if !n.bounded {
		return v
	}
	if v < n.min {
		return n.min
	}
	if v > n.max {
		return n.max
	}
	return v
}

func (n *IntInput) inRange(v int) bool {
	return !n.bounded || (v >= n.min && v <= n.max)
}

// HandleKey edits the value. Rejected edits consume the key without
// changing anything.
func (n *IntInput) HandleKey(ev terminal.KeyEvent) runtime.Outcome {
	switch ev.Key {
	case terminal.KeyRune:
		if ev.Rune < '0' || ev.Rune > '9' {
			return runtime.Ignored
		}
		digit := int(ev.Rune - '0')
		candidate := n.value*10 + digit
		if !n.inRange(candidate) {
			// Start over from the single digit, as when the
			// user types a new value over an old one.
			candidate = digit
		}
		if n.inRange(candidate) {
			n.value = candidate
		}
		return runtime.Consumed
	case terminal.KeyBackspace:
		n.value = n.clamp(n.value / 10)
		return runtime.Consumed
	case terminal.KeyUp:
		if n.inRange(n.value + 1) {
			n.value++
			return runtime.Consumed
		}
		return runtime.Ignored
	case terminal.KeyDown:
		if n.inRange(n.value - 1) {
			n.value--
			return runtime.Consumed
		}
		return runtime.Ignored
	}
	return runtime.Ignored
}

// Render draws the value.
func (n *IntInput) Render(s *runtime.Surface) {
	b := n.Bounds()
	style := n.Style
	if n.Focused() {
		style = n.FocusedStyle
	}
	s.Fill(runtime.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: 1}, ' ', style)
	s.SetString(b.X, b.Y, fit(strconv.Itoa(n.value), b.Width), style)
}
