// Package runtime implements the widget runtime: the render surface,
// focus traversal, the screen stack, and the input dispatch loop.
package runtime

import "github.com/rfarias/tuido/pkg/ui/terminal"

// Rect is a rectangle in cell coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersection returns the overlap of r and o, or the zero Rect when
// they do not overlap.
func (r Rect) Intersection(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.Width, o.X+o.Width)
	y1 := min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Outcome is a widget's verdict on a key event.
type Outcome int

const (
	// Ignored means the widget did not act on the key. The event is
	// offered to the fallback chain and no redraw is needed on the
	// widget's account.
	Ignored Outcome = iota

	// Consumed means the widget acted on the key.
	Consumed

	// Activated means the key triggered the widget's primary action,
	// such as pressing a button.
	Activated
)

// Widget is a rectangular UI element. Paint order and focus order are
// both the order widgets appear in their screen's slice.
type Widget interface {
	// Bounds returns the widget's rectangle on the surface.
	Bounds() Rect

	// SetBounds moves or resizes the widget.
	SetBounds(Rect)

	// Focusable reports whether the widget participates in focus
	// traversal.
	Focusable() bool

	// Render draws the widget onto the surface.
	Render(s *Surface)

	// HandleKey offers a key event to the widget.
	HandleKey(ev terminal.KeyEvent) Outcome
}

// FocusTarget is implemented by focusable widgets. Only the focus
// manager calls SetFocused; widgets never focus themselves.
type FocusTarget interface {
	Widget
	SetFocused(on bool)
	Focused() bool
}

// Base carries bounds for non-focusable widgets. Embed it and
// implement Render; HandleKey defaults to Ignored.
type Base struct {
	bounds Rect
}

// Bounds returns the widget rectangle.
func (b *Base) Bounds() Rect { return b.bounds }

// SetBounds moves or resizes the widget.
func (b *Base) SetBounds(r Rect) { b.bounds = r }

// Focusable reports false; embed FocusableBase for focusable widgets.
func (b *Base) Focusable() bool { return false }

// HandleKey ignores every key.
func (b *Base) HandleKey(terminal.KeyEvent) Outcome { return Ignored }

// FocusableBase carries bounds and the focus flag for focusable
// widgets.
type FocusableBase struct {
	Base
	focused bool
}

// Focusable reports true.
func (b *FocusableBase) Focusable() bool { return true }

// SetFocused records the focus state. Called by the focus manager.
func (b *FocusableBase) SetFocused(on bool) { b.focused = on }

// Focused reports whether the widget currently has focus.
func (b *FocusableBase) Focused() bool { return b.focused }
