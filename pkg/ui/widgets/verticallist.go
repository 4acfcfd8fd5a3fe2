package widgets

import (
	"github.com/rfarias/tuido/pkg/ui/backend"
	"github.com/rfarias/tuido/pkg/ui/runtime"
	"github.com/rfarias/tuido/pkg/ui/terminal"
)

// VerticalList stacks child widgets one per row with a cursor among
// them. Up/Down move the cursor; any other key goes to the child
// under the cursor. The visible window is recomputed from the cursor
// and child count on every render, so the selected child is always
// on screen no matter how the children changed since the last frame.
type VerticalList struct {
	runtime.FocusableBase
	// OnSelect fires when the cursor moves.
	OnSelect       func(index int)
	SelectionStyle backend.Style

	children []runtime.Widget
	cursor   int
	scroll   int
}

// NewVerticalList creates an empty list.
func NewVerticalList() *VerticalList {
	return &VerticalList{
		SelectionStyle: backend.DefaultStyle().Bold(true),
	}
}

// Children returns the child slice.
func (v *VerticalList) Children() []runtime.Widget {
	return v.children
}

// SetChildren replaces the children, keeping the cursor clamped.
func (v *VerticalList) SetChildren(ws []runtime.Widget) {
	v.children = ws
	v.clampCursor()
}

// Append adds a child at the end.
func (v *VerticalList) Append(w runtime.Widget) {
	v.children = append(v.children, w)
}

// Clear removes every child.
func (v *VerticalList) Clear() {
	v.children = nil
	v.cursor = 0
	v.scroll = 0
}

// Len returns the child count.
func (v *VerticalList) Len() int {
	return len(v.children)
}

// Cursor returns the cursored index, or -1 when empty.
func (v *VerticalList) Cursor() int {
	if len(v.children) == 0 {
		return -1
	}
	v.clampCursor()
	return v.cursor
}

// SetCursor moves the cursor, clamped into range.
func (v *VerticalList) SetCursor(i int) {
	v.cursor = i
	v.clampCursor()
}

// Selected returns the child under the cursor, or nil when empty.
func (v *VerticalList) Selected() runtime.Widget {
	if len(v.children) == 0 {
		return nil
	}
	v.clampCursor()
	return v.children[v.cursor]
}

// Scroll returns the index of the first visible child.
func (v *VerticalList) Scroll() int {
	return v.scroll
}

func (v *VerticalList) clampCursor() {
	if v.cursor >= len(v.children) {
		v.cursor = len(v.children) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// ensureVisible rebuilds the scroll window from scratch so the
// cursored row lies inside the widget height.
func (v *VerticalList) ensureVisible() {
	h := v.Bounds().Height
	if h <= 0 {
		v.scroll = 0
		return
	}
	v.clampCursor()
	maxScroll := max(0, len(v.children)-h)
	if v.scroll > maxScroll {
		v.scroll = maxScroll
	}
	if v.scroll < 0 {
		v.scroll = 0
	}
	if v.cursor < v.scroll {
		v.scroll = v.cursor
	}
	if v.cursor >= v.scroll+h {
		v.scroll = v.cursor - h + 1
	}
}

// HandleKey moves the cursor on Up/Down and forwards anything else to
// the cursored child.
func (v *VerticalList) HandleKey(ev terminal.KeyEvent) runtime.Outcome {
	if len(v.children) == 0 {
		return runtime.Ignored
	}
	v.clampCursor()
	switch ev.Key {
	case terminal.KeyUp:
		if v.cursor == 0 {
			return runtime.Ignored
		}
		v.cursor--
		v.selected()
		return runtime.Consumed
	case terminal.KeyDown:
		if v.cursor == len(v.children)-1 {
			return runtime.Ignored
		}
		v.cursor++
		v.selected()
		return runtime.Consumed
	case terminal.KeyHome:
		if v.cursor == 0 {
			return runtime.Ignored
		}
		v.cursor = 0
		v.selected()
		return runtime.Consumed
	case terminal.KeyEnd:
		if v.cursor == len(v.children)-1 {
			return runtime.Ignored
		}
		v.cursor = len(v.children) - 1
		v.selected()
		return runtime.Consumed
	case terminal.KeyPageUp:
		if v.cursor == 0 {
			return runtime.Ignored
		}
		v.cursor = max(0, v.cursor-max(1, v.Bounds().Height))
		v.selected()
		return runtime.Consumed
	case terminal.KeyPageDown:
		if v.cursor == len(v.children)-1 {
			return runtime.Ignored
		}
		v.cursor = min(len(v.children)-1, v.cursor+max(1, v.Bounds().Height))
		v.selected()
		return runtime.Consumed
	}
	return v.children[v.cursor].HandleKey(ev)
}

func (v *VerticalList) selected() {
	if v.OnSelect != nil {
		v.OnSelect(v.cursor)
	}
}

// Render lays the visible children out one per row and draws the
// cursor caret in front of the selected one.
func (v *VerticalList) Render(s *runtime.Surface) {
	b := v.Bounds()
	if b.Width <= 2 || b.Height <= 0 {
		return
	}
	v.ensureVisible()

	end := min(len(v.children), v.scroll+b.Height)
	for i := v.scroll; i < end; i++ {
		y := b.Y + i - v.scroll
		if i == v.cursor && v.Focused() {
			s.SetString(b.X, y, "> ", v.SelectionStyle)
		} else {
			s.SetString(b.X, y, "  ", backend.DefaultStyle())
		}
		child := v.children[i]
		child.SetBounds(runtime.Rect{X: b.X + 2, Y: y, Width: b.Width - 2, Height: 1})
		child.Render(s)
	}
}
