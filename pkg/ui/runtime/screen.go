package runtime

import "github.com/rfarias/tuido/pkg/ui/terminal"

// Screen is one entry of the application's screen stack.
type Screen interface {
	// Render draws the whole screen onto the surface.
	Render(s *Surface)

	// HandleKey offers a key event to the screen.
	HandleKey(ev terminal.KeyEvent) Outcome
}

// Refresher is implemented by screens that need to rebuild their
// state when a pop reveals them, for example a list whose backing
// data was edited by the screen above.
type Refresher interface {
	Refresh()
}

// Layouter is implemented by screens that reflow their widgets when
// the terminal is resized. Screens without it are rendered clipped.
type Layouter interface {
	Layout(width, height int)
}

// BaseScreen holds a screen's widgets in one ordered slice; slice
// order is both paint order and focus order. It routes keys to the
// focused widget first and falls back to focus traversal. Embed it
// and append widgets with AddWidget.
type BaseScreen struct {
	// ArrowTraversal opts in to Up/Down moving focus when the
	// focused widget ignored the key.
	ArrowTraversal bool

	widgets []Widget
	focus   *FocusManager
}

// AddWidget appends w, keeping focus on the widget that had it.
func (s *BaseScreen) AddWidget(w Widget) {
	s.widgets = append(s.widgets, w)
	s.Focus().apply()
}

// SetWidgets replaces the whole widget slice.
func (s *BaseScreen) SetWidgets(ws []Widget) {
	s.widgets = ws
	s.Focus().apply()
}

// RemoveWidget deletes w from the slice if present.
func (s *BaseScreen) RemoveWidget(w Widget) {
	for i, existing := range s.widgets {
		if existing == w {
			s.widgets = append(s.widgets[:i], s.widgets[i+1:]...)
			break
		}
	}
	s.Focus().apply()
}

// Widgets returns the live widget slice.
func (s *BaseScreen) Widgets() []Widget {
	return s.widgets
}

// Focus returns the screen's focus manager, creating it on first use.
func (s *BaseScreen) Focus() *FocusManager {
	if s.focus == nil {
		s.focus = NewFocusManager(func() []Widget { return s.widgets })
	}
	return s.focus
}

// Render paints every widget in slice order.
func (s *BaseScreen) Render(surf *Surface) {
	for _, w := range s.widgets {
		w.Render(surf)
	}
}

// HandleKey offers the event to the focused widget, then falls back
// to traversal: Tab forward, Shift+Tab backward, and optionally
// Up/Down when ArrowTraversal is set. Anything else is Ignored.
func (s *BaseScreen) HandleKey(ev terminal.KeyEvent) Outcome {
	if cur := s.Focus().Current(); cur != nil {
		if out := cur.HandleKey(ev); out != Ignored {
			return out
		}
	}

	switch ev.Key {
	case terminal.KeyTab:
		if ev.Shift {
			s.Focus().Prev()
		} else {
			s.Focus().Next()
		}
		return Consumed
	case terminal.KeyDown:
		if s.ArrowTraversal {
			s.Focus().Next()
			return Consumed
		}
	case terminal.KeyUp:
		if s.ArrowTraversal {
			s.Focus().Prev()
			return Consumed
		}
	}
	return Ignored
}
