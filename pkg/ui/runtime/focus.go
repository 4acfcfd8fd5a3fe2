package runtime

// FocusManager tracks which widget of a screen holds focus. It keeps
// an index into the focusable subsequence of the screen's widget
// slice and re-reads that slice on every operation, so adding or
// removing widgets can never leave a dangling index: the index is
// clamped into range and the focus flags are rewritten from scratch.
type FocusManager struct {
	source func() []Widget
	index  int
}

// NewFocusManager creates a manager over the live widget slice
// returned by source. Initial focus is the first focusable widget.
func NewFocusManager(source func() []Widget) *FocusManager {
	fm := &FocusManager{source: source}
	fm.apply()
	return fm
}

func (f *FocusManager) focusables() []FocusTarget {
	var out []FocusTarget
	for _, w := range f.source() {
		if !w.Focusable() {
			continue
		}
		if ft, ok := w.(FocusTarget); ok {
			out = append(out, ft)
		}
	}
	return out
}

// apply clamps the index against the current widget slice and rewrites
// every focus flag. Exactly one widget ends up focused, or none when
// no focusable widget exists.
func (f *FocusManager) apply() FocusTarget {
	targets := f.focusables()
	if len(targets) == 0 {
		f.index = 0
		return nil
	}
	if f.index < 0 {
		f.index = 0
	}
	if f.index >= len(targets) {
		f.index = len(targets) - 1
	}
	var current FocusTarget
	for i, t := range targets {
		on := i == f.index
		t.SetFocused(on)
		if on {
			current = t
		}
	}
	return current
}

// Current returns the focused widget, or nil when nothing can focus.
func (f *FocusManager) Current() Widget {
	t := f.apply()
	if t == nil {
		return nil
	}
	return t
}

// Index returns the position of the focused widget among the
// focusable widgets, or -1 when nothing can focus.
func (f *FocusManager) Index() int {
	if f.apply() == nil {
		return -1
	}
	return f.index
}

// Count returns the number of focusable widgets.
func (f *FocusManager) Count() int {
	return len(f.focusables())
}

// Next advances focus, wrapping past the last widget.
func (f *FocusManager) Next() {
	f.step(1)
}

// Prev moves focus backward, wrapping past the first widget.
func (f *FocusManager) Prev() {
	f.step(-1)
}

func (f *FocusManager) step(delta int) {
	f.apply()
	n := f.Count()
	if n == 0 {
		return
	}
	f.index = ((f.index+delta)%n + n) % n
	f.apply()
}

// Set moves focus to position i among the focusable widgets, clamped
// into range.
func (f *FocusManager) Set(i int) {
	f.index = i
	f.apply()
}

// First moves focus to the first focusable widget.
func (f *FocusManager) First() {
	f.Set(0)
}
