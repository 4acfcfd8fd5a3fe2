package runtime

import (
	"testing"

	"github.com/rfarias/tuido/pkg/ui/terminal"
)

// fakeInput is a focusable test widget.
type fakeInput struct {
	FocusableBase
	id      string
	handled Outcome
	got     []terminal.KeyEvent
}

func newFakeInput(id string) *fakeInput {
	return &fakeInput{id: id}
}

func (f *fakeInput) Render(*Surface) {}

func (f *fakeInput) HandleKey(ev terminal.KeyEvent) Outcome {
	f.got = append(f.got, ev)
	return f.handled
}

// fakeLabel is a non-focusable test widget.
type fakeLabel struct {
	Base
}

func (f *fakeLabel) Render(*Surface) {}

func managerOver(ws *[]Widget) *FocusManager {
	return NewFocusManager(func() []Widget { return *ws })
}

func TestFocusManager_InitialFocus(t *testing.T) {
	label := &fakeLabel{}
	a := newFakeInput("a")
	b := newFakeInput("b")
	ws := []Widget{label, a, b}

	fm := managerOver(&ws)

	if fm.Current() != a {
		t.Error("initial focus should be the first focusable widget")
	}
	if !a.Focused() {
		t.Error("a should carry the focus flag")
	}
	if b.Focused() {
		t.Error("b should not be focused")
	}
}

func TestFocusManager_CycleReturnsToStart(t *testing.T) {
	a := newFakeInput("a")
	b := newFakeInput("b")
	c := newFakeInput("c")
	ws := []Widget{a, b, c}

	fm := managerOver(&ws)

	// Advancing exactly N times over N focusables is a full cycle.
	for i := 0; i < len(ws); i++ {
		fm.Next()
	}
	if fm.Current() != a {
		t.Errorf("after %d Next calls focus should be back on a", len(ws))
	}
}

func TestFocusManager_PrevInvertsNext(t *testing.T) {
	a := newFakeInput("a")
	b := newFakeInput("b")
	c := newFakeInput("c")
	ws := []Widget{a, b, c}

	fm := managerOver(&ws)

	for _, start := range []int{0, 1, 2} {
		fm.Set(start)
		before := fm.Current()
		fm.Next()
		fm.Prev()
		if fm.Current() != before {
			t.Errorf("Prev after Next should restore focus from index %d", start)
		}
	}
}

func TestFocusManager_WrapsBackward(t *testing.T) {
	a := newFakeInput("a")
	b := newFakeInput("b")
	ws := []Widget{a, b}

	fm := managerOver(&ws)
	fm.Prev()

	if fm.Current() != b {
		t.Error("Prev from the first widget should wrap to the last")
	}
}

func TestFocusManager_ClampsAfterRemoval(t *testing.T) {
	a := newFakeInput("a")
	b := newFakeInput("b")
	c := newFakeInput("c")
	ws := []Widget{a, b, c}

	fm := managerOver(&ws)
	fm.Set(2)
	if fm.Current() != c {
		t.Fatal("c should be focused")
	}

	// Mutate the slice behind the manager's back.
	ws = ws[:2]

	if fm.Current() != b {
		t.Error("focus should clamp onto the last remaining widget")
	}
	if fm.Index() != 1 {
		t.Errorf("Index() = %d, want 1", fm.Index())
	}
}

func TestFocusManager_SkipsNonFocusable(t *testing.T) {
	a := newFakeInput("a")
	label := &fakeLabel{}
	b := newFakeInput("b")
	ws := []Widget{a, label, b}

	fm := managerOver(&ws)
	fm.Next()

	if fm.Current() != b {
		t.Error("Next should land on b, skipping the label")
	}
}

func TestFocusManager_NoFocusables(t *testing.T) {
	ws := []Widget{&fakeLabel{}}

	fm := managerOver(&ws)

	if fm.Current() != nil {
		t.Error("Current() should be nil with no focusable widgets")
	}
	if fm.Index() != -1 {
		t.Errorf("Index() = %d, want -1", fm.Index())
	}
	// Traversal over nothing must not panic.
	fm.Next()
	fm.Prev()
}

func TestFocusManager_ExactlyOneFocused(t *testing.T) {
	a := newFakeInput("a")
	b := newFakeInput("b")
	c := newFakeInput("c")
	ws := []Widget{a, b, c}

	fm := managerOver(&ws)
	fm.Next()
	fm.Next()

	focused := 0
	for _, w := range ws {
		if w.(*fakeInput).Focused() {
			focused++
		}
	}
	if focused != 1 {
		t.Errorf("%d widgets focused, want exactly 1", focused)
	}
}
