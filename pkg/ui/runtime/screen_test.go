package runtime

import (
	"testing"

	"github.com/rfarias/tuido/pkg/ui/terminal"
)

func TestBaseScreen_TabTraversal(t *testing.T) {
	a := newFakeInput("a")
	b := newFakeInput("b")
	s := &BaseScreen{}
	s.SetWidgets([]Widget{a, b})

	if s.Focus().Current() != a {
		t.Fatal("a should start focused")
	}

	out := s.HandleKey(terminal.KeyOf(terminal.KeyTab))
	if out != Consumed {
		t.Errorf("Tab outcome = %v, want Consumed", out)
	}
	if s.Focus().Current() != b {
		t.Error("Tab should move focus to b")
	}

	out = s.HandleKey(terminal.BackTab())
	if out != Consumed {
		t.Errorf("Shift+Tab outcome = %v, want Consumed", out)
	}
	if s.Focus().Current() != a {
		t.Error("Shift+Tab should move focus back to a")
	}
}

func TestBaseScreen_FocusedWidgetSeesKeyFirst(t *testing.T) {
	a := newFakeInput("a")
	a.handled = Consumed
	b := newFakeInput("b")
	s := &BaseScreen{}
	s.SetWidgets([]Widget{a, b})

	out := s.HandleKey(terminal.KeyOf(terminal.KeyTab))

	if out != Consumed {
		t.Errorf("outcome = %v, want Consumed", out)
	}
	if len(a.got) != 1 {
		t.Fatal("the focused widget should receive the key")
	}
	// The widget consumed Tab, so focus must not have moved.
	if s.Focus().Current() != a {
		t.Error("focus should stay on a when it consumes Tab")
	}
}

func TestBaseScreen_ArrowTraversalOptIn(t *testing.T) {
	a := newFakeInput("a")
	b := newFakeInput("b")

	s := &BaseScreen{}
	s.SetWidgets([]Widget{a, b})
	if out := s.HandleKey(terminal.KeyOf(terminal.KeyDown)); out != Ignored {
		t.Errorf("Down without opt-in: outcome = %v, want Ignored", out)
	}

	s.ArrowTraversal = true
	if out := s.HandleKey(terminal.KeyOf(terminal.KeyDown)); out != Consumed {
		t.Errorf("Down with opt-in: outcome = %v, want Consumed", out)
	}
	if s.Focus().Current() != b {
		t.Error("Down should move focus to b")
	}
	s.HandleKey(terminal.KeyOf(terminal.KeyUp))
	if s.Focus().Current() != a {
		t.Error("Up should move focus back to a")
	}
}

func TestBaseScreen_UnknownKeyIgnored(t *testing.T) {
	a := newFakeInput("a")
	s := &BaseScreen{}
	s.SetWidgets([]Widget{a})

	if out := s.HandleKey(terminal.RuneOf('x')); out != Ignored {
		t.Errorf("outcome = %v, want Ignored", out)
	}
}

func TestBaseScreen_RemoveWidgetKeepsFocusValid(t *testing.T) {
	a := newFakeInput("a")
	b := newFakeInput("b")
	s := &BaseScreen{}
	s.SetWidgets([]Widget{a, b})
	s.Focus().Set(1)

	s.RemoveWidget(b)

	if s.Focus().Current() != a {
		t.Error("focus should fall back to a after removing b")
	}
}
