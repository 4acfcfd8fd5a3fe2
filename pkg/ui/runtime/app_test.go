package runtime

import (
	"errors"
	"testing"

	"github.com/rfarias/tuido/pkg/ui/backend"
	"github.com/rfarias/tuido/pkg/ui/terminal"
)

// scriptBackend feeds a fixed event sequence into the loop and counts
// terminal writes, making loop tests fully deterministic.
type scriptBackend struct {
	width, height int
	events        []terminal.Event

	inited    bool
	finished  bool
	setCalls  int
	showCalls int
}

func newScriptBackend(w, h int) *scriptBackend {
	return &scriptBackend{width: w, height: h}
}

func (s *scriptBackend) script(evs ...terminal.Event) {
	s.events = append(s.events, evs...)
}

func (s *scriptBackend) Init() error { s.inited = true; return nil }
func (s *scriptBackend) Fini()       { s.finished = true }

func (s *scriptBackend) Size() (int, int) { return s.width, s.height }

func (s *scriptBackend) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	s.setCalls++
}

func (s *scriptBackend) Show()               { s.showCalls++ }
func (s *scriptBackend) Clear()              {}
func (s *scriptBackend) HideCursor()         {}
func (s *scriptBackend) ShowCursor()         {}
func (s *scriptBackend) SetCursorPos(x, y int) {}
func (s *scriptBackend) Beep()               {}
func (s *scriptBackend) Sync()               {}

func (s *scriptBackend) PollEvent() terminal.Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func (s *scriptBackend) PostEvent(ev terminal.Event) error {
	s.events = append(s.events, ev)
	return nil
}

// testScreen routes keys through a BaseScreen and lets tests hook
// extra keys.
type testScreen struct {
	BaseScreen
	onKey func(ev terminal.KeyEvent) Outcome

	refreshed int
	rendered  int
}

func (s *testScreen) Render(surf *Surface) {
	s.rendered++
	s.BaseScreen.Render(surf)
}

func (s *testScreen) Refresh() { s.refreshed++ }

func (s *testScreen) HandleKey(ev terminal.KeyEvent) Outcome {
	if out := s.BaseScreen.HandleKey(ev); out != Ignored {
		return out
	}
	if s.onKey != nil {
		return s.onKey(ev)
	}
	return Ignored
}

func TestApp_EscapeOnSoleScreenQuits(t *testing.T) {
	b := newScriptBackend(80, 24)
	b.script(terminal.KeyOf(terminal.KeyEscape))
	app := NewApp(b)

	err := app.Run(&testScreen{})

	if err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if !b.finished {
		t.Error("backend should be finalized on exit")
	}
}

func TestApp_InputClosedWithoutQuit(t *testing.T) {
	b := newScriptBackend(80, 24)
	app := NewApp(b)

	err := app.Run(&testScreen{})

	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("Run returned %v, want ErrInputClosed", err)
	}
	if !b.finished {
		t.Error("backend should be finalized even on error")
	}
}

func TestApp_PopRefusesSoleScreen(t *testing.T) {
	b := newScriptBackend(80, 24)
	app := NewApp(b)
	app.stack = []Screen{&testScreen{}}

	if app.Pop() {
		t.Error("Pop should refuse to remove the sole screen")
	}
	if app.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", app.Depth())
	}
}

func TestApp_IgnoredKeysCauseNoWrites(t *testing.T) {
	b := newScriptBackend(80, 24)
	b.script(
		terminal.RuneOf('x'),
		terminal.RuneOf('y'),
		terminal.KeyOf(terminal.KeyF5),
		terminal.KeyOf(terminal.KeyEscape),
	)
	app := NewApp(b)
	screen := &testScreen{}

	if err := app.Run(screen); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	// One render for the initial frame, none for the ignored keys.
	if screen.rendered != 1 {
		t.Errorf("renders = %d, want 1", screen.rendered)
	}
	if b.showCalls != 1 {
		t.Errorf("Show calls = %d, want 1", b.showCalls)
	}
}

func TestApp_PushPopRevealsAndRefreshes(t *testing.T) {
	b := newScriptBackend(80, 24)
	app := NewApp(b)

	root := &testScreen{}
	child := &testScreen{}
	root.onKey = func(ev terminal.KeyEvent) Outcome {
		if ev.Rune == 'p' {
			app.Push(child)
			return Activated
		}
		return Ignored
	}

	b.script(
		terminal.RuneOf('p'),             // push child
		terminal.KeyOf(terminal.KeyEscape), // pop back to root
		terminal.KeyOf(terminal.KeyEscape), // quit
	)

	if err := app.Run(root); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if root.refreshed != 1 {
		t.Errorf("root refreshed %d times, want 1", root.refreshed)
	}
	if child.refreshed != 0 {
		t.Errorf("child refreshed %d times, want 0", child.refreshed)
	}
}

func TestApp_ReplaceKeepsDepth(t *testing.T) {
	b := newScriptBackend(80, 24)
	app := NewApp(b)

	next := &testScreen{}
	root := &testScreen{}
	root.onKey = func(ev terminal.KeyEvent) Outcome {
		if ev.Rune == 'r' {
			app.Replace(next)
			return Activated
		}
		return Ignored
	}

	b.script(
		terminal.RuneOf('r'),
		terminal.KeyOf(terminal.KeyEscape), // quits: next is the sole screen
	)

	if err := app.Run(root); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if next.rendered == 0 {
		t.Error("replacement screen was never rendered")
	}
}

func TestApp_ConfirmRestoresStack(t *testing.T) {
	b := newScriptBackend(80, 24)
	app := NewApp(b)

	var result *bool
	root := &testScreen{}
	root.onKey = func(ev terminal.KeyEvent) Outcome {
		if ev.Rune == 'd' {
			r := app.Confirm("sure?")
			result = &r
			return Consumed
		}
		return Ignored
	}

	b.script(
		terminal.RuneOf('d'),
		terminal.KeyOf(terminal.KeyEnter),  // default selection is No
		terminal.KeyOf(terminal.KeyEscape), // quit
	)

	if err := app.Run(root); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if result == nil {
		t.Fatal("Confirm never resolved")
	}
	if *result {
		t.Error("Enter on the default selection should mean No")
	}
	if app.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1: the dialog must not disturb the stack", app.Depth())
	}
}

func TestApp_ConfirmYes(t *testing.T) {
	b := newScriptBackend(80, 24)
	app := NewApp(b)

	var result *bool
	root := &testScreen{}
	root.onKey = func(ev terminal.KeyEvent) Outcome {
		if ev.Rune == 'd' {
			r := app.Confirm("sure?")
			result = &r
			return Consumed
		}
		return Ignored
	}

	b.script(
		terminal.RuneOf('d'),
		terminal.KeyOf(terminal.KeyTab),   // select Yes
		terminal.KeyOf(terminal.KeyEnter), // confirm
		terminal.KeyOf(terminal.KeyEscape),
	)

	if err := app.Run(root); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if result == nil || !*result {
		t.Error("Tab then Enter should mean Yes")
	}
}

func TestApp_AlertDismisses(t *testing.T) {
	b := newScriptBackend(80, 24)
	app := NewApp(b)

	alerted := false
	root := &testScreen{}
	root.onKey = func(ev terminal.KeyEvent) Outcome {
		if ev.Rune == 'a' {
			app.Alert("heads up")
			alerted = true
			return Consumed
		}
		return Ignored
	}

	b.script(
		terminal.RuneOf('a'),
		terminal.RuneOf('z'),              // not a dismiss key
		terminal.KeyOf(terminal.KeyEnter), // dismiss
		terminal.KeyOf(terminal.KeyEscape),
	)

	if err := app.Run(root); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if !alerted {
		t.Error("Alert never returned")
	}
}

func TestApp_DialogOnTinyTerminal(t *testing.T) {
	b := newScriptBackend(3, 2)
	app := NewApp(b)
	app.surface = NewSurface(3, 2)

	// Narrower than the dialog chrome; the message truncates to nothing
	// instead of panicking.
	app.drawDialog("hello there", []string{"OK"}, 0)

	if b.showCalls == 0 {
		t.Error("dialog was never flushed")
	}
}

func TestApp_ResizeGrowsSurface(t *testing.T) {
	b := newScriptBackend(80, 24)
	app := NewApp(b)
	b.script(
		terminal.ResizeEvent{Width: 100, Height: 40},
		terminal.KeyOf(terminal.KeyEscape),
	)

	if err := app.Run(&testScreen{}); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if w, h := app.Surface().Size(); w != 100 || h != 40 {
		t.Errorf("surface = %dx%d, want 100x40", w, h)
	}
}
