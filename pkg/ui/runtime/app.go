package runtime

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rfarias/tuido/pkg/ui/backend"
	"github.com/rfarias/tuido/pkg/ui/terminal"
)

// ErrInputClosed is returned by Run when the backend's event stream
// ends without the application asking to quit.
var ErrInputClosed = errors.New("terminal input closed")

// App owns the screen stack, the backend, and the surface, and runs
// the dispatch loop. The loop is strictly single threaded: it blocks
// in PollEvent, dispatches exactly one key to the top screen, then
// redraws only if something changed. Between keys the process is
// fully idle.
type App struct {
	backend backend.Backend
	surface *Surface
	log     *slog.Logger

	stack        []Screen
	popRequested bool
	quitting     bool
	invalid      bool
	running      bool
}

// Option configures an App.
type Option func(*App)

// WithLogger routes the app's debug logging to l. The terminal
// belongs to the UI, so l should write to a file.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.log = l }
}

// NewApp creates an app on the given backend.
func NewApp(b backend.Backend, opts ...Option) *App {
	a := &App{
		backend: b,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Top returns the active screen, or nil before Run.
func (a *App) Top() Screen {
	if len(a.stack) == 0 {
		return nil
	}
	return a.stack[len(a.stack)-1]
}

// Depth returns the number of stacked screens.
func (a *App) Depth() int {
	return len(a.stack)
}

// Push makes s the active screen. The covered screen keeps its state
// and regains it unchanged when s is popped.
func (a *App) Push(s Screen) {
	a.stack = append(a.stack, s)
	if a.surface != nil {
		w, h := a.surface.Size()
		a.layout(s, w, h)
	}
	a.invalid = true
	a.log.Debug("screen pushed", "depth", len(a.stack))
}

// Pop removes the active screen and reveals the one beneath it.
// Popping the sole screen is refused so the stack is never empty;
// Pop reports whether a screen was removed.
func (a *App) Pop() bool {
	if len(a.stack) <= 1 {
		return false
	}
	a.stack = a.stack[:len(a.stack)-1]
	a.invalid = true
	a.log.Debug("screen popped", "depth", len(a.stack))
	if r, ok := a.Top().(Refresher); ok {
		r.Refresh()
	}
	return true
}

// Replace swaps the active screen without growing the stack.
func (a *App) Replace(s Screen) {
	if len(a.stack) == 0 {
		a.Push(s)
		return
	}
	a.stack[len(a.stack)-1] = s
	if a.surface != nil {
		w, h := a.surface.Size()
		a.layout(s, w, h)
	}
	a.invalid = true
}

// RequestPop asks for a pop once the current dispatch finishes. When
// the sole screen requests it, the application exits instead, so Esc
// on the home screen quits.
func (a *App) RequestPop() {
	a.popRequested = true
	a.invalid = true
}

// Quit makes Run return after the current dispatch.
func (a *App) Quit() {
	a.quitting = true
}

// Backend returns the terminal backend.
func (a *App) Backend() backend.Backend {
	return a.backend
}

// Surface returns the render surface, nil before Run.
func (a *App) Surface() *Surface {
	return a.surface
}

// Run initializes the terminal, pushes root, and dispatches events
// until the application quits or input ends. It restores the
// terminal on the way out.
func (a *App) Run(root Screen) error {
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer a.backend.Fini()

	w, h := a.backend.Size()
	a.surface = NewSurface(w, h)
	a.stack = []Screen{root}
	a.layout(root, w, h)
	a.running = true
	defer func() { a.running = false }()
	a.renderTop()

	for {
		ev := a.backend.PollEvent()
		if ev == nil {
			if a.quitting {
				return nil
			}
			return ErrInputClosed
		}

		switch e := ev.(type) {
		case terminal.ResizeEvent:
			a.resize(e.Width, e.Height)
		case terminal.KeyEvent:
			a.dispatch(e)
		}

		if a.quitting {
			a.log.Debug("quitting")
			return nil
		}
		if a.popRequested {
			a.popRequested = false
			if !a.Pop() {
				// Sole screen asked to leave.
				a.log.Debug("root screen dismissed")
				return nil
			}
		}
		if a.invalid {
			a.invalid = false
			a.renderTop()
		}
	}
}

// dispatch routes one key to the active screen. A key the screen
// ignored falls through to the app default: Esc requests a pop.
func (a *App) dispatch(ev terminal.KeyEvent) {
	out := a.Top().HandleKey(ev)
	if out != Ignored {
		a.invalid = true
		return
	}
	if ev.Key == terminal.KeyEscape {
		a.RequestPop()
	}
}

func (a *App) resize(w, h int) {
	a.surface.Resize(w, h)
	for _, s := range a.stack {
		a.layout(s, w, h)
	}
	a.invalid = true
}

func (a *App) layout(s Screen, w, h int) {
	if l, ok := s.(Layouter); ok {
		l.Layout(w, h)
	}
}

// renderTop redraws the active screen only. Covered screens are never
// rendered; their cells survive on the surface until overwritten.
func (a *App) renderTop() {
	top := a.Top()
	if top == nil {
		return
	}
	a.surface.Clear()
	top.Render(a.surface)
	a.surface.Flush(a.backend)
}
