// Package tcell implements the backend on real terminals via
// github.com/gdamore/tcell/v2.
package tcell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/rfarias/tuido/pkg/ui/backend"
	"github.com/rfarias/tuido/pkg/ui/terminal"
)

// Backend drives a tcell.Screen.
type Backend struct {
	screen tcell.Screen
}

// New creates a backend on a fresh tcell screen.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen wraps an existing tcell screen. The simulation backend
// uses this to share the event conversion code.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// Init enters the alternate screen and raw mode. Mouse reporting and
// bracketed paste stay off; the application is keyboard only.
func (b *Backend) Init() error {
	return b.screen.Init()
}

// Fini restores the terminal.
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Size returns the terminal dimensions.
func (b *Backend) Size() (width, height int) {
	return b.screen.Size()
}

// SetContent stages a cell at (x, y).
func (b *Backend) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	b.screen.SetContent(x, y, mainc, comb, convertStyle(style))
}

// Show flushes staged cells. tcell diffs against its own shadow buffer
// and writes only changed cells.
func (b *Backend) Show() {
	b.screen.Show()
}

// Clear stages a full-screen erase.
func (b *Backend) Clear() {
	b.screen.Clear()
}

// HideCursor hides the terminal cursor.
func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// ShowCursor is a no-op; tcell shows the cursor when positioned.
func (b *Backend) ShowCursor() {}

// SetCursorPos moves the visible cursor.
func (b *Backend) SetCursorPos(x, y int) {
	b.screen.ShowCursor(x, y)
}

// PollEvent blocks until input arrives. Events the UI does not model,
// such as mouse input, are skipped.
func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if converted := convertEvent(ev); converted != nil {
			return converted
		}
	}
}

// PostEvent injects an event into the queue.
func (b *Backend) PostEvent(ev terminal.Event) error {
	tev := reverseConvertEvent(ev)
	if tev == nil {
		return nil
	}
	return b.screen.PostEvent(tev)
}

// Beep rings the terminal bell.
func (b *Backend) Beep() {
	b.screen.Beep()
}

// Sync forces a full repaint.
func (b *Backend) Sync() {
	b.screen.Sync()
}

func convertStyle(s backend.Style) tcell.Style {
	fg, bg, attrs := s.Decompose()
	style := tcell.StyleDefault.
		Foreground(convertColor(fg)).
		Background(convertColor(bg))

	if attrs&backend.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&backend.AttrItalic != 0 {
		style = style.Italic(true)
	}
	if attrs&backend.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attrs&backend.AttrDim != 0 {
		style = style.Dim(true)
	}
	if attrs&backend.AttrBlink != 0 {
		style = style.Blink(true)
	}
	if attrs&backend.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if attrs&backend.AttrStrikeThrough != 0 {
		style = style.StrikeThrough(true)
	}
	return style
}

func convertColor(c backend.Color) tcell.Color {
	if c == backend.ColorDefault {
		return tcell.ColorDefault
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(int(c))
}

func convertEvent(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKeyEvent(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	default:
		return nil
	}
}

func convertKeyEvent(e *tcell.EventKey) terminal.Event {
	mods := e.Modifiers()
	ke := terminal.KeyEvent{
		Rune:  e.Rune(),
		Alt:   mods&tcell.ModAlt != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
	}

	switch k := e.Key(); k {
	case tcell.KeyRune:
		ke.Key = terminal.KeyRune
	case tcell.KeyEnter:
		ke.Key = terminal.KeyEnter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ke.Key = terminal.KeyBackspace
	case tcell.KeyTab:
		ke.Key = terminal.KeyTab
	case tcell.KeyBacktab:
		// Shift+Tab is a distinct key in tcell; the UI sees it as
		// Tab with the Shift modifier.
		ke.Key = terminal.KeyTab
		ke.Shift = true
	case tcell.KeyEscape:
		ke.Key = terminal.KeyEscape
	case tcell.KeyUp:
		ke.Key = terminal.KeyUp
	case tcell.KeyDown:
		ke.Key = terminal.KeyDown
	case tcell.KeyLeft:
		ke.Key = terminal.KeyLeft
	case tcell.KeyRight:
		ke.Key = terminal.KeyRight
	case tcell.KeyHome:
		ke.Key = terminal.KeyHome
	case tcell.KeyEnd:
		ke.Key = terminal.KeyEnd
	case tcell.KeyPgUp:
		ke.Key = terminal.KeyPageUp
	case tcell.KeyPgDn:
		ke.Key = terminal.KeyPageDown
	case tcell.KeyDelete:
		ke.Key = terminal.KeyDelete
	case tcell.KeyInsert:
		ke.Key = terminal.KeyInsert
	default:
		if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
			ke.Key = terminal.KeyF1 + terminal.Key(k-tcell.KeyF1)
			break
		}
		// Ctrl-letter combinations arrive as dedicated tcell keys.
		// Report them as the lowercase rune with Ctrl set so the
		// dispatch layer has one shape for all character input.
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			ke.Key = terminal.KeyRune
			ke.Rune = rune('a' + int(k-tcell.KeyCtrlA))
			ke.Ctrl = true
			break
		}
		return nil
	}
	return ke
}

func reverseConvertEvent(ev terminal.Event) tcell.Event {
	switch e := ev.(type) {
	case terminal.KeyEvent:
		var mods tcell.ModMask
		if e.Alt {
			mods |= tcell.ModAlt
		}
		if e.Ctrl {
			mods |= tcell.ModCtrl
		}
		if e.Shift {
			mods |= tcell.ModShift
		}
		return tcell.NewEventKey(reverseConvertKey(e), e.Rune, mods)
	case terminal.ResizeEvent:
		return tcell.NewEventResize(e.Width, e.Height)
	default:
		return nil
	}
}

func reverseConvertKey(e terminal.KeyEvent) tcell.Key {
	switch e.Key {
	case terminal.KeyRune:
		return tcell.KeyRune
	case terminal.KeyEnter:
		return tcell.KeyEnter
	case terminal.KeyBackspace:
		return tcell.KeyBackspace2
	case terminal.KeyTab:
		if e.Shift {
			return tcell.KeyBacktab
		}
		return tcell.KeyTab
	case terminal.KeyEscape:
		return tcell.KeyEscape
	case terminal.KeyUp:
		return tcell.KeyUp
	case terminal.KeyDown:
		return tcell.KeyDown
	case terminal.KeyLeft:
		return tcell.KeyLeft
	case terminal.KeyRight:
		return tcell.KeyRight
	case terminal.KeyHome:
		return tcell.KeyHome
	case terminal.KeyEnd:
		return tcell.KeyEnd
	case terminal.KeyPageUp:
		return tcell.KeyPgUp
	case terminal.KeyPageDown:
		return tcell.KeyPgDn
	case terminal.KeyDelete:
		return tcell.KeyDelete
	case terminal.KeyInsert:
		return tcell.KeyInsert
	default:
		if e.Key >= terminal.KeyF1 && e.Key <= terminal.KeyF12 {
			return tcell.KeyF1 + tcell.Key(e.Key-terminal.KeyF1)
		}
		return tcell.KeyNUL
	}
}

var _ backend.Backend = (*Backend)(nil)
