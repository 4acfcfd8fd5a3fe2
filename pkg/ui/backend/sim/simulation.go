// Package sim provides an in-memory backend for tests, built on
// tcell's simulation screen. Tests inject key events and assert on the
// rendered frame without a terminal.
package sim

import (
	"strings"
	"sync"

	tcellv2 "github.com/gdamore/tcell/v2"

	"github.com/rfarias/tuido/pkg/ui/backend"
	"github.com/rfarias/tuido/pkg/ui/backend/tcell"
	"github.com/rfarias/tuido/pkg/ui/terminal"
)

// Backend is a testable backend over tcell's SimulationScreen. It
// embeds the real tcell backend so event and style conversion is the
// same code path the application ships with.
type Backend struct {
	*tcell.Backend
	screen tcellv2.SimulationScreen
	mu     sync.Mutex
}

// New creates a simulation backend with the given dimensions.
func New(width, height int) *Backend {
	screen := tcellv2.NewSimulationScreen("")
	screen.SetSize(width, height)
	return &Backend{
		Backend: tcell.NewWithScreen(screen),
		screen:  screen,
	}
}

// InjectKey queues a key press.
func (s *Backend) InjectKey(ev terminal.KeyEvent) {
	s.PostEvent(ev)
}

// InjectKeyRune queues a printable character press.
func (s *Backend) InjectKeyRune(r rune) {
	s.InjectKey(terminal.RuneOf(r))
}

// InjectKeyString queues each rune of str as a key press.
func (s *Backend) InjectKeyString(str string) {
	for _, r := range str {
		s.InjectKeyRune(r)
	}
}

// InjectResize changes the simulated size and queues a resize event.
func (s *Backend) InjectResize(width, height int) {
	s.mu.Lock()
	s.screen.SetSize(width, height)
	s.mu.Unlock()
	s.PostEvent(terminal.ResizeEvent{Width: width, Height: height})
}

// Capture renders the shown screen content as newline-joined text.
func (s *Backend) Capture() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.screen.Size()
	lines := make([]string, 0, h)
	for y := 0; y < h; y++ {
		var line strings.Builder
		for x := 0; x < w; x++ {
			mainc, comb, _, _ := s.screen.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
			for _, c := range comb {
				line.WriteRune(c)
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// CaptureCell returns the content and style of one cell.
func (s *Backend) CaptureCell(x, y int) (mainc rune, comb []rune, style backend.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, c, ts, _ := s.screen.GetContent(x, y)
	return m, c, convertTcellStyle(ts)
}

// FindText returns the position of the first occurrence of text on
// screen, or (-1, -1) when absent.
func (s *Backend) FindText(text string) (x, y int) {
	for row, line := range strings.Split(s.Capture(), "\n") {
		if col := strings.Index(line, text); col >= 0 {
			return col, row
		}
	}
	return -1, -1
}

// ContainsText reports whether text appears anywhere on screen.
func (s *Backend) ContainsText(text string) bool {
	x, _ := s.FindText(text)
	return x >= 0
}

func convertTcellStyle(ts tcellv2.Style) backend.Style {
	fg, bg, attrs := ts.Decompose()
	style := backend.DefaultStyle().
		Foreground(convertTcellColor(fg)).
		Background(convertTcellColor(bg))

	if attrs&tcellv2.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&tcellv2.AttrItalic != 0 {
		style = style.Italic(true)
	}
	if attrs&tcellv2.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attrs&tcellv2.AttrDim != 0 {
		style = style.Dim(true)
	}
	if attrs&tcellv2.AttrBlink != 0 {
		style = style.Blink(true)
	}
	if attrs&tcellv2.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if attrs&tcellv2.AttrStrikeThrough != 0 {
		style = style.StrikeThrough(true)
	}
	return style
}

func convertTcellColor(tc tcellv2.Color) backend.Color {
	if tc == tcellv2.ColorDefault {
		return backend.ColorDefault
	}
	if tc&tcellv2.ColorIsRGB != 0 {
		r, g, b := tc.RGB()
		return backend.ColorRGB(uint8(r), uint8(g), uint8(b))
	}
	return backend.Color(tc & 0xFF)
}

var _ backend.Backend = (*Backend)(nil)
