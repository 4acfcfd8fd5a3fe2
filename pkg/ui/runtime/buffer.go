package runtime

import (
	"github.com/mattn/go-runewidth"

	"github.com/rfarias/tuido/pkg/ui/backend"
)

// Cell is one character cell on the surface. A zero Rune marks the
// shadow cell behind a wide rune.
type Cell struct {
	Rune  rune
	Style backend.Style
}

// Surface is the cell grid screens render into. It tracks which cells
// changed since the last flush so a flush touches only those cells; a
// flush with nothing dirty performs no terminal output at all.
type Surface struct {
	cells  []Cell
	width  int
	height int

	dirty      []bool
	dirtyCount int
	dirtyRect  Rect

	cursorX, cursorY int
	cursorOn         bool
}

// NewSurface creates a surface with the given dimensions. It starts
// fully dirty so the first flush paints the whole screen.
func NewSurface(w, h int) *Surface {
	s := &Surface{
		cells:  make([]Cell, w*h),
		dirty:  make([]bool, w*h),
		width:  w,
		height: h,
	}
	s.reset()
	s.MarkAllDirty()
	return s
}

func (s *Surface) reset() {
	blank := Cell{Rune: ' ', Style: backend.DefaultStyle()}
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// Size returns the surface dimensions.
func (s *Surface) Size() (w, h int) {
	return s.width, s.height
}

// Resize changes the dimensions and marks everything dirty.
func (s *Surface) Resize(w, h int) {
	if w == s.width && h == s.height {
		return
	}
	s.cells = make([]Cell, w*h)
	s.dirty = make([]bool, w*h)
	s.width = w
	s.height = h
	s.reset()
	s.MarkAllDirty()
}

// Get returns the cell at (x, y), or a blank cell out of bounds.
func (s *Surface) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y*s.width+x]
}

// Set writes one rune at (x, y). Writes outside the surface are
// dropped. A wide rune also claims the cell to its right.
func (s *Surface) Set(x, y int, r rune, style backend.Style) {
	s.put(x, y, Cell{Rune: r, Style: style})
	if runewidth.RuneWidth(r) == 2 {
		s.put(x+1, y, Cell{Style: style})
	}
}

func (s *Surface) put(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	idx := y*s.width + x
	if s.cells[idx] == c {
		return
	}
	s.cells[idx] = c
	s.markDirty(x, y, idx)
}

// SetString writes a string starting at (x, y), clipped to the
// surface, advancing by display width so wide runes line up.
func (s *Surface) SetString(x, y int, str string, style backend.Style) {
	if y < 0 || y >= s.height {
		return
	}
	for _, r := range str {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > s.width {
			break
		}
		s.Set(x, y, r, style)
		x += w
	}
}

// Fill fills a rectangle with one rune, clipped to the surface.
func (s *Surface) Fill(r Rect, ch rune, style backend.Style) {
	area := r.Intersection(Rect{0, 0, s.width, s.height})
	if area.Empty() {
		return
	}
	cell := Cell{Rune: ch, Style: style}
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			s.put(x, y, cell)
		}
	}
}

// Clear fills the whole surface with blanks.
func (s *Surface) Clear() {
	s.Fill(Rect{0, 0, s.width, s.height}, ' ', backend.DefaultStyle())
	s.cursorOn = false
}

// ClearRect fills a rectangle with blanks.
func (s *Surface) ClearRect(r Rect) {
	s.Fill(r, ' ', backend.DefaultStyle())
}

// DrawBox draws a single-line border along the edge of r.
func (s *Surface) DrawBox(r Rect, style backend.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	s.Set(r.X, r.Y, '┌', style)
	s.Set(r.X+r.Width-1, r.Y, '┐', style)
	s.Set(r.X, r.Y+r.Height-1, '└', style)
	s.Set(r.X+r.Width-1, r.Y+r.Height-1, '┘', style)
	for x := r.X + 1; x < r.X+r.Width-1; x++ {
		s.Set(x, r.Y, '─', style)
		s.Set(x, r.Y+r.Height-1, '─', style)
	}
	for y := r.Y + 1; y < r.Y+r.Height-1; y++ {
		s.Set(r.X, y, '│', style)
		s.Set(r.X+r.Width-1, y, '│', style)
	}
}

// SetCursor places the hardware cursor, used by text inputs.
func (s *Surface) SetCursor(x, y int) {
	s.cursorX, s.cursorY = x, y
	s.cursorOn = true
}

// HideCursor turns the hardware cursor off for the next flush.
func (s *Surface) HideCursor() {
	s.cursorOn = false
}

func (s *Surface) markDirty(x, y, idx int) {
	if s.dirty[idx] {
		return
	}
	s.dirty[idx] = true
	s.dirtyCount++
	if s.dirtyCount == 1 {
		s.dirtyRect = Rect{X: x, Y: y, Width: 1, Height: 1}
		return
	}
	if x < s.dirtyRect.X {
		s.dirtyRect.Width += s.dirtyRect.X - x
		s.dirtyRect.X = x
	} else if x >= s.dirtyRect.X+s.dirtyRect.Width {
		s.dirtyRect.Width = x - s.dirtyRect.X + 1
	}
	if y < s.dirtyRect.Y {
		s.dirtyRect.Height += s.dirtyRect.Y - y
		s.dirtyRect.Y = y
	} else if y >= s.dirtyRect.Y+s.dirtyRect.Height {
		s.dirtyRect.Height = y - s.dirtyRect.Y + 1
	}
}

// MarkAllDirty forces the next flush to rewrite every cell.
func (s *Surface) MarkAllDirty() {
	for i := range s.dirty {
		s.dirty[i] = true
	}
	s.dirtyCount = len(s.dirty)
	s.dirtyRect = Rect{0, 0, s.width, s.height}
}

// IsDirty reports whether any cell changed since the last flush.
func (s *Surface) IsDirty() bool {
	return s.dirtyCount > 0
}

// DirtyCount returns the number of changed cells.
func (s *Surface) DirtyCount() int {
	return s.dirtyCount
}

// DirtyRect returns the bounding box of changed cells.
func (s *Surface) DirtyRect() Rect {
	return s.dirtyRect
}

// ForEachDirtyCell visits every changed cell. Iterates the dirty
// bounding box unless most of the surface changed.
func (s *Surface) ForEachDirtyCell(fn func(x, y int, cell Cell)) {
	if s.dirtyCount == 0 {
		return
	}
	box := s.dirtyRect
	if s.dirtyCount > s.width*s.height/2 {
		box = Rect{0, 0, s.width, s.height}
	}
	for y := box.Y; y < box.Y+box.Height && y < s.height; y++ {
		for x := box.X; x < box.X+box.Width && x < s.width; x++ {
			idx := y*s.width + x
			if s.dirty[idx] {
				fn(x, y, s.cells[idx])
			}
		}
	}
}

// Flush writes changed cells to the backend and shows the frame. When
// nothing is dirty, Flush is a no-op.
func (s *Surface) Flush(b backend.Backend) {
	if s.dirtyCount == 0 {
		return
	}
	s.ForEachDirtyCell(func(x, y int, cell Cell) {
		r := cell.Rune
		if r == 0 {
			return
		}
		b.SetContent(x, y, r, nil, cell.Style)
	})
	if s.cursorOn {
		b.SetCursorPos(s.cursorX, s.cursorY)
	} else {
		b.HideCursor()
	}
	b.Show()
	clear(s.dirty)
	s.dirtyCount = 0
	s.dirtyRect = Rect{}
}
