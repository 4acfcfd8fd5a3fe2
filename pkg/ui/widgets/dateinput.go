package widgets

import (
	"fmt"
	"time"

	"github.com/rfarias/tuido/pkg/ui/backend"
	"github.com/rfarias/tuido/pkg/ui/runtime"
	"github.com/rfarias/tuido/pkg/ui/terminal"
)

type dateField int

const (
	fieldDay dateField = iota
	fieldMonth
	fieldYear
)

// DateInput edits a calendar date as day/month/year sub-fields.
// Enter toggles edit mode; while editing, Left/Right pick the
// sub-field and Up/Down cycle its value. Changing month or year
// clamps the day to the month length, so the value is always a real
// date.
type DateInput struct {
	runtime.FocusableBase
	Style        backend.Style
	FocusedStyle backend.Style
	EditStyle    backend.Style

	day, month, year int
	field            dateField
	editing          bool
}

// NewDateInput creates an input holding today's date.
func NewDateInput() *DateInput {
	now := time.Now()
	return &DateInput{
		Style:        backend.DefaultStyle(),
		FocusedStyle: backend.DefaultStyle().Bold(true),
		EditStyle:    backend.DefaultStyle().Reverse(true),
		day:          now.Day(),
		month:        int(now.Month()),
		year:         now.Year(),
	}
}

// Date returns the value as a date-only time.
func (d *DateInput) Date() time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
}

// SetDate sets the value, rejecting impossible dates such as
// February 31st.
func (d *DateInput) SetDate(day, month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("invalid month %d", month)
	}
	if day < 1 || day > daysInMonth(month, year) {
		return fmt.Errorf("invalid day %d for %d-%02d", day, year, month)
	}
	d.day, d.month, d.year = day, month, year
	return nil
}

// Editing reports whether the widget is in edit mode.
func (d *DateInput) Editing() bool {
	return d.editing
}

func daysInMonth(month, year int) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d *DateInput) clampDay() {
	if limit := daysInMonth(d.month, d.year); d.day > limit {
		d.day = limit
	}
}

// HandleKey toggles edit mode on Enter and edits the selected
// sub-field while editing.
func (d *DateInput) HandleKey(ev terminal.KeyEvent) runtime.Outcome {
	if ev.Key == terminal.KeyEnter {
		d.editing = !d.editing
		return runtime.Consumed
	}
	if !d.editing {
		return runtime.Ignored
	}

	switch ev.Key {
	case terminal.KeyLeft:
		if d.field > fieldDay {
			d.field--
		}
		return runtime.Consumed
	case terminal.KeyRight:
		if d.field < fieldYear {
			d.field++
		}
		return runtime.Consumed
	case terminal.KeyUp:
		d.step(1)
		return runtime.Consumed
	case terminal.KeyDown:
		d.step(-1)
		return runtime.Consumed
	case terminal.KeyEscape:
		d.editing = false
		return runtime.Consumed
	}
	// Keys the widget does nothing with fall through so Tab keeps
	// traversing focus even in edit mode.
	return runtime.Ignored
}

func (d *DateInput) step(delta int) {
	switch d.field {
	case fieldDay:
		limit := daysInMonth(d.month, d.year)
		d.day = wrap(d.day+delta, 1, limit)
	case fieldMonth:
		d.month = wrap(d.month+delta, 1, 12)
		d.clampDay()
	case fieldYear:
		d.year += delta
		if d.year < 1 {
			d.year = 1
		}
		d.clampDay()
	}
}

func wrap(v, lo, hi int) int {
	span := hi - lo + 1
	return (v-lo+span)%span + lo
}

// Render draws the date as DD/MM/YYYY, reversing the sub-field being
// edited.
func (d *DateInput) Render(s *runtime.Surface) {
	b := d.Bounds()
	style := d.Style
	if d.Focused() {
		style = d.FocusedStyle
	}

	parts := [3]string{
		fmt.Sprintf("%02d", d.day),
		fmt.Sprintf("%02d", d.month),
		fmt.Sprintf("%04d", d.year),
	}
	x := b.X
	for i, part := range parts {
		ps := style
		if d.editing && dateField(i) == d.field {
			ps = d.EditStyle
		}
		s.SetString(x, b.Y, part, ps)
		x += len(part)
		if i < 2 {
			s.SetString(x, b.Y, "/", style)
			x++
		}
	}
}
