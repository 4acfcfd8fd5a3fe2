// Package theme centralizes the styles shared by screens and widgets
// so the whole application draws from one palette.
package theme

import "github.com/rfarias/tuido/pkg/ui/backend"

// Theme names the styles the widgets and screens use.
type Theme struct {
	// Text is the style for plain content.
	Text backend.Style

	// Frame and Title style window borders and their captions.
	Frame backend.Style
	Title backend.Style

	// Focused marks the widget holding focus.
	Focused backend.Style

	// Placeholder styles hint text in empty inputs.
	Placeholder backend.Style

	// Selection marks the cursored row of a list.
	Selection backend.Style

	// Error styles inline validation messages.
	Error backend.Style

	// Done styles completed tasks.
	Done backend.Style
}

// Default returns the stock palette: green frames with blue titles,
// yellow for focus, cyan for list selection, red for errors, and
// struck-through dim text for completed items.
func Default() Theme {
	base := backend.DefaultStyle()
	return Theme{
		Text:        base,
		Frame:       base.Foreground(backend.ColorGreen),
		Title:       base.Foreground(backend.ColorBlue.Bright()).Bold(true),
		Focused:     base.Foreground(backend.ColorYellow.Bright()).Bold(true),
		Placeholder: base.Dim(true),
		Selection:   base.Foreground(backend.ColorCyan.Bright()).Bold(true),
		Error:       base.Foreground(backend.ColorRed.Bright()),
		Done:        base.Dim(true).StrikeThrough(true),
	}
}
