// Package widgets provides the closed set of UI elements the screens
// compose: labels, frames, buttons, inputs, selectors, checkboxes,
// and the vertical list.
package widgets

import "github.com/mattn/go-runewidth"

// fit truncates s to the given display width, marking the cut with an
// ellipsis.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
