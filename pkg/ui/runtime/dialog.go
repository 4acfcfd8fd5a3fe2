package runtime

import (
	"github.com/mattn/go-runewidth"

	"github.com/rfarias/tuido/pkg/ui/backend"
	"github.com/rfarias/tuido/pkg/ui/terminal"
)

// Dialogs are modal and synchronous. Confirm and Alert run a nested
// dispatch loop on the calling goroutine: the covered screen stays on
// the surface, the dialog box owns every key until resolved, and when
// the call returns the stack and the covered screen are exactly as
// before.

// Confirm shows msg with Yes/No buttons and blocks until the user
// decides. Esc means No. The initial selection is No.
func (a *App) Confirm(msg string) bool {
	buttons := []string{"Yes", "No"}
	sel := 1
	for {
		a.drawDialog(msg, buttons, sel)
		ev := a.backend.PollEvent()
		if ev == nil {
			a.quitting = true
			a.renderTop()
			return false
		}
		switch e := ev.(type) {
		case terminal.ResizeEvent:
			a.resize(e.Width, e.Height)
			a.renderCovered()
		case terminal.KeyEvent:
			switch e.Key {
			case terminal.KeyTab, terminal.KeyLeft, terminal.KeyRight:
				sel = 1 - sel
			case terminal.KeyEnter:
				a.renderTop()
				return sel == 0
			case terminal.KeyEscape:
				a.renderTop()
				return false
			}
		}
	}
}

// Alert shows msg with a single OK button and blocks until dismissed
// with Enter or Esc.
func (a *App) Alert(msg string) {
	for {
		a.drawDialog(msg, []string{"OK"}, 0)
		ev := a.backend.PollEvent()
		if ev == nil {
			a.quitting = true
			a.renderTop()
			return
		}
		switch e := ev.(type) {
		case terminal.ResizeEvent:
			a.resize(e.Width, e.Height)
			a.renderCovered()
		case terminal.KeyEvent:
			if e.Key == terminal.KeyEnter || e.Key == terminal.KeyEscape {
				a.renderTop()
				return
			}
		}
	}
}

// renderCovered repaints the screen under the dialog without flushing,
// so the next drawDialog composes the dialog over fresh content.
func (a *App) renderCovered() {
	top := a.Top()
	if top == nil {
		return
	}
	a.surface.Clear()
	top.Render(a.surface)
}

func (a *App) drawDialog(msg string, buttons []string, sel int) {
	sw, sh := a.surface.Size()

	buttonsWidth := 0
	for _, b := range buttons {
		buttonsWidth += runewidth.StringWidth(b) + 4
	}
	buttonsWidth += (len(buttons) - 1) * 2

	msgWidth := runewidth.StringWidth(msg)
	inner := max(msgWidth, buttonsWidth)
	if inner > sw-4 {
		// Clamped at zero so a pathological resize cannot drive the
		// truncation width negative.
		inner = max(0, sw-4)
		msg = runewidth.Truncate(msg, inner, "…")
		msgWidth = runewidth.StringWidth(msg)
	}

	w := inner + 4
	h := 5
	box := Rect{X: (sw - w) / 2, Y: (sh - h) / 2, Width: w, Height: h}

	border := backend.DefaultStyle().Bold(true)
	body := backend.DefaultStyle()
	selected := body.Reverse(true)

	a.surface.ClearRect(box)
	a.surface.DrawBox(box, border)
	a.surface.SetString(box.X+(w-msgWidth)/2, box.Y+1, msg, body)

	x := box.X + (w-buttonsWidth)/2
	y := box.Y + 3
	for i, b := range buttons {
		label := "[ " + b + " ]"
		style := body
		if i == sel {
			style = selected
		}
		a.surface.SetString(x, y, label, style)
		x += runewidth.StringWidth(label) + 2
	}

	a.surface.HideCursor()
	a.surface.Flush(a.backend)
}
