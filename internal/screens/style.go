package screens

import (
	"github.com/rfarias/tuido/pkg/ui/theme"
	"github.com/rfarias/tuido/pkg/ui/widgets"
)

// Themed constructors so every screen styles its widgets the same
// way.

type button = widgets.Button

func newButton(th theme.Theme, label string, onPress func()) *widgets.Button {
	b := widgets.NewButton(label, onPress)
	b.Style = th.Text
	b.FocusedStyle = th.Focused
	return b
}

func newFrame(th theme.Theme, title string) *widgets.Frame {
	f := widgets.NewFrame(title)
	f.Style = th.Frame
	f.TitleStyle = th.Title
	return f
}

func newLabel(th theme.Theme, text string) *widgets.Label {
	l := widgets.NewLabel(text)
	l.Style = th.Text
	return l
}

func newErrorLabel(th theme.Theme) *widgets.Label {
	l := widgets.NewLabel("")
	l.Style = th.Error
	return l
}

func newTextInput(th theme.Theme, placeholder string) *widgets.TextInput {
	t := widgets.NewTextInput()
	t.Placeholder = placeholder
	t.Style = th.Text
	t.FocusedStyle = th.Focused
	t.PlaceholderStyle = th.Placeholder
	return t
}

func newSelector(th theme.Theme, options ...string) *widgets.Selector {
	s := widgets.NewSelector(options...)
	s.Style = th.Text
	s.FocusedStyle = th.Focused
	return s
}

func newCheckbox(th theme.Theme, label string) *widgets.Checkbox {
	c := widgets.NewCheckbox(label)
	c.Style = th.Text
	c.FocusedStyle = th.Focused
	return c
}

func newVerticalList(th theme.Theme) *widgets.VerticalList {
	v := widgets.NewVerticalList()
	v.SelectionStyle = th.Selection
	return v
}

func newDateInput(th theme.Theme) *widgets.DateInput {
	d := widgets.NewDateInput()
	d.Style = th.Text
	d.FocusedStyle = th.Focused
	d.EditStyle = th.Selection.Reverse(true)
	return d
}
