package screens

import (
	"errors"

	"github.com/rfarias/tuido/internal/tasks"
	"github.com/rfarias/tuido/pkg/ui/runtime"
	"github.com/rfarias/tuido/pkg/ui/widgets"
)

// listForm is the shared form behind CreateList and EditList: a title
// input with an inline error line for guard refusals such as
// duplicate titles.
type listForm struct {
	runtime.BaseScreen
	env    *Env
	title  *widgets.TextInput
	errLbl *widgets.Label
	submit func(title string) error
}

func newListForm(env *Env, caption, initial string, submit func(string) error) *listForm {
	s := &listForm{env: env, submit: submit}
	s.ArrowTraversal = env.ArrowTraversal

	frame := newFrame(env.Theme, caption)
	frame.SetBounds(runtime.Rect{X: 10, Y: 6, Width: 60, Height: 12})

	label := newLabel(env.Theme, "Title:")
	label.SetBounds(runtime.Rect{X: 13, Y: 8, Width: 8, Height: 1})

	s.title = newTextInput(env.Theme, "list title")
	s.title.SetText(initial)
	s.title.SetBounds(runtime.Rect{X: 21, Y: 8, Width: 46, Height: 1})

	s.errLbl = newErrorLabel(env.Theme)
	s.errLbl.SetBounds(runtime.Rect{X: 13, Y: 10, Width: 54, Height: 1})

	ok := env.styledButton("Save", s.save)
	cancel := env.styledButton("Cancel", func() { env.App.RequestPop() })
	buttonColumn(13, 12, ok)
	buttonColumn(13+buttonWidth+2, 12, cancel)

	s.SetWidgets([]runtime.Widget{frame, label, s.title, s.errLbl, ok, cancel})
	return s
}

func (s *listForm) save() {
	err := s.submit(s.title.Text())
	switch {
	case err == nil:
		s.env.Save()
		s.env.App.RequestPop()
	case errors.Is(err, tasks.ErrDuplicateTitle):
		s.errLbl.Text = "A list with that title already exists."
	case errors.Is(err, tasks.ErrEmptyTitle):
		s.errLbl.Text = "The title cannot be empty."
	default:
		s.errLbl.Text = err.Error()
	}
}

// NewCreateList builds the new-list form.
func NewCreateList(env *Env) runtime.Screen {
	return newListForm(env, "New List", "", func(title string) error {
		_, err := env.Manager.CreateList(title)
		return err
	})
}

// NewEditList builds the rename form for l.
func NewEditList(env *Env, l *tasks.List) runtime.Screen {
	return newListForm(env, "Edit List", l.Title, func(title string) error {
		return env.Manager.RenameList(l.ID, title)
	})
}
