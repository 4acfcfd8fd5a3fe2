package screens

import (
	"errors"
	"fmt"

	"github.com/rfarias/tuido/internal/tasks"
	"github.com/rfarias/tuido/pkg/ui/runtime"
	"github.com/rfarias/tuido/pkg/ui/terminal"
	"github.com/rfarias/tuido/pkg/ui/widgets"
)

// ListSelection is the home screen: the task lists on the left, the
// actions on the right. Delete removes the selected list after a
// confirmation.
type ListSelection struct {
	runtime.BaseScreen
	env  *Env
	list *widgets.VerticalList
}

// NewListSelection builds the home screen.
func NewListSelection(env *Env) *ListSelection {
	s := &ListSelection{env: env}
	s.ArrowTraversal = env.ArrowTraversal

	frame := newFrame(env.Theme, "tuido")
	frame.SetBounds(runtime.Rect{X: 0, Y: 0, Width: screenWidth, Height: screenHeight})

	s.list = newVerticalList(env.Theme)
	s.list.SetBounds(runtime.Rect{X: 3, Y: 2, Width: 45, Height: 17})

	view := env.styledButton("View", s.viewSelected)
	viewAll := env.styledButton("View All", s.viewAll)
	create := env.styledButton("New List", func() {
		env.App.Push(NewCreateList(env))
	})
	edit := env.styledButton("Edit List", s.editSelected)
	search := env.styledButton("Search", func() {
		env.App.Push(NewSearchInput(env))
	})
	byTag := env.styledButton("By Tag", func() {
		env.App.Push(NewTagInput(env))
	})
	buttonColumn(52, 2, view, viewAll, create, edit, search, byTag)

	hint := newLabel(env.Theme, "Enter view · Del delete · Esc quit")
	hint.Style = env.Theme.Placeholder
	hint.SetBounds(runtime.Rect{X: 3, Y: screenHeight - 3, Width: screenWidth - 6, Height: 1})

	s.SetWidgets([]runtime.Widget{frame, s.list, view, viewAll, create, edit, search, byTag, hint})
	s.Refresh()
	return s
}

// Refresh rebuilds the list rows from the manager.
func (s *ListSelection) Refresh() {
	cursor := s.list.Cursor()
	s.list.Clear()
	for _, l := range s.env.Manager.Lists() {
		open := 0
		for _, t := range l.Tasks {
			if !t.Done {
				open++
			}
		}
		row := newLabel(s.env.Theme, fmt.Sprintf("%s (%d open)", l.Title, open))
		s.list.Append(row)
	}
	if cursor >= 0 {
		s.list.SetCursor(cursor)
	}
}

func (s *ListSelection) selected() *tasks.List {
	i := s.list.Cursor()
	lists := s.env.Manager.Lists()
	if i < 0 || i >= len(lists) {
		return nil
	}
	return lists[i]
}

func (s *ListSelection) viewSelected() {
	if l := s.selected(); l != nil {
		s.env.App.Push(NewFilterOptions(s.env, l.ID, ""))
	}
}

func (s *ListSelection) viewAll() {
	s.env.App.Push(NewFilterOptions(s.env, 0, ""))
}

func (s *ListSelection) editSelected() {
	if l := s.selected(); l != nil {
		s.env.App.Push(NewEditList(s.env, l))
	}
}

func (s *ListSelection) deleteSelected() {
	l := s.selected()
	if l == nil {
		return
	}
	if !s.env.App.Confirm(fmt.Sprintf("Delete list %q and its tasks?", l.Title)) {
		return
	}
	if err := s.env.Manager.RemoveList(l.ID); err != nil {
		if errors.Is(err, tasks.ErrLastList) {
			s.env.App.Alert("The last list cannot be deleted.")
			return
		}
		s.env.App.Alert(err.Error())
		return
	}
	s.env.Save()
	s.Refresh()
}

// HandleKey adds Enter to open and Delete to remove the selected
// list on top of the default routing.
func (s *ListSelection) HandleKey(ev terminal.KeyEvent) runtime.Outcome {
	if out := s.BaseScreen.HandleKey(ev); out != runtime.Ignored {
		return out
	}
	onList := s.Focus().Current() == s.list
	switch ev.Key {
	case terminal.KeyEnter:
		if onList {
			s.viewSelected()
			return runtime.Activated
		}
	case terminal.KeyDelete:
		if onList {
			s.deleteSelected()
			return runtime.Consumed
		}
	}
	return runtime.Ignored
}
