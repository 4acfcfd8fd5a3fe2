package screens

import (
	"fmt"
	"strings"

	"github.com/rfarias/tuido/internal/tasks"
	"github.com/rfarias/tuido/pkg/ui/runtime"
	"github.com/rfarias/tuido/pkg/ui/terminal"
	"github.com/rfarias/tuido/pkg/ui/widgets"
)

// TaskView shows the tasks matching a query. Enter toggles the
// selected task, Delete removes it, and the screen re-runs its query
// whenever a pop reveals it so edits made above are visible.
type TaskView struct {
	runtime.BaseScreen
	env     *Env
	query   tasks.ViewQuery
	list    *widgets.VerticalList
	entries []tasks.Entry
	count   *widgets.Label
}

// NewTaskView builds a view over q.
func NewTaskView(env *Env, q tasks.ViewQuery) *TaskView {
	s := &TaskView{env: env, query: q}
	s.ArrowTraversal = env.ArrowTraversal

	frame := newFrame(env.Theme, s.caption())
	frame.SetBounds(runtime.Rect{X: 0, Y: 0, Width: screenWidth, Height: screenHeight})

	s.list = newVerticalList(env.Theme)
	s.list.SetBounds(runtime.Rect{X: 2, Y: 2, Width: 50, Height: 18})

	s.count = newLabel(env.Theme, "")
	s.count.Style = env.Theme.Placeholder
	s.count.SetBounds(runtime.Rect{X: 2, Y: screenHeight - 3, Width: 40, Height: 1})

	create := env.styledButton("New Task", s.createTask)
	details := env.styledButton("Details", s.showDetails)
	back := env.styledButton("Back", func() { env.App.RequestPop() })

	buttons := []runtime.Widget{create, details}
	if q.Status == tasks.StatusDone {
		buttons = append(buttons, env.styledButton("Delete Completed", s.deleteCompleted))
	}
	buttons = append(buttons, back)
	buttonColumn(55, 2, buttons...)

	ws := append([]runtime.Widget{frame, s.list, s.count}, buttons...)
	s.SetWidgets(ws)
	s.Refresh()
	return s
}

func (s *TaskView) caption() string {
	var parts []string
	if s.query.ListID != 0 {
		if l, err := s.env.Manager.List(s.query.ListID); err == nil {
			parts = append(parts, l.Title)
		}
	} else {
		parts = append(parts, "All Lists")
	}
	if s.query.Tag != "" {
		parts = append(parts, "#"+s.query.Tag)
	}
	if s.query.Time != tasks.TimeAll {
		parts = append(parts, s.query.Time.String())
	}
	if s.query.Status != tasks.StatusAll {
		parts = append(parts, s.query.Status.String())
	}
	return strings.Join(parts, " · ")
}

// Refresh re-runs the query and rebuilds the rows.
func (s *TaskView) Refresh() {
	cursor := s.list.Cursor()
	s.entries = s.env.Manager.View(s.query)
	s.list.Clear()
	for _, e := range s.entries {
		row := newLabel(s.env.Theme, s.rowText(e))
		if e.Task.Done {
			row.Style = s.env.Theme.Done
		}
		s.list.Append(row)
	}
	if cursor >= 0 {
		s.list.SetCursor(cursor)
	}
	s.count.Text = fmt.Sprintf("%d task(s)", len(s.entries))
}

func (s *TaskView) rowText(e tasks.Entry) string {
	mark := "[ ]"
	if e.Task.Done {
		mark = "[x]"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", mark, e.Task.Title)
	if e.Task.Due != nil {
		fmt.Fprintf(&sb, "  %s", e.Task.Due.Display())
	}
	if e.Task.Priority != tasks.PriorityNone {
		fmt.Fprintf(&sb, "  !%s", e.Task.Priority)
	}
	if s.query.ListID == 0 {
		fmt.Fprintf(&sb, "  (%s)", e.List.Title)
	}
	return sb.String()
}

func (s *TaskView) selected() (tasks.Entry, bool) {
	i := s.list.Cursor()
	if i < 0 || i >= len(s.entries) {
		return tasks.Entry{}, false
	}
	return s.entries[i], true
}

func (s *TaskView) createTask() {
	listID := s.query.ListID
	if listID == 0 {
		lists := s.env.Manager.Lists()
		if len(lists) == 0 {
			return
		}
		listID = lists[0].ID
	}
	s.env.App.Push(NewCreateTask(s.env, listID))
}

func (s *TaskView) showDetails() {
	if e, ok := s.selected(); ok {
		s.env.App.Push(NewTaskDetail(s.env, e))
	}
}

func (s *TaskView) toggleSelected() {
	e, ok := s.selected()
	if !ok {
		return
	}
	if _, err := s.env.Manager.ToggleDone(e.List.ID, e.Task.ID); err != nil {
		s.env.App.Alert(err.Error())
		return
	}
	s.env.Save()
	s.Refresh()
}

func (s *TaskView) deleteSelected() {
	e, ok := s.selected()
	if !ok {
		return
	}
	if !s.env.App.Confirm(fmt.Sprintf("Delete task %q?", e.Task.Title)) {
		return
	}
	if err := s.env.Manager.RemoveTask(e.List.ID, e.Task.ID); err != nil {
		s.env.App.Alert(err.Error())
		return
	}
	s.env.Save()
	s.Refresh()
}

func (s *TaskView) deleteCompleted() {
	if !s.env.App.Confirm("Delete every completed task in this view?") {
		return
	}
	removed := 0
	seen := map[int]bool{}
	for _, e := range s.entries {
		if !seen[e.List.ID] {
			seen[e.List.ID] = true
			n, err := s.env.Manager.RemoveCompleted(e.List.ID)
			if err != nil {
				s.env.App.Alert(err.Error())
				return
			}
			removed += n
		}
	}
	s.env.Save()
	s.Refresh()
	s.env.App.Alert(fmt.Sprintf("Removed %d task(s).", removed))
}

// HandleKey adds Enter to toggle and Delete to remove the selected
// task when the list has focus.
func (s *TaskView) HandleKey(ev terminal.KeyEvent) runtime.Outcome {
	if out := s.BaseScreen.HandleKey(ev); out != runtime.Ignored {
		return out
	}
	if s.Focus().Current() != s.list {
		return runtime.Ignored
	}
	switch ev.Key {
	case terminal.KeyEnter:
		s.toggleSelected()
		return runtime.Activated
	case terminal.KeyDelete:
		s.deleteSelected()
		return runtime.Consumed
	}
	return runtime.Ignored
}
