package screens

import (
	"strings"

	"github.com/rfarias/tuido/internal/tasks"
	"github.com/rfarias/tuido/pkg/ui/runtime"
	"github.com/rfarias/tuido/pkg/ui/widgets"
)

// TaskDetail is the read-only attribute sheet of one task.
type TaskDetail struct {
	runtime.BaseScreen
	env   *Env
	entry tasks.Entry
	rows  []*widgets.Label
}

// NewTaskDetail builds the sheet for e.
func NewTaskDetail(env *Env, e tasks.Entry) *TaskDetail {
	s := &TaskDetail{env: env, entry: e}
	s.ArrowTraversal = env.ArrowTraversal

	frame := newFrame(env.Theme, "Task")
	frame.SetBounds(runtime.Rect{X: 8, Y: 2, Width: 64, Height: 20})

	ws := []runtime.Widget{frame}
	for i := 0; i < 8; i++ {
		row := newLabel(env.Theme, "")
		row.SetBounds(runtime.Rect{X: 11, Y: 4 + i, Width: 58, Height: 1})
		s.rows = append(s.rows, row)
		ws = append(ws, row)
	}

	edit := env.styledButton("Edit", func() {
		env.App.Push(NewEditTask(env, s.entry))
	})
	back := env.styledButton("Back", func() { env.App.RequestPop() })
	buttonColumn(11, 14, edit)
	buttonColumn(11+buttonWidth+2, 14, back)
	ws = append(ws, edit, back)

	s.SetWidgets(ws)
	s.Refresh()
	return s
}

// Refresh re-reads the task, which may have been edited above. The
// edit screen can also move the task to another list, so the owning
// list is re-resolved by ID.
func (s *TaskDetail) Refresh() {
	for _, l := range s.env.Manager.Lists() {
		if l.Task(s.entry.Task.ID) != nil {
			s.entry.List = l
			break
		}
	}
	t := s.entry.Task
	status := "open"
	if t.Done {
		status = "done"
	}
	due := "none"
	if t.Due != nil {
		due = t.Due.Display()
	}
	note := t.Note
	if note == "" {
		note = "-"
	}
	tags := "-"
	if len(t.Tags) > 0 {
		tags = strings.Join(t.Tags, ", ")
	}
	values := []string{
		"Title:      " + t.Title,
		"List:       " + s.entry.List.Title,
		"Status:     " + status,
		"Due:        " + due,
		"Priority:   " + t.Priority.String(),
		"Recurrence: " + t.Recurrence.String(),
		"Tags:       " + tags,
		"Note:       " + note,
	}
	for i, row := range s.rows {
		row.Text = values[i]
	}
}
