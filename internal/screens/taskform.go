package screens

import (
	"strings"

	"github.com/rfarias/tuido/internal/tasks"
	"github.com/rfarias/tuido/pkg/ui/runtime"
	"github.com/rfarias/tuido/pkg/ui/widgets"
)

// taskForm is the shared form behind CreateTask and EditTask.
type taskForm struct {
	runtime.BaseScreen
	env *Env

	title      *widgets.TextInput
	note       *widgets.TextInput
	tagsInput  *widgets.TextInput
	priorities [3]*widgets.Checkbox
	hasDue     *widgets.Checkbox
	due        *widgets.DateInput
	recur      *widgets.Selector
	moveTo     *widgets.Selector
	errLbl     *widgets.Label

	listIDs []int
	submit  func(s *taskForm) error
}

func newTaskForm(env *Env, caption string, withMove bool, submit func(*taskForm) error) *taskForm {
	s := &taskForm{env: env, submit: submit}
	s.ArrowTraversal = env.ArrowTraversal

	frame := newFrame(env.Theme, caption)
	frame.SetBounds(runtime.Rect{X: 6, Y: 1, Width: 68, Height: 22})

	s.title = newTextInput(env.Theme, "what needs doing")
	s.note = newTextInput(env.Theme, "details")
	s.tagsInput = newTextInput(env.Theme, "comma, separated")
	s.hasDue = newCheckbox(env.Theme, "due date")
	s.due = newDateInput(env.Theme)
	s.recur = newSelector(env.Theme,
		tasks.RecurNone.String(), tasks.RecurDaily.String(), tasks.RecurWeekly.String(),
		tasks.RecurMonthly.String(), tasks.RecurYearly.String())

	labels := []string{"Title:", "Note:", "Tags:"}
	fields := []runtime.Widget{s.title, s.note, s.tagsInput}

	for i, name := range []string{"Low", "Medium", "High"} {
		cb := newCheckbox(env.Theme, name)
		idx := i
		cb.OnToggle = func(on bool) {
			if !on {
				return
			}
			for j, other := range s.priorities {
				if j != idx {
					other.SetChecked(false)
				}
			}
		}
		s.priorities[i] = cb
	}

	ws := []runtime.Widget{frame}
	y := 3
	for i, l := range labels {
		lbl := newLabel(env.Theme, l)
		lbl.SetBounds(runtime.Rect{X: 9, Y: y, Width: 11, Height: 1})
		fields[i].SetBounds(runtime.Rect{X: 21, Y: y, Width: 48, Height: 1})
		ws = append(ws, lbl, fields[i])
		y += 2
	}

	prioLbl := newLabel(env.Theme, "Priority:")
	prioLbl.SetBounds(runtime.Rect{X: 9, Y: y, Width: 11, Height: 1})
	ws = append(ws, prioLbl)
	for i, cb := range s.priorities {
		cb.SetBounds(runtime.Rect{X: 21 + i*13, Y: y, Width: 12, Height: 1})
		ws = append(ws, cb)
	}
	y += 2

	s.hasDue.SetBounds(runtime.Rect{X: 9, Y: y, Width: 14, Height: 1})
	s.due.SetBounds(runtime.Rect{X: 26, Y: y, Width: 12, Height: 1})
	ws = append(ws, s.hasDue, s.due)
	y += 2

	recurLbl := newLabel(env.Theme, "Repeat:")
	recurLbl.SetBounds(runtime.Rect{X: 9, Y: y, Width: 11, Height: 1})
	s.recur.SetBounds(runtime.Rect{X: 21, Y: y, Width: 20, Height: 1})
	ws = append(ws, recurLbl, s.recur)
	y += 2

	if withMove {
		var titles []string
		for _, l := range env.Manager.Lists() {
			titles = append(titles, l.Title)
			s.listIDs = append(s.listIDs, l.ID)
		}
		s.moveTo = newSelector(env.Theme, titles...)
		moveLbl := newLabel(env.Theme, "List:")
		moveLbl.SetBounds(runtime.Rect{X: 9, Y: y, Width: 11, Height: 1})
		s.moveTo.SetBounds(runtime.Rect{X: 21, Y: y, Width: 30, Height: 1})
		ws = append(ws, moveLbl, s.moveTo)
		y += 2
	}

	s.errLbl = newErrorLabel(env.Theme)
	s.errLbl.SetBounds(runtime.Rect{X: 9, Y: y, Width: 60, Height: 1})
	ws = append(ws, s.errLbl)
	y++

	save := env.styledButton("Save", s.save)
	cancel := env.styledButton("Cancel", func() { env.App.RequestPop() })
	buttonColumn(9, y, save)
	buttonColumn(9+buttonWidth+2, y, cancel)
	ws = append(ws, save, cancel)

	s.SetWidgets(ws)
	return s
}

func (s *taskForm) save() {
	if err := s.submit(s); err != nil {
		s.errLbl.Text = err.Error()
		return
	}
	s.env.Save()
	s.env.App.RequestPop()
}

func (s *taskForm) priority() tasks.Priority {
	for i, cb := range s.priorities {
		if cb.Checked {
			return tasks.Priority(i + 1)
		}
	}
	return tasks.PriorityNone
}

func (s *taskForm) setPriority(p tasks.Priority) {
	for i, cb := range s.priorities {
		cb.SetChecked(tasks.Priority(i+1) == p)
	}
}

func (s *taskForm) dueDate() *tasks.Date {
	if !s.hasDue.Checked {
		return nil
	}
	d := tasks.DateOf(s.due.Date())
	return &d
}

func (s *taskForm) tags() []string {
	var out []string
	for _, tag := range strings.Split(s.tagsInput.Text(), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func (s *taskForm) fill(t *tasks.Task) {
	s.title.SetText(t.Title)
	s.note.SetText(t.Note)
	s.tagsInput.SetText(strings.Join(t.Tags, ", "))
	s.setPriority(t.Priority)
	if t.Due != nil {
		s.hasDue.SetChecked(true)
		if err := s.due.SetDate(t.Due.Day, t.Due.Month, t.Due.Year); err != nil {
			// Only possible with a hand-edited data file; the input
			// keeps today's date.
			s.env.Log.Warn("stored due date invalid", "task", t.ID, "error", err)
		}
	}
	s.recur.SetIndex(int(t.Recurrence))
}

// NewCreateTask builds the new-task form targeting listID.
func NewCreateTask(env *Env, listID int) runtime.Screen {
	return newTaskForm(env, "New Task", false, func(s *taskForm) error {
		_, err := env.Manager.CreateTask(listID, tasks.Task{
			Title:      s.title.Text(),
			Note:       s.note.Text(),
			Tags:       s.tags(),
			Priority:   s.priority(),
			Due:        s.dueDate(),
			Recurrence: tasks.Recurrence(s.recur.Index()),
		})
		return err
	})
}

// NewEditTask builds the edit form for e, including moving the task
// to another list.
func NewEditTask(env *Env, e tasks.Entry) runtime.Screen {
	s := newTaskForm(env, "Edit Task", true, func(s *taskForm) error {
		updated := *e.Task
		updated.Title = s.title.Text()
		updated.Note = s.note.Text()
		updated.Tags = s.tags()
		updated.Priority = s.priority()
		updated.Due = s.dueDate()
		updated.Recurrence = tasks.Recurrence(s.recur.Index())
		if err := env.Manager.UpdateTask(e.List.ID, updated); err != nil {
			return err
		}
		*e.Task = updated
		if s.moveTo != nil {
			target := s.listIDs[s.moveTo.Index()]
			if err := env.Manager.MoveTask(e.Task.ID, e.List.ID, target); err != nil {
				return err
			}
		}
		return nil
	})
	s.fill(e.Task)
	if s.moveTo != nil {
		for i, id := range s.listIDs {
			if id == e.List.ID {
				s.moveTo.SetIndex(i)
			}
		}
	}
	return s
}
