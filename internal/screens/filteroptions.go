package screens

import (
	"github.com/rfarias/tuido/internal/tasks"
	"github.com/rfarias/tuido/pkg/ui/runtime"
)

// FilterOptions picks the time filter, status filter, and ordering
// before opening the task view. It carries the list or tag context it
// was opened with.
type FilterOptions struct {
	runtime.BaseScreen
	env    *Env
	listID int
	tag    string
}

// NewFilterOptions builds the filter screen. listID zero means all
// lists; tag restricts to one tag.
func NewFilterOptions(env *Env, listID int, tag string) *FilterOptions {
	s := &FilterOptions{env: env, listID: listID, tag: tag}
	s.ArrowTraversal = env.ArrowTraversal

	caption := "View Tasks"
	if tag != "" {
		caption = "View Tasks · #" + tag
	}
	frame := newFrame(env.Theme, caption)
	frame.SetBounds(runtime.Rect{X: 10, Y: 4, Width: 60, Height: 16})

	timeSel := newSelector(env.Theme,
		tasks.TimeAll.String(), tasks.TimeToday.String(), tasks.TimeSevenDays.String())
	statusSel := newSelector(env.Theme,
		tasks.StatusAll.String(), tasks.StatusOpen.String(), tasks.StatusDone.String())
	orderSel := newSelector(env.Theme, tasks.ByDate.String(), tasks.ByPriority.String())

	rows := []struct {
		label string
		sel   runtime.Widget
	}{
		{"Show:", timeSel},
		{"Status:", statusSel},
		{"Order by:", orderSel},
	}
	for i, row := range rows {
		l := newLabel(env.Theme, row.label)
		l.SetBounds(runtime.Rect{X: 13, Y: 6 + i*2, Width: 10, Height: 1})
		row.sel.SetBounds(runtime.Rect{X: 24, Y: 6 + i*2, Width: 30, Height: 1})
		s.AddWidget(l)
	}

	ok := env.styledButton("View", func() {
		q := tasks.ViewQuery{
			Time:   tasks.TimeFilter(timeSel.Index()),
			Status: tasks.StatusFilter(statusSel.Index()),
			Order:  tasks.Order(orderSel.Index()),
			ListID: s.listID,
			Tag:    s.tag,
		}
		env.App.Replace(NewTaskView(env, q))
	})
	cancel := env.styledButton("Cancel", func() { env.App.RequestPop() })
	buttonColumn(13, 13, ok)
	buttonColumn(13+buttonWidth+2, 13, cancel)

	s.AddWidget(frame)
	s.AddWidget(timeSel)
	s.AddWidget(statusSel)
	s.AddWidget(orderSel)
	s.AddWidget(ok)
	s.AddWidget(cancel)
	return s
}
