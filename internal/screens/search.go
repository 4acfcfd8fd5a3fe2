package screens

import (
	"fmt"

	"github.com/rfarias/tuido/internal/tasks"
	"github.com/rfarias/tuido/pkg/ui/runtime"
	"github.com/rfarias/tuido/pkg/ui/terminal"
	"github.com/rfarias/tuido/pkg/ui/widgets"
)

// SearchInput asks for a term and opens the results.
type SearchInput struct {
	runtime.BaseScreen
	env  *Env
	term *widgets.TextInput
}

// NewSearchInput builds the search prompt.
func NewSearchInput(env *Env) *SearchInput {
	s := &SearchInput{env: env}
	s.ArrowTraversal = env.ArrowTraversal

	frame := newFrame(env.Theme, "Search")
	frame.SetBounds(runtime.Rect{X: 10, Y: 6, Width: 60, Height: 11})

	label := newLabel(env.Theme, "Find:")
	label.SetBounds(runtime.Rect{X: 13, Y: 8, Width: 6, Height: 1})

	s.term = newTextInput(env.Theme, "title, note or tag")
	s.term.SetBounds(runtime.Rect{X: 20, Y: 8, Width: 47, Height: 1})

	go_ := env.styledButton("Search", s.search)
	cancel := env.styledButton("Cancel", func() { env.App.RequestPop() })
	buttonColumn(13, 11, go_)
	buttonColumn(13+buttonWidth+2, 11, cancel)

	s.SetWidgets([]runtime.Widget{frame, label, s.term, go_, cancel})
	return s
}

func (s *SearchInput) search() {
	term := s.term.Text()
	if term == "" {
		return
	}
	s.env.App.Replace(NewSearchResults(s.env, term))
}

// HandleKey submits on Enter while the input has focus.
func (s *SearchInput) HandleKey(ev terminal.KeyEvent) runtime.Outcome {
	if s.Focus().Current() == s.term && ev.Key == terminal.KeyEnter {
		s.search()
		return runtime.Activated
	}
	return s.BaseScreen.HandleKey(ev)
}

// SearchResults lists every task matching the term across all lists.
type SearchResults struct {
	runtime.BaseScreen
	env     *Env
	term    string
	list    *widgets.VerticalList
	entries []tasks.Entry
	count   *widgets.Label
}

// NewSearchResults builds the result list for term.
func NewSearchResults(env *Env, term string) *SearchResults {
	s := &SearchResults{env: env, term: term}
	s.ArrowTraversal = env.ArrowTraversal

	frame := newFrame(env.Theme, fmt.Sprintf("Results · %q", term))
	frame.SetBounds(runtime.Rect{X: 0, Y: 0, Width: screenWidth, Height: screenHeight})

	s.list = newVerticalList(env.Theme)
	s.list.SetBounds(runtime.Rect{X: 2, Y: 2, Width: 50, Height: 18})

	s.count = newLabel(env.Theme, "")
	s.count.Style = env.Theme.Placeholder
	s.count.SetBounds(runtime.Rect{X: 2, Y: screenHeight - 3, Width: 40, Height: 1})

	details := env.styledButton("Details", s.showDetails)
	back := env.styledButton("Back", func() { env.App.RequestPop() })
	buttonColumn(55, 2, details, back)

	s.SetWidgets([]runtime.Widget{frame, s.list, s.count, details, back})
	s.Refresh()
	return s
}

// Refresh re-runs the search.
func (s *SearchResults) Refresh() {
	cursor := s.list.Cursor()
	s.entries = s.env.Manager.Search(s.term)
	s.list.Clear()
	for _, e := range s.entries {
		row := newLabel(s.env.Theme, fmt.Sprintf("%s  (%s)", e.Task.Title, e.List.Title))
		if e.Task.Done {
			row.Style = s.env.Theme.Done
		}
		s.list.Append(row)
	}
	if cursor >= 0 {
		s.list.SetCursor(cursor)
	}
	s.count.Text = fmt.Sprintf("%d match(es)", len(s.entries))
}

func (s *SearchResults) showDetails() {
	i := s.list.Cursor()
	if i < 0 || i >= len(s.entries) {
		return
	}
	s.env.App.Push(NewTaskDetail(s.env, s.entries[i]))
}

// HandleKey opens details on Enter while the list has focus.
func (s *SearchResults) HandleKey(ev terminal.KeyEvent) runtime.Outcome {
	if out := s.BaseScreen.HandleKey(ev); out != runtime.Ignored {
		return out
	}
	if s.Focus().Current() == s.list && ev.Key == terminal.KeyEnter {
		s.showDetails()
		return runtime.Activated
	}
	return runtime.Ignored
}

// TagInput asks for a tag and opens the filter screen scoped to it.
type TagInput struct {
	runtime.BaseScreen
	env *Env
	tag *widgets.TextInput
}

// NewTagInput builds the tag prompt.
func NewTagInput(env *Env) *TagInput {
	s := &TagInput{env: env}
	s.ArrowTraversal = env.ArrowTraversal

	frame := newFrame(env.Theme, "View by Tag")
	frame.SetBounds(runtime.Rect{X: 10, Y: 6, Width: 60, Height: 11})

	label := newLabel(env.Theme, "Tag:")
	label.SetBounds(runtime.Rect{X: 13, Y: 8, Width: 5, Height: 1})

	s.tag = newTextInput(env.Theme, "tag name")
	s.tag.SetBounds(runtime.Rect{X: 19, Y: 8, Width: 48, Height: 1})

	view := env.styledButton("View", s.open)
	cancel := env.styledButton("Cancel", func() { env.App.RequestPop() })
	buttonColumn(13, 11, view)
	buttonColumn(13+buttonWidth+2, 11, cancel)

	s.SetWidgets([]runtime.Widget{frame, label, s.tag, view, cancel})
	return s
}

func (s *TagInput) open() {
	tag := s.tag.Text()
	if tag == "" {
		return
	}
	s.env.App.Replace(NewFilterOptions(s.env, 0, tag))
}

// HandleKey submits on Enter while the input has focus.
func (s *TagInput) HandleKey(ev terminal.KeyEvent) runtime.Outcome {
	if s.Focus().Current() == s.tag && ev.Key == terminal.KeyEnter {
		s.open()
		return runtime.Activated
	}
	return s.BaseScreen.HandleKey(ev)
}
