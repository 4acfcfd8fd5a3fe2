package tasks

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Guard refusals callers are expected to branch on.
var (
	ErrDuplicateTitle = errors.New("a list with that title already exists")
	ErrLastList       = errors.New("cannot remove the last list")
	ErrListNotFound   = errors.New("list not found")
	ErrTaskNotFound   = errors.New("task not found")
	ErrEmptyTitle     = errors.New("title cannot be empty")
)

// Manager owns the lists and enforces the domain rules. It is not
// safe for concurrent use; the UI runs on one goroutine.
type Manager struct {
	path string
	log  *slog.Logger
	now  func() time.Time

	lists      []*List
	nextListID int
	nextTaskID int
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger routes the manager's logging to l.
func WithLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) { m.log = l }
}

// WithNow overrides the clock, used by the time filters.
func WithNow(now func() time.Time) ManagerOption {
	return func(m *Manager) { m.now = now }
}

// NewManager creates a manager persisting to path. Call Load before
// use.
func NewManager(path string, opts ...ManagerOption) *Manager {
	m := &Manager{
		path:       path,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        time.Now,
		nextListID: 1,
		nextTaskID: 1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Lists returns the lists in creation order.
func (m *Manager) Lists() []*List {
	return m.lists
}

// List returns the list with the given ID.
func (m *Manager) List(id int) (*List, error) {
	for _, l := range m.lists {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrListNotFound, id)
}

func (m *Manager) titleTaken(title string, exceptID int) bool {
	for _, l := range m.lists {
		if l.ID != exceptID && strings.EqualFold(l.Title, title) {
			return true
		}
	}
	return false
}

// CreateList adds a list. Titles are unique case-insensitively.
func (m *Manager) CreateList(title string) (*List, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if m.titleTaken(title, 0) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateTitle, title)
	}
	l := &List{ID: m.nextListID, Title: title}
	m.nextListID++
	m.lists = append(m.lists, l)
	m.log.Debug("list created", "id", l.ID, "title", l.Title)
	return l, nil
}

// RenameList retitles a list under the same uniqueness rule.
func (m *Manager) RenameList(id int, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	l, err := m.List(id)
	if err != nil {
		return err
	}
	if m.titleTaken(title, id) {
		return fmt.Errorf("%w: %q", ErrDuplicateTitle, title)
	}
	l.Title = title
	return nil
}

// RemoveList deletes a list and its tasks. The last list cannot be
// removed so the application always has somewhere to put tasks.
func (m *Manager) RemoveList(id int) error {
	if len(m.lists) <= 1 {
		return ErrLastList
	}
	for i, l := range m.lists {
		if l.ID == id {
			m.lists = append(m.lists[:i], m.lists[i+1:]...)
			m.log.Debug("list removed", "id", id)
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", ErrListNotFound, id)
}

// CreateTask adds a task to a list and assigns its ID.
func (m *Manager) CreateTask(listID int, t Task) (*Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return nil, ErrEmptyTitle
	}
	l, err := m.List(listID)
	if err != nil {
		return nil, err
	}
	t.ID = m.nextTaskID
	m.nextTaskID++
	created := t
	l.Tasks = append(l.Tasks, &created)
	m.log.Debug("task created", "id", created.ID, "list", listID)
	return &created, nil
}

// UpdateTask replaces the stored task that has t.ID.
func (m *Manager) UpdateTask(listID int, t Task) error {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return ErrEmptyTitle
	}
	l, err := m.List(listID)
	if err != nil {
		return err
	}
	for i, have := range l.Tasks {
		if have.ID == t.ID {
			updated := t
			l.Tasks[i] = &updated
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", ErrTaskNotFound, t.ID)
}

// MoveTask transfers a task to another list.
func (m *Manager) MoveTask(taskID, fromListID, toListID int) error {
	if fromListID == toListID {
		return nil
	}
	from, err := m.List(fromListID)
	if err != nil {
		return err
	}
	to, err := m.List(toListID)
	if err != nil {
		return err
	}
	for i, t := range from.Tasks {
		if t.ID == taskID {
			from.Tasks = append(from.Tasks[:i], from.Tasks[i+1:]...)
			to.Tasks = append(to.Tasks, t)
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", ErrTaskNotFound, taskID)
}

// RemoveTask deletes a task.
func (m *Manager) RemoveTask(listID, taskID int) error {
	l, err := m.List(listID)
	if err != nil {
		return err
	}
	for i, t := range l.Tasks {
		if t.ID == taskID {
			l.Tasks = append(l.Tasks[:i], l.Tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", ErrTaskNotFound, taskID)
}

// RemoveCompleted deletes every done task from a list and returns how
// many were removed.
func (m *Manager) RemoveCompleted(listID int) (int, error) {
	l, err := m.List(listID)
	if err != nil {
		return 0, err
	}
	kept := l.Tasks[:0]
	removed := 0
	for _, t := range l.Tasks {
		if t.Done {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	l.Tasks = kept
	return removed, nil
}

// ToggleDone flips a task's completion. Completing a recurring dated
// task spawns the next occurrence as a fresh open task and strips the
// recurrence from the completed one, so the history keeps plain done
// entries while the series moves forward.
func (m *Manager) ToggleDone(listID, taskID int) (*Task, error) {
	l, err := m.List(listID)
	if err != nil {
		return nil, err
	}
	t := l.Task(taskID)
	if t == nil {
		return nil, fmt.Errorf("%w: id %d", ErrTaskNotFound, taskID)
	}
	t.Done = !t.Done
	if t.Done && t.Recurrence != RecurNone && t.Due != nil {
		next := *t
		next.ID = m.nextTaskID
		m.nextTaskID++
		next.Done = false
		due := t.Due.next(t.Recurrence)
		next.Due = &due
		next.Tags = append([]string(nil), t.Tags...)
		l.Tasks = append(l.Tasks, &next)
		t.Recurrence = RecurNone
		m.log.Debug("recurrence spawned", "from", t.ID, "to", next.ID, "due", due.String())
	}
	return t, nil
}

// Entry pairs a task with its owning list, as returned by Search and
// View.
type Entry struct {
	Task *Task
	List *List
}

// Search matches term against title, note, and tags of every task,
// case-insensitive.
func (m *Manager) Search(term string) []Entry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	var out []Entry
	for _, l := range m.lists {
		for _, t := range l.Tasks {
			if m.matches(t, term) {
				out = append(out, Entry{Task: t, List: l})
			}
		}
	}
	return out
}

func (m *Manager) matches(t *Task, term string) bool {
	if strings.Contains(strings.ToLower(t.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Note), term) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
