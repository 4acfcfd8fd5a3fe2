package tasks

import "sort"

// TimeFilter narrows a view by due date.
type TimeFilter int

const (
	TimeAll TimeFilter = iota
	TimeToday
	TimeSevenDays
)

// String returns the display name.
func (f TimeFilter) String() string {
	switch f {
	case TimeToday:
		return "Today"
	case TimeSevenDays:
		return "Next 7 days"
	default:
		return "All"
	}
}

// StatusFilter narrows a view by completion.
type StatusFilter int

const (
	StatusAll StatusFilter = iota
	StatusOpen
	StatusDone
)

// String returns the display name.
func (f StatusFilter) String() string {
	switch f {
	case StatusOpen:
		return "Open"
	case StatusDone:
		return "Done"
	default:
		return "All"
	}
}

// Order picks the sort key of a view.
type Order int

const (
	ByDate Order = iota
	ByPriority
)

// String returns the display name.
func (o Order) String() string {
	if o == ByPriority {
		return "Priority"
	}
	return "Date"
}

// ViewQuery selects and orders tasks across lists.
type ViewQuery struct {
	Time   TimeFilter
	Status StatusFilter
	Order  Order

	// ListID restricts the view to one list; zero means all lists.
	ListID int

	// Tag restricts the view to tasks carrying the tag.
	Tag string
}

// View returns the tasks matching q, sorted. Date order puts undated
// tasks last; priority order puts the most important first. Ties
// fall back to creation order.
func (m *Manager) View(q ViewQuery) []Entry {
	var out []Entry
	for _, l := range m.lists {
		if q.ListID != 0 && l.ID != q.ListID {
			continue
		}
		for _, t := range l.Tasks {
			if m.accepts(t, q) {
				out = append(out, Entry{Task: t, List: l})
			}
		}
	}
	m.order(out, q.Order)
	return out
}

func (m *Manager) accepts(t *Task, q ViewQuery) bool {
	switch q.Status {
	case StatusOpen:
		if t.Done {
			return false
		}
	case StatusDone:
		if !t.Done {
			return false
		}
	}
	if q.Tag != "" && !t.HasTag(q.Tag) {
		return false
	}
	switch q.Time {
	case TimeToday:
		if t.Due == nil || *t.Due != DateOf(m.now()) {
			return false
		}
	case TimeSevenDays:
		if t.Due == nil {
			return false
		}
		today := DateOf(m.now())
		limit := DateOf(m.now().AddDate(0, 0, 7))
		if t.Due.Before(today) || t.Due.After(limit) {
			return false
		}
	}
	return true
}

func (m *Manager) order(entries []Entry, o Order) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Task, entries[j].Task
		switch o {
		case ByPriority:
			if a.Priority != b.Priority {
				return a.Priority > b.Priority
			}
		default:
			switch {
			case a.Due == nil && b.Due == nil:
			case a.Due == nil:
				return false
			case b.Due == nil:
				return true
			case *a.Due != *b.Due:
				return a.Due.Before(*b.Due)
			}
		}
		return a.ID < b.ID
	})
}
