// Package tasks implements the to-do domain: lists of tasks with
// priorities, due dates, tags and recurrence, plus filtering, search
// and JSON persistence.
package tasks

import (
	"fmt"
	"strings"
	"time"
)

// Priority orders tasks by importance.
type Priority int

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

// String returns the display name.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "None"
	}
}

// Recurrence makes a task respawn when completed.
type Recurrence int

const (
	RecurNone Recurrence = iota
	RecurDaily
	RecurWeekly
	RecurMonthly
	RecurYearly
)

// String returns the display name.
func (r Recurrence) String() string {
	switch r {
	case RecurDaily:
		return "Daily"
	case RecurWeekly:
		return "Weekly"
	case RecurMonthly:
		return "Monthly"
	case RecurYearly:
		return "Yearly"
	default:
		return "None"
	}
}

// Date is a calendar day without a time of day. It marshals as
// "YYYY-MM-DD".
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate builds a Date.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d precedes o.
func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

// After reports whether d follows o.
func (d Date) After(o Date) bool {
	return d.Time().After(o.Time())
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Display formats the date as DD/MM/YYYY for the UI.
func (d Date) Display() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	*d = DateOf(t)
	return nil
}

func daysIn(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// next returns the following occurrence for a recurrence rule. Months
// keep the day-of-month clamped to the target month's length; yearly
// recurrence lands Feb 29 on Feb 28 in common years.
func (d Date) next(r Recurrence) Date {
	switch r {
	case RecurDaily:
		return DateOf(d.Time().AddDate(0, 0, 1))
	case RecurWeekly:
		return DateOf(d.Time().AddDate(0, 0, 7))
	case RecurMonthly:
		month, year := d.Month+1, d.Year
		if month > 12 {
			month, year = 1, year+1
		}
		return Date{Year: year, Month: month, Day: min(d.Day, daysIn(month, year))}
	case RecurYearly:
		return Date{Year: d.Year + 1, Month: d.Month, Day: min(d.Day, daysIn(d.Month, d.Year+1))}
	default:
		return d
	}
}

// Task is one to-do item.
type Task struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	Note       string     `json:"note,omitempty"`
	Due        *Date      `json:"due,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	Priority   Priority   `json:"priority,omitempty"`
	Recurrence Recurrence `json:"recurrence,omitempty"`
	Done       bool       `json:"done,omitempty"`
}

// HasTag reports whether the task carries the tag, case-insensitive.
func (t *Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if strings.EqualFold(have, tag) {
			return true
		}
	}
	return false
}

// List is a named collection of tasks.
type List struct {
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Tasks []*Task `json:"tasks"`
}

// Task returns the task with the given ID, or nil.
func (l *List) Task(id int) *Task {
	for _, t := range l.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
