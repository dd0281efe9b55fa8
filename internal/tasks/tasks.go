// Package tasks holds an in-memory task list with priorities, categories
// and completion filters.
package tasks

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmptyTitle is returned by Add when the title is blank.
	ErrEmptyTitle = errors.New("tasks: title is empty")
	// ErrNotFound is returned when no task has the given ID.
	ErrNotFound = errors.New("tasks: not found")
)

// Priority ranks a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority in display order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Category groups tasks.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryLearning Category = "learning"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryWork, CategoryPersonal, CategoryHealth, CategoryLearning}

// Filter selects tasks by completion.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// Match reports whether t passes the filter.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// ParsePriority accepts a priority name, case-insensitively.
func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("tasks: unknown priority %q", s)
}

// ParseCategory accepts a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("tasks: unknown category %q", s)
}

// Next returns the element after cur in all, wrapping around.
func Next[E comparable](all []E, cur E) E {
	for i, v := range all {
		if v == cur {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// Task is one entry of the list.
type Task struct {
	ID        string
	Title     string
	Completed bool
	Priority  Priority
	Category  Category
	CreatedAt time.Time
}

// Store is an ordered, in-memory task list.
type Store struct {
	tasks []Task
	now   func() time.Time
	newID func() string
}

// NewStore returns a store seeded with a copy of seed. now may be nil.
func NewStore(seed []Task, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	s := &Store{now: now, newID: uuid.NewString}
	for _, t := range seed {
		if t.ID == "" {
			t.ID = s.newID()
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now()
		}
		s.tasks = append(s.tasks, t)
	}
	return s
}

// Add appends a new active task. The title is trimmed.
func (s *Store) Add(title string, p Priority, c Category) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}
	t := Task{
		ID:        s.newID(),
		Title:     title,
		Priority:  p,
		Category:  c,
		CreatedAt: s.now(),
	}
	s.tasks = append(s.tasks, t)
	return t, nil
}

// Toggle flips the completion of the task with id.
func (s *Store) Toggle(id string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("toggle %s: %w", id, ErrNotFound)
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return nil
}

// Delete removes the task with id.
func (s *Store) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	return nil
}

// All returns a copy of every task in insertion order.
func (s *Store) All() []Task {
	return append([]Task(nil), s.tasks...)
}

// Filtered returns the tasks that pass f, in insertion order.
func (s *Store) Filtered(f Filter) []Task {
	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the total number of tasks.
func (s *Store) Len() int { return len(s.tasks) }

// CompletedCount returns the number of completed tasks.
func (s *Store) CompletedCount() int {
	n := 0
	for _, t := range s.tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// Progress returns the completed share as a percentage; 0 when empty.
func (s *Store) Progress() float64 {
	if len(s.tasks) == 0 {
		return 0
	}
	return float64(s.CompletedCount()) / float64(len(s.tasks)) * 100
}

func (s *Store) index(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
