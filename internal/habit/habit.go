// Package habit tracks a daily counter toward a goal.
package habit

import (
	"errors"
	"time"
)

// DefaultGoal is the goal of a fresh tracker.
const DefaultGoal = 100

// ErrInvalidGoal is returned by SetGoal for goals below 1.
var ErrInvalidGoal = errors.New("habit: goal must be at least 1")

// Tracker holds the counter state.
type Tracker struct {
	Count       int
	Goal        int
	Streak      int
	LastUpdated time.Time

	now func() time.Time
}

// New returns a tracker with the given goal; goals below 1 use DefaultGoal.
// now may be nil to use time.Now.
func New(goal int, now func() time.Time) *Tracker {
	if goal < 1 {
		goal = DefaultGoal
	}
	if now == nil {
		now = time.Now
	}
	return &Tracker{Goal: goal, LastUpdated: now(), now: now}
}

// Increment bumps the count and the streak.
func (t *Tracker) Increment() {
	t.Count++
	t.Streak++
	t.touch()
}

// Decrement lowers the count, never below zero. The streak is unchanged.
// Returns false when the count was already zero.
func (t *Tracker) Decrement() bool {
	if t.Count == 0 {
		return false
	}
	t.Count--
	t.touch()
	return true
}

// Reset zeroes the count and the streak.
func (t *Tracker) Reset() {
	t.Count = 0
	t.Streak = 0
	t.touch()
}

// SetGoal replaces the goal.
func (t *Tracker) SetGoal(goal int) error {
	if goal < 1 {
		return ErrInvalidGoal
	}
	t.Goal = goal
	return nil
}

// Progress returns the count as a percentage of the goal, capped at 100.
func (t *Tracker) Progress() float64 {
	return min(float64(t.Count)/float64(t.Goal)*100, 100)
}

// Done reports whether the goal has been reached.
func (t *Tracker) Done() bool {
	return t.Count >= t.Goal
}

func (t *Tracker) touch() {
	if t.now == nil {
		t.now = time.Now
	}
	t.LastUpdated = t.now()
}
