package habit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() (func() time.Time, *time.Time) {
	t := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return t }, &t
}

func TestNew_Defaults(t *testing.T) {
	now, _ := fixedClock()
	tr := New(0, now)
	assert.Equal(t, DefaultGoal, tr.Goal)
	assert.Zero(t, tr.Count)
	assert.Zero(t, tr.Streak)
	assert.Equal(t, now(), tr.LastUpdated)
}

func TestIncrementDecrement(t *testing.T) {
	now, clock := fixedClock()
	tr := New(10, now)

	tr.Increment()
	tr.Increment()
	assert.Equal(t, 2, tr.Count)
	assert.Equal(t, 2, tr.Streak)

	*clock = clock.Add(time.Hour)
	require.True(t, tr.Decrement())
	assert.Equal(t, 1, tr.Count)
	assert.Equal(t, 2, tr.Streak, "decrement keeps the streak")
	assert.Equal(t, *clock, tr.LastUpdated)

	require.True(t, tr.Decrement())
	assert.False(t, tr.Decrement(), "count never goes below zero")
	assert.Zero(t, tr.Count)
}

func TestReset(t *testing.T) {
	tr := New(10, nil)
	tr.Increment()
	tr.Increment()
	tr.Reset()
	assert.Zero(t, tr.Count)
	assert.Zero(t, tr.Streak)
	assert.Equal(t, 10, tr.Goal, "reset keeps the goal")
}

func TestSetGoal(t *testing.T) {
	tr := New(10, nil)
	require.NoError(t, tr.SetGoal(3))
	assert.Equal(t, 3, tr.Goal)

	assert.ErrorIs(t, tr.SetGoal(0), ErrInvalidGoal)
	assert.ErrorIs(t, tr.SetGoal(-5), ErrInvalidGoal)
	assert.Equal(t, 3, tr.Goal)
}

func TestProgress(t *testing.T) {
	tr := New(4, nil)
	assert.Equal(t, 0.0, tr.Progress())

	tr.Increment()
	assert.InDelta(t, 25.0, tr.Progress(), 1e-9)

	for i := 0; i < 10; i++ {
		tr.Increment()
	}
	assert.Equal(t, 100.0, tr.Progress(), "progress is capped")
	assert.True(t, tr.Done())
}
