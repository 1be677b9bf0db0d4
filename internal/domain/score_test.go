package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortStrategy(t *testing.T) {
	for _, s := range []string{"urgency", "priority", "due"} {
		got, err := ParseSortStrategy(s)
		require.NoError(t, err)
		assert.Equal(t, SortStrategy(s), got)
	}

	_, err := ParseSortStrategy("alphabetical")
	require.ErrorIs(t, err, ErrInvalidStrategy)
}

func TestTask_Score_Urgency(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	t.Run("completed sinks", func(t *testing.T) {
		task := newTestTask(t, now)
		require.NoError(t, task.Complete(now))
		assert.Equal(t, -100.0, task.Score(SortUrgency, now))
	})

	t.Run("overdue beats distant due", func(t *testing.T) {
		overdue := newTestTask(t, now)
		past := now.Add(-24 * time.Hour)
		require.NoError(t, overdue.SetDue(&past))

		distant := newTestTask(t, now)
		future := now.Add(30 * 24 * time.Hour)
		require.NoError(t, distant.SetDue(&future))

		assert.Greater(t, overdue.Score(SortUrgency, now), distant.Score(SortUrgency, now))
	})

	t.Run("high priority beats low", func(t *testing.T) {
		high := newTestTask(t, now)
		require.NoError(t, high.SetPriority(PriorityHigh))

		low := newTestTask(t, now)
		require.NoError(t, low.SetPriority(PriorityLow))

		assert.Greater(t, high.Score(SortUrgency, now), low.Score(SortUrgency, now))
	})

	t.Run("quick win beats big estimate", func(t *testing.T) {
		quick := newTestTask(t, now)
		require.NoError(t, quick.SetEstimate("20m"))

		big := newTestTask(t, now)
		require.NoError(t, big.SetEstimate("1d"))

		assert.Greater(t, quick.Score(SortUrgency, now), big.Score(SortUrgency, now))
	})

	t.Run("older tasks creep up", func(t *testing.T) {
		old := newTestTask(t, now.Add(-50*24*time.Hour))
		fresh := newTestTask(t, now)

		assert.Greater(t, old.Score(SortUrgency, now), fresh.Score(SortUrgency, now))
	})
}

func TestTask_Score_Priority(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	task := newTestTask(t, now)
	require.NoError(t, task.SetPriority(PriorityHigh))
	assert.Equal(t, 3.0, task.Score(SortPriority, now))

	require.NoError(t, task.SetPriority(PriorityMedium))
	assert.Equal(t, 2.0, task.Score(SortPriority, now))

	require.NoError(t, task.SetPriority(PriorityLow))
	assert.Equal(t, 1.0, task.Score(SortPriority, now))
}

func TestSortTasks(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	mk := func(name string, fn func(*Task)) *Task {
		task, err := NewTask(uuid.New(), name, now)
		require.NoError(t, err)
		if fn != nil {
			fn(task)
		}
		return task
	}

	soon := now.Add(24 * time.Hour)
	later := now.Add(60 * 24 * time.Hour)

	dueSoon := mk("due soon", func(t *Task) { t.Due = &soon })
	dueLater := mk("due later", func(t *Task) { t.Due = &later })
	noDue := mk("no due", nil)
	done := mk("done", func(t *Task) { _ = t.Complete(now) })

	t.Run("urgency", func(t *testing.T) {
		tasks := []*Task{done, noDue, dueLater, dueSoon}
		SortTasks(tasks, SortUrgency, now)
		assert.Equal(t, "due soon", tasks[0].Name)
		assert.Equal(t, "done", tasks[3].Name)
	})

	t.Run("due date", func(t *testing.T) {
		tasks := []*Task{noDue, dueLater, dueSoon}
		SortTasks(tasks, SortDueDate, now)
		assert.Equal(t, "due soon", tasks[0].Name)
		assert.Equal(t, "due later", tasks[1].Name)
		assert.Equal(t, "no due", tasks[2].Name)
	})

	t.Run("stable for equal scores", func(t *testing.T) {
		a := mk("a", nil)
		b := mk("b", nil)
		tasks := []*Task{a, b}
		SortTasks(tasks, SortUrgency, now)
		assert.Equal(t, "a", tasks[0].Name)
		assert.Equal(t, "b", tasks[1].Name)
	})
}
