package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempo/internal/domain"
)

func TestQuickAddInput(t *testing.T) {
	// A Wednesday.
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	t.Run("name only", func(t *testing.T) {
		in, err := QuickAddInput([]string{"buy", "milk"}, now)
		require.NoError(t, err)
		assert.Equal(t, "buy milk", in.Name)
		assert.Nil(t, in.Due)
		assert.Empty(t, in.Project)
	})

	t.Run("full metadata with abbreviated keys", func(t *testing.T) {
		in, err := QuickAddInput([]string{"write", "report", "due:fri", "pro:Work", "pri:h", "est:2h", "desc:notes"}, now)
		require.NoError(t, err)
		assert.Equal(t, "write report", in.Name)
		assert.Equal(t, "Work", in.Project)
		assert.Equal(t, domain.PriorityHigh, in.Priority)
		assert.Equal(t, "2h", in.Estimate)
		assert.Equal(t, "notes", in.Description)
		require.NotNil(t, in.Due)
		assert.Equal(t, time.Date(2026, 3, 6, 23, 59, 59, 0, time.UTC), *in.Due)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := QuickAddInput([]string{"due:fri"}, now)
		require.ErrorIs(t, err, domain.ErrEmptyName)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := QuickAddInput([]string{"task", "color:red"}, now)
		require.ErrorIs(t, err, domain.ErrUnknownKey)
	})

	t.Run("ambiguous key", func(t *testing.T) {
		_, err := QuickAddInput([]string{"task", "p:Work"}, now)
		require.ErrorIs(t, err, domain.ErrAmbiguousKey)
	})

	t.Run("bad due date", func(t *testing.T) {
		_, err := QuickAddInput([]string{"task", "due:whenever"}, now)
		require.ErrorIs(t, err, domain.ErrInvalidDate)
	})

	t.Run("bad estimate", func(t *testing.T) {
		_, err := QuickAddInput([]string{"task", "est:lots"}, now)
		require.ErrorIs(t, err, domain.ErrInvalidDuration)
	})
}
