package logbook

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempo/internal/domain"
)

func TestDailyLogStore(t *testing.T) {
	store := NewDailyLogStore(filepath.Join(t.TempDir(), "daily_logs.json"))

	// Empty store: no logs, no error.
	logs, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, logs)

	got, err := store.Get("2026-03-04")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Upsert(domain.NewDailyLog("2026-03-04", 1.5)))
	require.NoError(t, store.Upsert(domain.NewDailyLog("2026-03-05", 0.5)))

	got, err = store.Get("2026-03-04")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1.5, got.TotalHours())

	// Upserting the same date replaces the log.
	require.NoError(t, store.Upsert(domain.NewDailyLog("2026-03-04", 2.0)))

	logs, err = store.List()
	require.NoError(t, err)
	assert.Len(t, logs, 2)

	got, err = store.Get("2026-03-04")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.TotalHours())
}

func TestStatsStore(t *testing.T) {
	store := NewStatsStore(filepath.Join(t.TempDir(), "stats"))

	// A month with no file reads as an empty record.
	stats, err := store.Get(2026, time.March)
	require.NoError(t, err)
	assert.Equal(t, 2026, stats.Year)
	assert.Equal(t, time.March, stats.Month)
	assert.Empty(t, stats.Days)

	stats.Add("2026-03-04", 2.0, 1.5, 0.5)
	require.NoError(t, store.Save(stats))

	got, err := store.Get(2026, time.March)
	require.NoError(t, err)
	assert.Equal(t, domain.DailyStats{Est: 2.0, Act: 1.5, Mtg: 0.5}, got.Days["2026-03-04"])

	other := domain.NewMonthlyStats(2026, time.February)
	other.Add("2026-02-10", 1.0, 1.0, 0)
	require.NoError(t, store.Save(other))

	all, err := store.List()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStatsStore_ListMissingDir(t *testing.T) {
	store := NewStatsStore(filepath.Join(t.TempDir(), "does-not-exist"))

	all, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestArchiveStore_Append(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "archive")
	store := NewArchiveStore(dir)

	now := time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC)
	task, err := domain.NewTask(uuid.New(), "old task", now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.NoError(t, task.Complete(now))

	require.NoError(t, store.Append(2026, time.January, []*domain.Task{task}))

	// Appending again extends the same month's file.
	second, err := domain.NewTask(uuid.New(), "another", now)
	require.NoError(t, err)
	require.NoError(t, second.Complete(now))
	require.NoError(t, store.Append(2026, time.January, []*domain.Task{second}))

	path := filepath.Join(dir, "archive_2026_01.json")
	assert.FileExists(t, path)
}
