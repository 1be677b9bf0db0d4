package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempo/internal/domain"
	"tempo/internal/testutil"
)

func newArchiveFixture(t *testing.T) (*ArchiveService, *testutil.MockTaskRepository, *testutil.MockStatsStore, *testutil.MockArchiveStore, *testutil.MockDailyLogStore, *testutil.MockClock) {
	t.Helper()
	repo := testutil.NewMockTaskRepository()
	stats := testutil.NewMockStatsStore()
	archive := testutil.NewMockArchiveStore()
	logs := testutil.NewMockDailyLogStore()
	clock := &testutil.MockClock{NowTime: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)}
	svc := NewArchiveService(repo, stats, archive, logs, clock, &testutil.MockLogger{})
	return svc, repo, stats, archive, logs, clock
}

func completedTask(t *testing.T, name, estimate string, tracked time.Duration, completedAt time.Time) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(uuid.New(), name, completedAt.Add(-24*time.Hour))
	require.NoError(t, err)
	task.Estimate = estimate
	task.Tracker.Accumulated = tracked
	require.NoError(t, task.Complete(completedAt))
	return task
}

func TestArchiveService_Archive(t *testing.T) {
	svc, repo, stats, archive, logs, clock := newArchiveFixture(t)

	old := completedTask(t, "old", "2h", 90*time.Minute, time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC))
	recent := completedTask(t, "recent", "", time.Hour, clock.NowTime.Add(-24*time.Hour))
	pending, err := domain.NewTask(uuid.New(), "pending", clock.NowTime)
	require.NoError(t, err)

	require.NoError(t, repo.Save(old))
	require.NoError(t, repo.Save(recent))
	require.NoError(t, repo.Save(pending))

	date := domain.DateKey(old.CompletedAt.Local())
	require.NoError(t, logs.Upsert(domain.DailyLog{
		Date:     date,
		Meetings: []domain.Meeting{{Name: "all", Hours: 1.5}},
	}))

	count, err := svc.Archive(30)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Only the old completed task left the live store.
	assert.Len(t, repo.Tasks, 2)
	assert.NotContains(t, repo.Tasks, old.ID)

	localCompleted := old.CompletedAt.Local()
	monthly, err := stats.Get(localCompleted.Year(), localCompleted.Month())
	require.NoError(t, err)
	day := monthly.Days[date]
	assert.Equal(t, 2.0, day.Est)
	assert.Equal(t, 1.5, day.Act)
	assert.Equal(t, 1.5, day.Mtg)

	archived := archive.Archived[localCompleted.Format("2006-01")]
	require.Len(t, archived, 1)
	assert.Equal(t, "old", archived[0].Name)
}

func TestArchiveService_NothingToArchive(t *testing.T) {
	svc, repo, _, archive, _, clock := newArchiveFixture(t)

	recent := completedTask(t, "recent", "", 0, clock.NowTime.Add(-time.Hour))
	require.NoError(t, repo.Save(recent))

	count, err := svc.Archive(30)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Len(t, repo.Tasks, 1)
	assert.Empty(t, archive.Archived)
}

func TestArchiveService_MeetingHoursCountedOnce(t *testing.T) {
	svc, repo, stats, _, logs, _ := newArchiveFixture(t)

	completedAt := time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC)
	first := completedTask(t, "first", "1h", time.Hour, completedAt)
	second := completedTask(t, "second", "1h", time.Hour, completedAt.Add(time.Minute))
	require.NoError(t, repo.Save(first))
	require.NoError(t, repo.Save(second))

	date := domain.DateKey(completedAt.Local())
	require.NoError(t, logs.Upsert(domain.DailyLog{
		Date:     date,
		Meetings: []domain.Meeting{{Name: "all", Hours: 2.0}},
	}))

	count, err := svc.Archive(30)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	local := completedAt.Local()
	monthly, err := stats.Get(local.Year(), local.Month())
	require.NoError(t, err)
	day := monthly.Days[date]
	assert.Equal(t, 2.0, day.Est)
	assert.Equal(t, 2.0, day.Act)
	assert.Equal(t, 2.0, day.Mtg)
}
