package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempo/internal/testutil"
)

func TestDailyLogService_RecordMeeting(t *testing.T) {
	store := testutil.NewMockDailyLogStore()
	svc := NewDailyLogService(store)

	require.NoError(t, svc.RecordMeeting("2026-03-04", "standup", 0.25))
	require.NoError(t, svc.RecordMeeting("2026-03-04", "planning", 1.0))

	total, err := svc.TotalHours("2026-03-04")
	require.NoError(t, err)
	assert.Equal(t, 1.25, total)

	// Re-recording a named meeting replaces it instead of stacking.
	require.NoError(t, svc.RecordMeeting("2026-03-04", "planning", 1.5))
	total, err = svc.TotalHours("2026-03-04")
	require.NoError(t, err)
	assert.Equal(t, 1.75, total)
}

func TestDailyLogService_DefaultsName(t *testing.T) {
	store := testutil.NewMockDailyLogStore()
	svc := NewDailyLogService(store)

	require.NoError(t, svc.RecordMeeting("2026-03-04", "", 2.0))

	log, err := store.Get("2026-03-04")
	require.NoError(t, err)
	require.NotNil(t, log)
	require.Len(t, log.Meetings, 1)
	assert.Equal(t, "all", log.Meetings[0].Name)
}

func TestDailyLogService_RejectsNegativeHours(t *testing.T) {
	store := testutil.NewMockDailyLogStore()
	svc := NewDailyLogService(store)

	require.Error(t, svc.RecordMeeting("2026-03-04", "standup", -1))
	assert.Empty(t, store.Logs)
}

func TestDailyLogService_TotalHoursEmptyDay(t *testing.T) {
	svc := NewDailyLogService(testutil.NewMockDailyLogStore())

	total, err := svc.TotalHours("2026-03-04")
	require.NoError(t, err)
	assert.Zero(t, total)
}
