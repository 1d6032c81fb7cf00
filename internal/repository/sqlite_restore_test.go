package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/testutil"
)

func TestRestoreRepo_InsertPreservesIDs(t *testing.T) {
	database := testutil.NewTestDB(t)
	restore := NewSQLiteRestoreRepo(database)
	ctx := context.Background()

	habit := testutil.NewTestHabit("Meditate")
	habit.ID = 42
	inserted, err := restore.InsertHabitRow(ctx, habit)
	require.NoError(t, err)
	assert.True(t, inserted)

	got, err := NewSQLiteHabitRepo(database).GetByID(ctx, 42, false)
	require.NoError(t, err)
	assert.Equal(t, "Meditate", got.Name)
}

func TestRestoreRepo_InsertIgnoresExistingID(t *testing.T) {
	database := testutil.NewTestDB(t)
	habits := NewSQLiteHabitRepo(database)
	restore := NewSQLiteRestoreRepo(database)
	ctx := context.Background()

	existing := testutil.NewTestHabit("Original")
	require.NoError(t, habits.Create(ctx, existing))

	clash := testutil.NewTestHabit("Imported")
	clash.ID = existing.ID
	inserted, err := restore.InsertHabitRow(ctx, clash)
	require.NoError(t, err)
	assert.False(t, inserted)

	got, err := habits.GetByID(ctx, existing.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Name, "existing row must win over the imported one")
}

func TestRestoreRepo_InsertRecordAndSessionRows(t *testing.T) {
	database := testutil.NewTestDB(t)
	habits := NewSQLiteHabitRepo(database)
	restore := NewSQLiteRestoreRepo(database)
	ctx := context.Background()

	habit := testutil.NewTestHabit("Run")
	require.NoError(t, habits.Create(ctx, habit))

	rec := &domain.HabitRecord{
		ID:          7,
		HabitID:     habit.ID,
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local),
		IsCompleted: true,
		RecordedAt:  time.Now().UTC(),
	}
	inserted, err := restore.InsertRecordRow(ctx, rec)
	require.NoError(t, err)
	assert.True(t, inserted)

	sess := testutil.NewTestSession(1500, testutil.WithHabitID(habit.ID))
	sess.ID = 9
	inserted, err = restore.InsertSessionRow(ctx, sess)
	require.NoError(t, err)
	assert.True(t, inserted)

	records, err := NewSQLiteRecordRepo(database).AllByHabit(ctx, habit.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(7), records[0].ID)

	sessions, err := NewSQLiteSessionRepo(database).RecentSessions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, int64(9), sessions[0].ID)
}

func TestRestoreRepo_PurgeAllEmptiesStore(t *testing.T) {
	database := testutil.NewTestDB(t)
	habits := NewSQLiteHabitRepo(database)
	records := NewSQLiteRecordRepo(database)
	sessions := NewSQLiteSessionRepo(database)
	restore := NewSQLiteRestoreRepo(database)
	ctx := context.Background()

	habit := testutil.NewTestHabit("Write")
	require.NoError(t, habits.Create(ctx, habit))
	_, err := records.Upsert(ctx, habit.ID, domain.Today(), true, "")
	require.NoError(t, err)
	require.NoError(t, sessions.Append(ctx, testutil.NewTestSession(1500)))

	require.NoError(t, restore.PurgeAll(ctx))

	all, err := habits.List(ctx, false, true)
	require.NoError(t, err)
	assert.Empty(t, all)

	left, err := records.AllByHabit(ctx, habit.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	recent, err := sessions.RecentSessions(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
