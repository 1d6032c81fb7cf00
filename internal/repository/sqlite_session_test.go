package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepo_AppendAssignsID(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	s := testutil.NewTestSession(1500)
	require.NoError(t, repo.Append(ctx, s))
	assert.Positive(t, s.ID)
}

func TestSessionRepo_AppendUnlinkedHabit(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	s := testutil.NewTestSession(1500)
	require.NoError(t, repo.Append(ctx, s))

	list, err := repo.RecentSessions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].HabitID, "unlinked session keeps a NULL habit_id")
}

func TestSessionRepo_CountBetween_OnlyCompleted(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	now := time.Now().UTC()
	completed := testutil.NewTestSession(1500, testutil.WithStartTime(now.Add(-30*time.Minute)))
	aborted := testutil.NewTestSession(1500,
		testutil.WithStartTime(now.Add(-20*time.Minute)),
		testutil.WithStatus(domain.SessionAborted),
	)
	require.NoError(t, repo.Append(ctx, completed))
	require.NoError(t, repo.Append(ctx, aborted))

	count, err := repo.CountBetween(ctx, now.Add(-time.Hour), now)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "aborted sessions are excluded even inside the window")
}

func TestSessionRepo_CountBetween_RangeBounds(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	now := time.Now().UTC()
	inside := testutil.NewTestSession(1500, testutil.WithStartTime(now.Add(-30*time.Minute)))
	outside := testutil.NewTestSession(1500, testutil.WithStartTime(now.Add(-3*time.Hour)))
	require.NoError(t, repo.Append(ctx, inside))
	require.NoError(t, repo.Append(ctx, outside))

	count, err := repo.CountBetween(ctx, now.Add(-time.Hour), now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSessionRepo_RecentSessions_DescendingWithLimit(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	now := time.Now().UTC()
	oldest := testutil.NewTestSession(1500, testutil.WithStartTime(now.Add(-3*time.Hour)))
	middle := testutil.NewTestSession(1500, testutil.WithStartTime(now.Add(-2*time.Hour)))
	newest := testutil.NewTestSession(1500, testutil.WithStartTime(now.Add(-1*time.Hour)))
	require.NoError(t, repo.Append(ctx, oldest))
	require.NoError(t, repo.Append(ctx, middle))
	require.NoError(t, repo.Append(ctx, newest))

	list, err := repo.RecentSessions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newest.ID, list[0].ID)
	assert.Equal(t, middle.ID, list[1].ID)
}
