package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/testutil"
)

func TestPomodoroService_FinishSessionPersistsCompleted(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(1500)
	require.NoError(t, f.pomodoro.FinishSession(ctx, sess))
	assert.NotZero(t, sess.ID)

	recent, err := f.pomodoro.RecentSessions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, domain.SessionCompleted, recent[0].Status)
}

func TestPomodoroService_FinishSessionRejectsRunning(t *testing.T) {
	f := newServiceFixture(t)

	sess := testutil.NewTestSession(600, testutil.WithStatus(domain.SessionRunning))
	err := f.pomodoro.FinishSession(context.Background(), sess)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not terminal")

	recent, err := f.pomodoro.RecentSessions(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, recent, "a rejected session must leave no row")
}

func TestPomodoroService_FinishSessionFillsEndTime(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	start := time.Now().UTC().Add(-25 * time.Minute)
	sess := &domain.PomodoroSession{
		StartTime:       start,
		DurationSeconds: 1500,
		Status:          domain.SessionCompleted,
	}
	require.NoError(t, f.pomodoro.FinishSession(ctx, sess))
	require.NotNil(t, sess.EndTime)
	assert.Equal(t, start.Add(25*time.Minute), *sess.EndTime)
}

func TestPomodoroService_CountsCalendarWindows(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	today := domain.Today()
	weekStart := today
	for weekStart.Weekday() != time.Monday {
		weekStart = weekStart.AddDate(0, 0, -1)
	}
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	// One at each window boundary plus one in the previous month. Midnight
	// start times keep everything in the past regardless of when this runs.
	starts := []time.Time{today, weekStart, monthStart, monthStart.AddDate(0, -1, 0)}
	for _, st := range starts {
		sess := testutil.NewTestSession(1500, testutil.WithStartTime(st.UTC()))
		require.NoError(t, f.sessionRepo.Append(ctx, sess))
	}
	aborted := testutil.NewTestSession(300,
		testutil.WithStartTime(today.UTC()),
		testutil.WithStatus(domain.SessionAborted))
	require.NoError(t, f.sessionRepo.Append(ctx, aborted))

	// Boundaries overlap near the start of a week or month, so derive the
	// expected totals instead of hard-coding them.
	var wantToday, wantWeek, wantMonth int
	for _, st := range starts {
		if !st.Before(today) {
			wantToday++
		}
		if !st.Before(weekStart) {
			wantWeek++
		}
		if !st.Before(monthStart) {
			wantMonth++
		}
	}

	counts, err := f.pomodoro.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, wantToday, counts.Today)
	assert.Equal(t, wantWeek, counts.Week)
	assert.Equal(t, wantMonth, counts.Month, "the aborted session must never count")
}
