package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ritmo/internal/backup"
	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/testutil"
)

func backupPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "backup.json")
}

// seedStore fills a fixture with a couple of habits, records, sessions and a
// non-default config so round trips have something to carry.
func seedStore(t *testing.T, f *serviceFixture) {
	t.Helper()
	ctx := context.Background()

	run := &domain.Habit{Name: "Run", Category: "health", TargetPerWeek: 5}
	read := &domain.Habit{Name: "Read", Category: "mind", TargetPerWeek: 7}
	require.NoError(t, f.habits.Create(ctx, run))
	require.NoError(t, f.habits.Create(ctx, read))

	today := domain.Today()
	_, err := f.records.SetStatusForDate(ctx, run.ID, today.AddDate(0, 0, -1), true, "5k")
	require.NoError(t, err)
	_, err = f.records.SetStatusForDate(ctx, run.ID, today, true, "")
	require.NoError(t, err)
	_, err = f.records.SetStatusForDate(ctx, read.ID, today, false, "fell asleep")
	require.NoError(t, err)

	require.NoError(t, f.pomodoro.FinishSession(ctx, testutil.NewTestSession(1500, testutil.WithHabitID(run.ID))))
	require.NoError(t, f.pomodoro.FinishSession(ctx, testutil.NewTestSession(600, testutil.WithStatus(domain.SessionAborted))))

	cfg := domain.DefaultAppConfig()
	cfg.WorkMinutes = 50
	require.NoError(t, f.settings.Update(ctx, cfg))
}

func TestBackup_ExportWritesWholeStore(t *testing.T) {
	f := newServiceFixture(t)
	seedStore(t, f)
	ctx := context.Background()

	// Soft-deleted habits are part of the backup too.
	gone := &domain.Habit{Name: "Old habit"}
	require.NoError(t, f.habits.Create(ctx, gone))
	require.NoError(t, f.habits.SoftDelete(ctx, gone.ID))

	path := backupPath(t)
	result, err := f.backup.Export(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Habits)
	assert.Equal(t, 3, result.Records)
	assert.Equal(t, 2, result.Sessions)

	doc, err := backup.LoadDocument(path)
	require.NoError(t, err)
	assert.Len(t, doc.Habits, 3)
	require.NotNil(t, doc.Config)
	assert.Equal(t, 50, doc.Config.WorkMinutes)

	var deletedSeen bool
	for _, h := range doc.Habits {
		if h.Name == "Old habit" {
			deletedSeen = true
			assert.NotNil(t, h.DeletedAt)
		}
	}
	assert.True(t, deletedSeen)
}

func TestBackup_RoundTripReplaceOntoEmptyStore(t *testing.T) {
	source := newServiceFixture(t)
	seedStore(t, source)
	ctx := context.Background()

	path := backupPath(t)
	exported, err := source.backup.Export(ctx, path)
	require.NoError(t, err)

	target := newServiceFixture(t)
	result, err := target.backup.Import(ctx, path, domain.MergeReplace)
	require.NoError(t, err)
	assert.Equal(t, exported.Habits, result.Habits)
	assert.Equal(t, exported.Records, result.Records)
	assert.Equal(t, exported.Sessions, result.Sessions)
	assert.True(t, result.ConfigRestored)
	assert.Zero(t, result.HabitsSkipped)

	srcHabits, err := source.habits.List(ctx, false, true)
	require.NoError(t, err)
	dstHabits, err := target.habits.List(ctx, false, true)
	require.NoError(t, err)
	require.Len(t, dstHabits, len(srcHabits))
	dstByID := make(map[int64]*domain.Habit, len(dstHabits))
	for _, h := range dstHabits {
		dstByID[h.ID] = h
	}
	for _, src := range srcHabits {
		dst, ok := dstByID[src.ID]
		require.True(t, ok, "habit %d missing after import", src.ID)
		assert.Equal(t, src.Name, dst.Name)
		assert.Equal(t, src.Category, dst.Category)
	}

	cfg, err := target.settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.WorkMinutes)
}

func TestBackup_ImportReplaceDropsExistingRows(t *testing.T) {
	source := newServiceFixture(t)
	seedStore(t, source)
	ctx := context.Background()

	path := backupPath(t)
	_, err := source.backup.Export(ctx, path)
	require.NoError(t, err)

	target := newServiceFixture(t)
	stale := &domain.Habit{Name: "Stale habit"}
	require.NoError(t, target.habits.Create(ctx, stale))

	_, err = target.backup.Import(ctx, path, domain.MergeReplace)
	require.NoError(t, err)

	habits, err := target.habits.List(ctx, false, true)
	require.NoError(t, err)
	for _, h := range habits {
		assert.NotEqual(t, "Stale habit", h.Name)
	}
}

func TestBackup_ImportAppendKeepsExistingOnIDCollision(t *testing.T) {
	source := newServiceFixture(t)
	seedStore(t, source)
	ctx := context.Background()

	path := backupPath(t)
	_, err := source.backup.Export(ctx, path)
	require.NoError(t, err)

	target := newServiceFixture(t)
	local := &domain.Habit{Name: "Local habit"} // gets id 1, colliding with the backup
	require.NoError(t, target.habits.Create(ctx, local))

	result, err := target.backup.Import(ctx, path, domain.MergeAppend)
	require.NoError(t, err)
	assert.Equal(t, 1, result.HabitsSkipped)
	assert.Equal(t, 1, result.Habits, "the non-colliding habit still lands")

	got, err := target.habits.GetByID(ctx, local.ID)
	require.NoError(t, err)
	assert.Equal(t, "Local habit", got.Name, "append must never overwrite an existing row")
}

func TestBackup_ImportRejectsInvalidDocumentAtomically(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	path := backupPath(t)
	doc := &backup.Document{
		Habits: []backup.HabitExport{
			{ID: 1, Name: "Good habit", TargetPerWeek: 7, CreatedAt: "2024-01-01T08:00:00Z"},
			{ID: 2, Name: "", TargetPerWeek: 7, CreatedAt: "2024-01-01T08:00:00Z"},
		},
	}
	require.NoError(t, backup.WriteDocument(path, doc))

	_, err := f.backup.Import(ctx, path, domain.MergeAppend)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	habits, err := f.habits.List(ctx, false, true)
	require.NoError(t, err)
	assert.Empty(t, habits, "a rejected document must not write anything")
}

func TestBackup_ImportUnknownStrategy(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.backup.Import(context.Background(), backupPath(t), domain.MergeStrategy("merge"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown merge strategy")
}

func TestBackup_ImportMissingFile(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.backup.Import(context.Background(), filepath.Join(t.TempDir(), "nope.json"), domain.MergeAppend)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
