package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabitValidate(t *testing.T) {
	tests := []struct {
		name    string
		habit   Habit
		wantErr bool
	}{
		{"valid", Habit{Name: "Run", TargetPerWeek: 5}, false},
		{"daily target", Habit{Name: "Run", TargetPerWeek: 7}, false},
		{"missing name", Habit{TargetPerWeek: 3}, true},
		{"target too low", Habit{Name: "Run", TargetPerWeek: 0}, true},
		{"target too high", Habit{Name: "Run", TargetPerWeek: 8}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.habit.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHabitIsDeleted(t *testing.T) {
	h := Habit{Name: "Run", TargetPerWeek: 7}
	assert.False(t, h.IsDeleted())

	now := time.Now()
	h.DeletedAt = &now
	assert.True(t, h.IsDeleted())
}

func TestAppConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultAppConfig().Validate())

	bad := DefaultAppConfig()
	bad.WorkMinutes = 0
	assert.Error(t, bad.Validate())

	bad = DefaultAppConfig()
	bad.LongBreakInterval = 0
	assert.Error(t, bad.Validate())
}

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", FormatDate(d))
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, time.Local, d.Location())
}

func TestParseDateRejectsOtherFormats(t *testing.T) {
	for _, s := range []string{"05/03/2024", "2024-3-5", "2024-03-05T10:00:00Z", ""} {
		_, err := ParseDate(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestFormatDateDropsTime(t *testing.T) {
	ts := time.Date(2024, 3, 5, 23, 59, 59, 0, time.Local)
	assert.Equal(t, "2024-03-05", FormatDate(ts))
}

func TestTodayIsMidnight(t *testing.T) {
	today := Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, 0, today.Second())
}
