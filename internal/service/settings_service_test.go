package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ritmo/internal/domain"
)

func TestSettingsService_GetReturnsSeededDefaults(t *testing.T) {
	f := newServiceFixture(t)

	cfg, err := f.settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppConfig(), cfg)
}

func TestSettingsService_UpdateRoundTrip(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	want := domain.AppConfig{
		WorkMinutes:       50,
		ShortBreakMinutes: 10,
		LongBreakMinutes:  30,
		LongBreakInterval: 2,
	}
	require.NoError(t, f.settings.Update(ctx, want))

	got, err := f.settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsService_UpdateRejectsInvalid(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	bad := domain.DefaultAppConfig()
	bad.WorkMinutes = 0
	require.Error(t, f.settings.Update(ctx, bad))

	// The stored config must be untouched after the rejection.
	got, err := f.settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppConfig(), got)
}
