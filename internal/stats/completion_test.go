package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCompletion(t *testing.T) {
	tests := []struct {
		name      string
		days      int
		completed int
		wantRate  float64
	}{
		{"three of seven", 7, 3, 42.86},
		{"perfect week", 7, 7, 100.0},
		{"nothing done", 7, 0, 0.0},
		{"one third rounds down", 3, 1, 33.33},
		{"two thirds rounds up", 3, 2, 66.67},
		{"zero days never divides", 0, 5, 0.0},
		{"negative days guarded", -1, 5, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCompletion(tt.days, tt.completed)
			assert.Equal(t, tt.days, c.Days)
			assert.Equal(t, tt.completed, c.Completed)
			assert.InDelta(t, tt.wantRate, c.Rate, 0.0001)
		})
	}
}
