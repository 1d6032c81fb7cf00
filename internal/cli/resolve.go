package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/ritmo/internal/domain"
)

// resolveHabit accepts a numeric id or a habit name (case-insensitive) and
// returns the habit. Name matching only sees non-deleted habits.
func resolveHabit(ctx context.Context, app *App, input string) (*domain.Habit, error) {
	if input == "" {
		return nil, fmt.Errorf("habit id or name is required")
	}

	if id, err := strconv.ParseInt(input, 10, 64); err == nil {
		return app.Habits.GetByID(ctx, id)
	}

	habits, err := app.Habits.List(ctx, false, false)
	if err != nil {
		return nil, err
	}
	var matches []*domain.Habit
	for _, h := range habits {
		if strings.EqualFold(h.Name, input) {
			return h, nil
		}
		if strings.HasPrefix(strings.ToLower(h.Name), strings.ToLower(input)) {
			matches = append(matches, h)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("habit not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("habit name %q is ambiguous (%d matches)", input, len(matches))
	}
}
