package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/repository"
	"github.com/alexanderramin/ritmo/internal/stats"
)

type habitService struct {
	habits  repository.HabitRepo
	records repository.RecordRepo
}

func NewHabitService(habits repository.HabitRepo, records repository.RecordRepo) HabitService {
	return &habitService{habits: habits, records: records}
}

func (s *habitService) Create(ctx context.Context, h *domain.Habit) error {
	if h.Category == "" {
		h.Category = domain.DefaultCategory
	}
	if h.TargetPerWeek == 0 {
		h.TargetPerWeek = 7
	}
	if err := h.Validate(); err != nil {
		return err
	}
	h.Enabled = true
	h.CreatedAt = time.Now().UTC()
	return s.habits.Create(ctx, h)
}

func (s *habitService) Update(ctx context.Context, h *domain.Habit) error {
	existing, err := s.habits.GetByID(ctx, h.ID, false)
	if err != nil {
		return err
	}
	if h.Name == "" {
		h.Name = existing.Name
	}
	if h.Category == "" {
		h.Category = existing.Category
	}
	if h.TargetPerWeek == 0 {
		h.TargetPerWeek = existing.TargetPerWeek
	}
	if err := h.Validate(); err != nil {
		return err
	}
	h.CreatedAt = existing.CreatedAt
	return s.habits.Update(ctx, h)
}

func (s *habitService) SoftDelete(ctx context.Context, id int64) error {
	if _, err := s.habits.GetByID(ctx, id, false); err != nil {
		return err
	}
	return s.habits.SoftDelete(ctx, id)
}

func (s *habitService) Purge(ctx context.Context, id int64) error {
	if _, err := s.habits.GetByID(ctx, id, true); err != nil {
		return err
	}
	return s.habits.Delete(ctx, id)
}

func (s *habitService) GetByID(ctx context.Context, id int64) (*domain.Habit, error) {
	return s.habits.GetByID(ctx, id, false)
}

func (s *habitService) List(ctx context.Context, enabledOnly, includeDeleted bool) ([]*domain.Habit, error) {
	return s.habits.List(ctx, enabledOnly, includeDeleted)
}

func (s *habitService) Stats(ctx context.Context, id int64) (*HabitStats, error) {
	habit, err := s.habits.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	records, err := s.records.AllByHabit(ctx, id)
	if err != nil {
		return nil, err
	}
	current, longest := stats.ComputeStreaks(records)

	week, err := s.records.CountCompletedSince(ctx, id, 7)
	if err != nil {
		return nil, err
	}
	month, err := s.records.CountCompletedSince(ctx, id, 30)
	if err != nil {
		return nil, err
	}

	return &HabitStats{
		Habit:         habit,
		CurrentStreak: current,
		LongestStreak: longest,
		Last7:         stats.NewCompletion(7, week),
		Last30:        stats.NewCompletion(30, month),
	}, nil
}

func (s *habitService) TodayOverview(ctx context.Context) ([]TodayHabit, error) {
	habits, err := s.habits.List(ctx, true, false)
	if err != nil {
		return nil, err
	}

	today := domain.Today()
	overview := make([]TodayHabit, 0, len(habits))
	for _, h := range habits {
		row := TodayHabit{Habit: h}
		rec, err := s.records.GetByHabitAndDate(ctx, h.ID, today)
		switch {
		case err == nil:
			row.Logged = true
			row.Completed = rec.IsCompleted
			row.Note = rec.Note
		case errors.Is(err, repository.ErrNotFound):
			// no record yet today; leave the zero values
		default:
			return nil, err
		}
		overview = append(overview, row)
	}
	return overview, nil
}
