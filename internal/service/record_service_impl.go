package service

import (
	"context"
	"time"

	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/repository"
)

type recordService struct {
	habits  repository.HabitRepo
	records repository.RecordRepo
}

func NewRecordService(habits repository.HabitRepo, records repository.RecordRepo) RecordService {
	return &recordService{habits: habits, records: records}
}

func (s *recordService) SetTodayStatus(ctx context.Context, habitID int64, completed bool, note string) (*domain.HabitRecord, error) {
	return s.SetStatusForDate(ctx, habitID, domain.Today(), completed, note)
}

func (s *recordService) SetStatusForDate(ctx context.Context, habitID int64, date time.Time, completed bool, note string) (*domain.HabitRecord, error) {
	if _, err := s.habits.GetByID(ctx, habitID, false); err != nil {
		return nil, err
	}
	return s.records.Upsert(ctx, habitID, date, completed, note)
}

func (s *recordService) CalendarView(ctx context.Context, habitID int64, year int, month time.Month) ([]CalendarDay, error) {
	if _, err := s.habits.GetByID(ctx, habitID, false); err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	records, err := s.records.FetchRange(ctx, habitID, first, last)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*domain.HabitRecord, len(records))
	for _, r := range records {
		byDate[domain.FormatDate(r.Date)] = r
	}

	days := make([]CalendarDay, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		cell := CalendarDay{Date: d}
		if r, ok := byDate[domain.FormatDate(d)]; ok {
			cell.Logged = true
			cell.Completed = r.IsCompleted
		}
		days = append(days, cell)
	}
	return days, nil
}
