package backup

import (
	"fmt"
	"time"

	"github.com/alexanderramin/ritmo/internal/domain"
)

// NewHabitExport converts a domain habit to its document row.
func NewHabitExport(h *domain.Habit) HabitExport {
	e := HabitExport{
		ID:            h.ID,
		Name:          h.Name,
		Description:   h.Description,
		Category:      h.Category,
		TargetPerWeek: h.TargetPerWeek,
		Enabled:       h.Enabled,
		CreatedAt:     h.CreatedAt.Format(time.RFC3339),
	}
	if h.DeletedAt != nil {
		s := h.DeletedAt.Format(time.RFC3339)
		e.DeletedAt = &s
	}
	return e
}

// ToDomain converts a document habit row back to the domain entity.
// Call only after ValidateDocument has passed.
func (e HabitExport) ToDomain() (*domain.Habit, error) {
	createdAt, err := time.Parse(time.RFC3339, e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing habit created_at: %w", err)
	}
	h := &domain.Habit{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		Category:      e.Category,
		TargetPerWeek: e.TargetPerWeek,
		Enabled:       e.Enabled,
		CreatedAt:     createdAt,
	}
	if h.Category == "" {
		h.Category = domain.DefaultCategory
	}
	if e.DeletedAt != nil {
		deletedAt, err := time.Parse(time.RFC3339, *e.DeletedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing habit deleted_at: %w", err)
		}
		h.DeletedAt = &deletedAt
	}
	return h, nil
}

// NewRecordExport converts a domain record to its document row.
func NewRecordExport(r *domain.HabitRecord) RecordExport {
	return RecordExport{
		ID:          r.ID,
		HabitID:     r.HabitID,
		Date:        domain.FormatDate(r.Date),
		IsCompleted: r.IsCompleted,
		Note:        r.Note,
		RecordedAt:  r.RecordedAt.Format(time.RFC3339),
	}
}

// ToDomain converts a document record row back to the domain entity.
func (e RecordExport) ToDomain() (*domain.HabitRecord, error) {
	date, err := domain.ParseDate(e.Date)
	if err != nil {
		return nil, fmt.Errorf("parsing record date: %w", err)
	}
	r := &domain.HabitRecord{
		ID:          e.ID,
		HabitID:     e.HabitID,
		Date:        date,
		IsCompleted: e.IsCompleted,
		Note:        e.Note,
	}
	if e.RecordedAt != "" {
		recordedAt, err := time.Parse(time.RFC3339, e.RecordedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing record recorded_at: %w", err)
		}
		r.RecordedAt = recordedAt
	}
	return r, nil
}

// NewSessionExport converts a domain session to its document row.
func NewSessionExport(s *domain.PomodoroSession) SessionExport {
	e := SessionExport{
		ID:              s.ID,
		HabitID:         s.HabitID,
		StartTime:       s.StartTime.Format(time.RFC3339),
		DurationSeconds: s.DurationSeconds,
		Status:          string(s.Status),
	}
	if s.EndTime != nil {
		end := s.EndTime.Format(time.RFC3339)
		e.EndTime = &end
	}
	return e
}

// ToDomain converts a document session row back to the domain entity.
func (e SessionExport) ToDomain() (*domain.PomodoroSession, error) {
	start, err := time.Parse(time.RFC3339, e.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parsing session start_time: %w", err)
	}
	s := &domain.PomodoroSession{
		ID:              e.ID,
		HabitID:         e.HabitID,
		StartTime:       start,
		DurationSeconds: e.DurationSeconds,
		Status:          domain.SessionStatus(e.Status),
	}
	if e.EndTime != nil {
		end, err := time.Parse(time.RFC3339, *e.EndTime)
		if err != nil {
			return nil, fmt.Errorf("parsing session end_time: %w", err)
		}
		s.EndTime = &end
	}
	return s, nil
}

// NewConfigExport converts the app configuration to its document object.
func NewConfigExport(cfg domain.AppConfig) *ConfigExport {
	return &ConfigExport{
		WorkMinutes:       cfg.WorkMinutes,
		ShortBreakMinutes: cfg.ShortBreakMinutes,
		LongBreakMinutes:  cfg.LongBreakMinutes,
		LongBreakInterval: cfg.LongBreakInterval,
	}
}

// ToDomain converts a document config object back to the domain value.
func (e ConfigExport) ToDomain() domain.AppConfig {
	return domain.AppConfig{
		WorkMinutes:       e.WorkMinutes,
		ShortBreakMinutes: e.ShortBreakMinutes,
		LongBreakMinutes:  e.LongBreakMinutes,
		LongBreakInterval: e.LongBreakInterval,
	}
}
