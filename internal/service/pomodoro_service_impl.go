package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/repository"
)

type pomodoroService struct {
	sessions repository.SessionRepo
	observer UseCaseObserver
}

func NewPomodoroService(sessions repository.SessionRepo, observers ...UseCaseObserver) PomodoroService {
	return &pomodoroService{
		sessions: sessions,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *pomodoroService) FinishSession(ctx context.Context, sess *domain.PomodoroSession) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:     "finish-session",
			Duration: time.Since(startedAt),
			Success:  err == nil,
			Err:      err,
			Fields: map[string]any{
				"status":           string(sess.Status),
				"duration_seconds": sess.DurationSeconds,
			},
		})
	}()

	if sess.Status != domain.SessionCompleted && sess.Status != domain.SessionAborted {
		return fmt.Errorf("session status %q is not terminal", sess.Status)
	}
	if sess.DurationSeconds < 0 {
		return fmt.Errorf("session duration must not be negative")
	}
	if sess.EndTime == nil {
		end := sess.StartTime.Add(time.Duration(sess.DurationSeconds) * time.Second)
		sess.EndTime = &end
	}
	return s.sessions.Append(ctx, sess)
}

func (s *pomodoroService) RecentSessions(ctx context.Context, limit int) ([]*domain.PomodoroSession, error) {
	return s.sessions.RecentSessions(ctx, limit)
}

func (s *pomodoroService) Counts(ctx context.Context) (*SessionCounts, error) {
	now := time.Now()
	today := domain.Today()
	// Calendar windows: the week starts on Monday, the month on the 1st.
	weekStart := today.AddDate(0, 0, -int((today.Weekday()+6)%7))
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	counts := &SessionCounts{}
	windows := []struct {
		start time.Time
		dest  *int
	}{
		{today, &counts.Today},
		{weekStart, &counts.Week},
		{monthStart, &counts.Month},
	}
	for _, w := range windows {
		n, err := s.sessions.CountBetween(ctx, w.start, now)
		if err != nil {
			return nil, err
		}
		*w.dest = n
	}
	return counts, nil
}
