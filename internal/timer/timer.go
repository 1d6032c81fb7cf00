// Package timer holds the in-memory pomodoro countdown. A session exists
// only in this struct until it reaches a terminal state; the store sees a
// row exactly once, when the countdown completes or is stopped.
package timer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alexanderramin/ritmo/internal/domain"
)

// ErrInvalidTransition is returned when a control call does not apply to the
// current state, e.g. pausing an idle timer.
var ErrInvalidTransition = errors.New("invalid timer transition")

type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// Completer receives the finished session. Satisfied by the pomodoro service.
type Completer interface {
	FinishSession(ctx context.Context, s *domain.PomodoroSession) error
}

// Snapshot is a consistent read of the timer for rendering.
type Snapshot struct {
	State     State
	Total     int
	Remaining int
	HabitID   *int64
}

// Timer counts a single pomodoro down one Tick at a time. Safe for use from
// multiple goroutines; the TUI ticks it while key handlers pause and stop it.
type Timer struct {
	mu        sync.Mutex
	state     State
	habitID   *int64
	startTime time.Time
	total     int
	remaining int
	completer Completer
}

func New(completer Completer) *Timer {
	return &Timer{completer: completer}
}

// Start begins a countdown of the given duration. The timer must be idle.
func (t *Timer) Start(habitID *int64, d time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateIdle {
		return ErrInvalidTransition
	}
	seconds := int(d / time.Second)
	if seconds <= 0 {
		return errors.New("timer duration must be positive")
	}
	t.state = StateRunning
	t.habitID = habitID
	t.startTime = time.Now().UTC()
	t.total = seconds
	t.remaining = seconds
	return nil
}

// Tick advances the countdown by one second. It reports true when this tick
// completed the session, which is also the moment the row is persisted.
// Ticks while idle or paused do nothing.
func (t *Timer) Tick(ctx context.Context) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateRunning {
		return false, nil
	}
	t.remaining--
	if t.remaining > 0 {
		return false, nil
	}
	if err := t.finishLocked(ctx, domain.SessionCompleted); err != nil {
		// The countdown hit zero but the row did not land; stay runnable so
		// the caller can retry the tick.
		t.remaining = 1
		return false, err
	}
	return true, nil
}

// Pause suspends a running countdown.
func (t *Timer) Pause() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateRunning {
		return ErrInvalidTransition
	}
	t.state = StatePaused
	return nil
}

// Resume continues a paused countdown.
func (t *Timer) Resume() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StatePaused {
		return ErrInvalidTransition
	}
	t.state = StateRunning
	return nil
}

// Stop aborts the countdown and persists the session as aborted. Stopping an
// idle timer is a no-op, so double cancellation is harmless.
func (t *Timer) Stop(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateIdle {
		return nil
	}
	return t.finishLocked(ctx, domain.SessionAborted)
}

func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Snapshot{
		State:     t.state,
		Total:     t.total,
		Remaining: t.remaining,
		HabitID:   t.habitID,
	}
}

// finishLocked builds the terminal session, hands it to the completer and
// resets to idle. Callers hold t.mu.
func (t *Timer) finishLocked(ctx context.Context, status domain.SessionStatus) error {
	end := time.Now().UTC()
	sess := &domain.PomodoroSession{
		HabitID:         t.habitID,
		StartTime:       t.startTime,
		EndTime:         &end,
		// The planned length, even on abort; EndTime-StartTime tells how
		// far the countdown actually got.
		DurationSeconds: t.total,
		Status:          status,
	}
	if err := t.completer.FinishSession(ctx, sess); err != nil {
		return err
	}
	t.state = StateIdle
	t.habitID = nil
	t.total = 0
	t.remaining = 0
	return nil
}
