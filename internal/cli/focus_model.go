package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/ritmo/internal/cli/formatter"
	"github.com/alexanderramin/ritmo/internal/timer"
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var (
	focusTitleStyle = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	focusClockStyle = lipgloss.NewStyle().Foreground(formatter.ColorFg).Bold(true)
	focusDimStyle   = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	focusBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(formatter.ColorDim).
			Padding(1, 3)
)

// focusModel drives one pomodoro countdown. The timer owns the state machine;
// the model only ticks it and renders snapshots.
type focusModel struct {
	timer     *timer.Timer
	bar       progress.Model
	habitName string
	finished  bool
	aborted   bool
	err       error
}

func newFocusModel(t *timer.Timer, habitName string) focusModel {
	bar := progress.New(progress.WithGradient("#fe8019", "#8ec07c"))
	bar.Width = 40
	return focusModel{timer: t, bar: bar, habitName: habitName}
}

func (m focusModel) Init() tea.Cmd {
	return tickCmd()
}

func (m focusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		done, err := m.timer.Tick(context.Background())
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		if done {
			m.finished = true
			return m, tea.Quit
		}
		return m, tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "p", " ":
			snap := m.timer.Snapshot()
			if snap.State == timer.StateRunning {
				_ = m.timer.Pause()
			} else if snap.State == timer.StatePaused {
				_ = m.timer.Resume()
			}
			return m, nil
		case "s", "q", "ctrl+c":
			if err := m.timer.Stop(context.Background()); err != nil {
				m.err = err
			} else {
				m.aborted = true
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		width := msg.Width - 10
		if width > 60 {
			width = 60
		}
		if width > 0 {
			m.bar.Width = width
		}
	}
	return m, nil
}

func (m focusModel) View() string {
	snap := m.timer.Snapshot()
	if snap.Total == 0 {
		return ""
	}

	title := "Focus"
	if m.habitName != "" {
		title = "Focus · " + m.habitName
	}

	clock := fmt.Sprintf("%02d:%02d", snap.Remaining/60, snap.Remaining%60)
	pct := 1.0 - float64(snap.Remaining)/float64(snap.Total)

	state := ""
	if snap.State == timer.StatePaused {
		state = "\n" + formatter.StyleYellow.Render("paused")
	}

	help := focusDimStyle.Render("p pause/resume · s stop · q quit")

	body := fmt.Sprintf("%s\n\n%s%s\n\n%s\n\n%s",
		focusTitleStyle.Render(title),
		focusClockStyle.Render(clock),
		state,
		m.bar.ViewAs(pct),
		help,
	)
	return focusBoxStyle.Render(body) + "\n"
}
