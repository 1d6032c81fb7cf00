package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/service"
)

// FormatHabitList renders habits as a table.
func FormatHabitList(habits []*domain.Habit) string {
	headers := []string{"ID", "NAME", "CATEGORY", "TARGET/WK", "STATUS"}
	rows := make([][]string, 0, len(habits))
	for _, h := range habits {
		status := StyleGreen.Render("active")
		switch {
		case h.IsDeleted():
			status = StyleRed.Render("deleted")
		case !h.Enabled:
			status = StyleDim.Render("disabled")
		}
		rows = append(rows, []string{
			strconv.FormatInt(h.ID, 10),
			h.Name,
			h.Category,
			strconv.Itoa(h.TargetPerWeek),
			status,
		})
	}
	return RenderTable(headers, rows)
}

// FormatTodayOverview renders the daily check-in table.
func FormatTodayOverview(rows []service.TodayHabit) string {
	headers := []string{"ID", "HABIT", "TODAY", "NOTE"}
	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		table = append(table, []string{
			strconv.FormatInt(row.Habit.ID, 10),
			row.Habit.Name,
			StatusIndicator(row.Logged, row.Completed),
			row.Note,
		})
	}
	out := Header(fmt.Sprintf("today · %s", domain.FormatDate(domain.Today())))
	return out + "\n" + RenderTable(headers, table)
}

// FormatHabitStats renders streaks and completion bars for one habit.
func FormatHabitStats(s *service.HabitStats) string {
	var b strings.Builder
	b.WriteString(Header(s.Habit.Name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Bold("Current streak:"), streakText(s.CurrentStreak))
	fmt.Fprintf(&b, "%s %s\n", Bold("Longest streak:"), streakText(s.LongestStreak))
	fmt.Fprintf(&b, "%s  %s %s\n", Bold("Last 7 days: "),
		RenderProgress(s.Last7.Rate/100, 20),
		Dim(fmt.Sprintf("(%d of %d)", s.Last7.Completed, s.Last7.Days)))
	fmt.Fprintf(&b, "%s  %s %s\n", Bold("Last 30 days:"),
		RenderProgress(s.Last30.Rate/100, 20),
		Dim(fmt.Sprintf("(%d of %d)", s.Last30.Completed, s.Last30.Days)))
	return b.String()
}

func streakText(days int) string {
	label := fmt.Sprintf("%d day", days)
	if days != 1 {
		label += "s"
	}
	if days == 0 {
		return StyleDim.Render(label)
	}
	return StyleGreen.Render(label) + " " + "🔥"
}

// FormatCalendar renders a month grid, weeks starting on Monday. Completed
// days are green, missed days red, unlogged days dim.
func FormatCalendar(habitName string, year int, month time.Month, days []service.CalendarDay) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s · %s %d", habitName, month, year)))
	b.WriteString("\n")
	b.WriteString(StyleHeader.Render("Mo Tu We Th Fr Sa Su"))
	b.WriteString("\n")

	if len(days) == 0 {
		return b.String()
	}

	// Offset of the first day within a Monday-based week.
	offset := (int(days[0].Date.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("   ", offset))

	col := offset
	for _, day := range days {
		cell := fmt.Sprintf("%2d", day.Date.Day())
		switch {
		case day.Logged && day.Completed:
			cell = StyleGreen.Render(cell)
		case day.Logged:
			cell = StyleRed.Render(cell)
		default:
			cell = StyleDim.Render(cell)
		}
		b.WriteString(cell)
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		} else {
			b.WriteString(" ")
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// FormatSessionList renders recent pomodoro sessions, newest first.
func FormatSessionList(sessions []*domain.PomodoroSession, habitNames map[int64]string) string {
	headers := []string{"STARTED", "LENGTH", "HABIT", "STATUS"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		habit := Dim("—")
		if s.HabitID != nil {
			if name, ok := habitNames[*s.HabitID]; ok {
				habit = name
			} else {
				habit = Dim("(removed)")
			}
		}
		status := StyleGreen.Render("completed")
		if s.Status == domain.SessionAborted {
			status = StyleYellow.Render("aborted")
		}
		rows = append(rows, []string{
			s.StartTime.Local().Format("2006-01-02 15:04"),
			FormatSeconds(s.DurationSeconds),
			habit,
			status,
		})
	}
	return RenderTable(headers, rows)
}

// FormatSessionCounts renders the completed-session totals.
func FormatSessionCounts(c *service.SessionCounts) string {
	var b strings.Builder
	b.WriteString(Header("pomodoros"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d\n", Bold("Today:     "), c.Today)
	fmt.Fprintf(&b, "%s %d\n", Bold("This week: "), c.Week)
	fmt.Fprintf(&b, "%s %d\n", Bold("This month:"), c.Month)
	return b.String()
}

// FormatConfig renders the timer settings.
func FormatConfig(cfg domain.AppConfig) string {
	var b strings.Builder
	b.WriteString(Header("settings"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d min\n", Bold("Work:               "), cfg.WorkMinutes)
	fmt.Fprintf(&b, "%s %d min\n", Bold("Short break:        "), cfg.ShortBreakMinutes)
	fmt.Fprintf(&b, "%s %d min\n", Bold("Long break:         "), cfg.LongBreakMinutes)
	fmt.Fprintf(&b, "%s every %d pomodoros\n", Bold("Long break interval:"), cfg.LongBreakInterval)
	return b.String()
}

// FormatSeconds renders a duration like 25m00s or 1h05m.
func FormatSeconds(seconds int) string {
	d := time.Duration(seconds) * time.Second
	if d >= time.Hour {
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	}
	return fmt.Sprintf("%dm%02ds", int(d.Minutes()), seconds%60)
}
