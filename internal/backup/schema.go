// Package backup defines the portable JSON document used to export and
// import the full store: habits, records, pomodoro sessions, and config.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
)

// Document is the top-level JSON structure for backup files.
type Document struct {
	Habits    []HabitExport   `json:"habits"`
	Records   []RecordExport  `json:"habit_records"`
	Pomodoros []SessionExport `json:"pomodoros"`
	Config    *ConfigExport   `json:"config,omitempty"`
}

// HabitExport mirrors a row of the habits table.
type HabitExport struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	TargetPerWeek int     `json:"target_per_week"`
	Enabled       bool    `json:"enabled"`
	CreatedAt     string  `json:"created_at"`
	DeletedAt     *string `json:"deleted_at"`
}

// RecordExport mirrors a row of the habit_records table.
type RecordExport struct {
	ID          int64  `json:"id"`
	HabitID     int64  `json:"habit_id"`
	Date        string `json:"date"`
	IsCompleted bool   `json:"is_completed"`
	Note        string `json:"note"`
	RecordedAt  string `json:"recorded_at"`
}

// SessionExport mirrors a row of the pomodoro_sessions table.
type SessionExport struct {
	ID              int64   `json:"id"`
	HabitID         *int64  `json:"habit_id"`
	StartTime       string  `json:"start_time"`
	EndTime         *string `json:"end_time"`
	DurationSeconds int     `json:"duration_seconds"`
	Status          string  `json:"status"`
}

// ConfigExport mirrors the singleton app_config row.
type ConfigExport struct {
	WorkMinutes       int `json:"work_minutes"`
	ShortBreakMinutes int `json:"short_break_minutes"`
	LongBreakMinutes  int `json:"long_break_minutes"`
	LongBreakInterval int `json:"long_break_interval"`
}

// LoadDocument reads and parses a backup JSON file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading backup file: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing backup file: %w", err)
	}
	return &doc, nil
}

// WriteDocument serializes a backup document to the given path.
func WriteDocument(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding backup document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing backup file: %w", err)
	}
	return nil
}
