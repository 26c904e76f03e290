package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/irfanyen1363/fitcoach-cli/internal/model"
	"github.com/irfanyen1363/fitcoach-cli/internal/store"
)

type AppendLogInput struct {
	Type     model.LogType
	Name     string
	Calories int     // food and workout entries
	WeightKg float64 // weight entries
	At       time.Time
}

type LogFilter struct {
	Date  string
	Type  model.LogType
	Limit int
}

// AppendLog validates the entry, assigns an id from the creation timestamp,
// and replaces the stored collection with the appended one. Entries are
// never edited or removed after this point.
func AppendLog(db *sql.DB, in AppendLogInput) (model.LogEntry, error) {
	if strings.TrimSpace(in.Name) == "" {
		if in.Type != model.LogWeight {
			return model.LogEntry{}, fmt.Errorf("entry name is required")
		}
		in.Name = "Weight log"
	}
	if in.At.IsZero() {
		in.At = time.Now()
	}

	entry := model.LogEntry{
		ID:   in.At.UnixMilli(),
		Date: in.At.Format(dateLayout),
		Type: in.Type,
		Name: strings.TrimSpace(in.Name),
	}
	switch in.Type {
	case model.LogFood, model.LogWorkout:
		if err := validatePositiveInt("calories", in.Calories); err != nil {
			return model.LogEntry{}, err
		}
		calories := in.Calories
		entry.Calories = &calories
	case model.LogWeight:
		if err := validatePositiveFloat("weight", in.WeightKg); err != nil {
			return model.LogEntry{}, err
		}
		weight := in.WeightKg
		entry.WeightKg = &weight
	default:
		return model.LogEntry{}, fmt.Errorf("invalid log type %q (use food, workout, or weight)", in.Type)
	}

	logs, err := store.LoadLogs(db)
	if err != nil {
		return model.LogEntry{}, err
	}
	logs = append(logs, entry)
	if err := store.SaveLogs(db, logs); err != nil {
		return model.LogEntry{}, err
	}
	return entry, nil
}

// ListLogs returns entries in insertion order, optionally filtered.
func ListLogs(db *sql.DB, f LogFilter) ([]model.LogEntry, error) {
	date := strings.TrimSpace(f.Date)
	if date != "" {
		if _, err := parseEntryDate(date); err != nil {
			return nil, err
		}
	}
	logs, err := store.LoadLogs(db)
	if err != nil {
		return nil, err
	}
	items := make([]model.LogEntry, 0, len(logs))
	for _, entry := range logs {
		if date != "" && entry.Date != date {
			continue
		}
		if f.Type != "" && entry.Type != f.Type {
			continue
		}
		items = append(items, entry)
	}
	if f.Limit > 0 && len(items) > f.Limit {
		items = items[len(items)-f.Limit:]
	}
	return items, nil
}

func logsForDate(logs []model.LogEntry, date string) []model.LogEntry {
	day := make([]model.LogEntry, 0)
	for _, entry := range logs {
		if entry.Date == date {
			day = append(day, entry)
		}
	}
	return day
}
