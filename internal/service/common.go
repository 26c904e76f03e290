package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/irfanyen1363/fitcoach-cli/internal/model"
)

const dateLayout = "2006-01-02"

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func parseEntryDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(date), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

func validatePositiveInt(name string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

func validatePositiveFloat(name string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

// logsSince returns entries dated on or after cutoff, preserving log order.
// Entries with unparseable dates are skipped rather than failing the caller.
func logsSince(logs []model.LogEntry, cutoff time.Time) []model.LogEntry {
	recent := make([]model.LogEntry, 0, len(logs))
	for _, entry := range logs {
		day, err := parseEntryDate(entry.Date)
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			continue
		}
		recent = append(recent, entry)
	}
	return recent
}
