package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/irfanyen1363/fitcoach-cli/internal/model"
)

// Snapshot keys. Each key holds one JSON document that is only ever
// replaced whole, never patched in place.
const (
	KeyUserProfile   = "userProfile"
	KeyLogs          = "logs"
	KeyLanguage      = "language"
	keyDailyTip      = "dailyTip_" // + language code
	dailyTipKeyScope = "dailyTip_%"
)

func DailyTipKey(language string) string {
	return keyDailyTip + strings.TrimSpace(strings.ToLower(language))
}

func getSnapshot(db *sql.DB, key string, out any) (bool, error) {
	var raw string
	err := db.QueryRow(`SELECT value FROM kv_snapshots WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read snapshot %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decode snapshot %q: %w", key, err)
	}
	return true, nil
}

func setSnapshot(db *sql.DB, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode snapshot %q: %w", key, err)
	}
	_, err = db.Exec(`
INSERT INTO kv_snapshots(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, string(raw))
	if err != nil {
		return fmt.Errorf("write snapshot %q: %w", key, err)
	}
	return nil
}

func LoadProfile(db *sql.DB) (*model.UserProfile, error) {
	var p model.UserProfile
	ok, err := getSnapshot(db, KeyUserProfile, &p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func SaveProfile(db *sql.DB, p model.UserProfile) error {
	return setSnapshot(db, KeyUserProfile, p)
}

func LoadLogs(db *sql.DB) ([]model.LogEntry, error) {
	logs := make([]model.LogEntry, 0)
	if _, err := getSnapshot(db, KeyLogs, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func SaveLogs(db *sql.DB, logs []model.LogEntry) error {
	return setSnapshot(db, KeyLogs, logs)
}

func LoadLanguage(db *sql.DB) (string, bool, error) {
	var lang string
	ok, err := getSnapshot(db, KeyLanguage, &lang)
	if err != nil {
		return "", false, err
	}
	return lang, ok, nil
}

func SaveLanguage(db *sql.DB, language string) error {
	return setSnapshot(db, KeyLanguage, language)
}

func LoadDailyTip(db *sql.DB, language string) (*model.DailyTip, error) {
	var tip model.DailyTip
	ok, err := getSnapshot(db, DailyTipKey(language), &tip)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &tip, nil
}

func SaveDailyTip(db *sql.DB, language string, tip model.DailyTip) error {
	return setSnapshot(db, DailyTipKey(language), tip)
}

// Reset clears the profile, the log collection, the language preference,
// and every cached daily tip.
func Reset(db *sql.DB) error {
	_, err := db.Exec(`
DELETE FROM kv_snapshots
WHERE key IN (?, ?, ?) OR key LIKE ?
`, KeyUserProfile, KeyLogs, KeyLanguage, dailyTipKeyScope)
	if err != nil {
		return fmt.Errorf("reset snapshots: %w", err)
	}
	return nil
}
