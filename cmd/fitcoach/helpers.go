package fitcoach

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/irfanyen1363/fitcoach-cli/internal/app"
	"github.com/irfanyen1363/fitcoach-cli/internal/i18n"
	"github.com/irfanyen1363/fitcoach-cli/internal/provider/gemini"
	"github.com/irfanyen1363/fitcoach-cli/internal/store"
)

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func withStore(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.ApplyMigrations(db); err != nil {
		return err
	}
	return run(db)
}

// outputLanguage resolves the persisted language preference, defaulting to
// Turkish like the original app.
func outputLanguage(db *sql.DB) (string, *i18n.Manager, error) {
	manager, err := i18n.NewManager()
	if err != nil {
		return "", nil, err
	}
	lang, ok, err := store.LoadLanguage(db)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return i18n.DefaultLanguage, manager, nil
	}
	return manager.NormalizeLanguage(lang), manager, nil
}

func geminiClient() *gemini.Client {
	return &gemini.Client{APIKey: os.Getenv("GEMINI_API_KEY")}
}

func parsePositiveIntArg(name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q (expected a positive number)", name, value)
	}
	return v, nil
}

func parsePositiveFloatArg(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q (expected a positive number)", name, value)
	}
	return v, nil
}

func parseDateOrNow(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}
