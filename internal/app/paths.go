package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName = "fitcoach"
	dbFileName = "fitcoach.db"

	// EnvDBPath overrides the default database location. A .env file
	// loaded at startup may set it alongside GEMINI_API_KEY.
	EnvDBPath = "FITCOACH_DB"
)

// DefaultDBPath resolves the database location: the FITCOACH_DB
// environment variable when set, otherwise fitcoach/fitcoach.db under the
// user config directory.
func DefaultDBPath() (string, error) {
	if path := os.Getenv(EnvDBPath); path != "" {
		return path, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}

func EnsureDBDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return nil
}
