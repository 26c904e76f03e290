package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/irfanyen1363/fitcoach-cli/internal/model"
	"github.com/irfanyen1363/fitcoach-cli/internal/store"
)

func newTestStore(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fitcoach.db")
	db, err := store.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.ApplyMigrations(db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func testProfile() model.UserProfile {
	return model.UserProfile{
		Name:                   "Deniz",
		Age:                    30,
		Gender:                 model.GenderMale,
		HeightCm:               180,
		InitialWeightKg:        90,
		CurrentWeightKg:        85,
		TargetWeightKg:         78,
		ActivityLevel:          model.ActivityModeratelyActive,
		DailyCalorieTarget:     2000,
		DailyCalorieBurnTarget: 500,
	}
}

func seedProfile(t *testing.T, db *sql.DB) model.UserProfile {
	t.Helper()
	profile := testProfile()
	if err := store.SaveProfile(db, profile); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	return profile
}

func foodEntry(date string, calories int) model.LogEntry {
	c := calories
	return model.LogEntry{Date: date, Type: model.LogFood, Name: "Meal", Calories: &c}
}

func workoutEntry(date string, calories int) model.LogEntry {
	c := calories
	return model.LogEntry{Date: date, Type: model.LogWorkout, Name: "Workout", Calories: &c}
}

func weightEntry(date string, weightKg float64) model.LogEntry {
	w := weightKg
	return model.LogEntry{Date: date, Type: model.LogWeight, Name: "Weight log", WeightKg: &w}
}

func seedLogs(t *testing.T, db *sql.DB, entries []model.LogEntry) {
	t.Helper()
	if err := store.SaveLogs(db, entries); err != nil {
		t.Fatalf("save logs: %v", err)
	}
}
