package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/irfanyen1363/fitcoach-cli/internal/model"
	"github.com/irfanyen1363/fitcoach-cli/internal/store"
)

type DashboardStatus struct {
	Date            string            `json:"date"`
	Name            string            `json:"name"`
	IntakeCalories  int               `json:"intake_calories"`
	BurnedCalories  int               `json:"burned_calories"`
	CaloriesLeft    int               `json:"calories_left"`
	BaseTarget      int               `json:"base_target"`
	AdaptiveTarget  int               `json:"adaptive_target"`
	TargetAdjusted  bool              `json:"target_adjusted"`
	BurnTarget      int               `json:"burn_target"`
	HasGoalProgress bool              `json:"has_goal_progress"`
	Goal            GoalProgress      `json:"goal,omitempty"`
	Profile         model.UserProfile `json:"-"`
}

// DashboardSummary derives the day's numbers from the profile and log
// collection: calories left = adaptive target - intake + burned.
func DashboardSummary(db *sql.DB, now time.Time) (*DashboardStatus, error) {
	profile, err := store.LoadProfile(db)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("no profile found (run 'onboard' first)")
	}
	logs, err := store.LoadLogs(db)
	if err != nil {
		return nil, err
	}

	adaptive := ComputeAdaptiveTarget(logs, profile.DailyCalorieTarget, now)
	today := now.Format(dateLayout)

	intake := 0
	burned := 0
	for _, entry := range logsForDate(logs, today) {
		if entry.Calories == nil {
			continue
		}
		switch entry.Type {
		case model.LogFood:
			intake += *entry.Calories
		case model.LogWorkout:
			burned += *entry.Calories
		}
	}

	status := &DashboardStatus{
		Date:           today,
		Name:           profile.Name,
		IntakeCalories: intake,
		BurnedCalories: burned,
		CaloriesLeft:   adaptive - intake + burned,
		BaseTarget:     profile.DailyCalorieTarget,
		AdaptiveTarget: adaptive,
		TargetAdjusted: adaptive != profile.DailyCalorieTarget,
		BurnTarget:     profile.DailyCalorieBurnTarget,
		Profile:        *profile,
	}
	if goal, ok := ComputeGoalProgress(profile.InitialWeightKg, profile.CurrentWeightKg, profile.TargetWeightKg); ok {
		status.HasGoalProgress = true
		status.Goal = goal
	}
	return status, nil
}
