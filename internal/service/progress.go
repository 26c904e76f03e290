package service

import "math"

type GoalProgress struct {
	Percent     int     `json:"percent"`
	RemainingKg float64 `json:"remaining_kg"`
}

// ComputeGoalProgress derives percent-to-goal from the initial, current,
// and target weights. It reports ok=false when the initial weight was never
// set, in which case progress is undefined and callers render nothing.
func ComputeGoalProgress(initialKg, currentKg, targetKg float64) (GoalProgress, bool) {
	if initialKg == 0 {
		return GoalProgress{}, false
	}

	totalToLose := initialKg - targetKg
	percent := 0
	if totalToLose > 0 {
		percent = int(math.Round((initialKg - currentKg) / totalToLose * 100))
	} else if currentKg <= targetKg {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	return GoalProgress{
		Percent:     percent,
		RemainingKg: math.Max(0, currentKg-targetKg),
	}, true
}
