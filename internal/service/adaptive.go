package service

import (
	"math"
	"time"

	"github.com/irfanyen1363/fitcoach-cli/internal/model"
)

// Product-tuned adaptive target constants. The thresholds and adjustment
// magnitudes are fixed; the result never leaves [85%, 110%] of the base
// target.
const (
	adaptiveMinEntries = 3
	overeatDeviation   = 0.10
	undereatDeviation  = -0.15
	adjustDownKcal     = 150
	adjustUpKcal       = 100
	minTargetRatio     = 0.85
	maxTargetRatio     = 1.10
)

// ComputeAdaptiveTarget recalibrates the daily calorie target from the
// trailing 7-day intake trend. With fewer than three food entries in the
// window there is not enough signal and the base target is returned
// unchanged.
func ComputeAdaptiveTarget(logs []model.LogEntry, baseTarget int, now time.Time) int {
	if baseTarget <= 0 {
		return baseTarget
	}
	cutoff := now.AddDate(0, 0, -7)

	totalCalories := 0
	entryCount := 0
	days := make(map[string]struct{})
	for _, entry := range logs {
		if entry.Type != model.LogFood || entry.Calories == nil {
			continue
		}
		day, err := parseEntryDate(entry.Date)
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			continue
		}
		entryCount++
		totalCalories += *entry.Calories
		days[entry.Date] = struct{}{}
	}
	if entryCount < adaptiveMinEntries {
		return baseTarget
	}

	averageIntake := float64(totalCalories) / float64(len(days))
	base := float64(baseTarget)
	deviation := (averageIntake - base) / base

	switch {
	case deviation > overeatDeviation:
		return int(math.Round(math.Max(base-adjustDownKcal, base*minTargetRatio)))
	case deviation < undereatDeviation:
		return int(math.Round(math.Min(base+adjustUpKcal, base*maxTargetRatio)))
	}
	return baseTarget
}
