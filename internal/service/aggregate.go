package service

import (
	"fmt"
	"math"
	"time"

	"github.com/irfanyen1363/fitcoach-cli/internal/model"
)

type ChartRange string

const (
	RangeWeekly    ChartRange = "weekly"
	RangeMonthly   ChartRange = "monthly"
	RangeSixMonths ChartRange = "six_months"
)

const (
	weeklyDays  = 7
	monthlyDays = 30
	trendMonths = 6
)

// ChartBucket is one sub-period of a chart window. Calories is the total
// food intake for daily buckets and the per-day average for monthly buckets.
// WeightKg is always populated: buckets without a logged weight inherit the
// last known value (carry-forward).
type ChartBucket struct {
	Date     time.Time `json:"-"`
	Label    string    `json:"label"`
	Calories int       `json:"calories"`
	WeightKg float64   `json:"weight"`
}

func ParseChartRange(raw string) (ChartRange, error) {
	switch raw {
	case "weekly", "week":
		return RangeWeekly, nil
	case "monthly", "month":
		return RangeMonthly, nil
	case "six_months", "six-months", "6m":
		return RangeSixMonths, nil
	default:
		return "", fmt.Errorf("invalid chart range %q (use weekly, monthly, or six-months)", raw)
	}
}

// ChartData aggregates the log collection into chart buckets for the window
// ending at now. Output depends only on (logs, profile, rng, now).
func ChartData(logs []model.LogEntry, profile model.UserProfile, rng ChartRange, now time.Time) ([]ChartBucket, error) {
	today := beginningOfDay(now)

	var buckets []ChartBucket
	var weights []*float64
	switch rng {
	case RangeWeekly:
		buckets, weights = dailyBuckets(logs, today, weeklyDays)
	case RangeMonthly:
		buckets, weights = dailyBuckets(logs, today, monthlyDays)
	case RangeSixMonths:
		buckets, weights = monthlyBuckets(logs, today, trendMonths)
	default:
		return nil, fmt.Errorf("invalid chart range %q", rng)
	}

	carryForwardWeights(buckets, weights, logs, profile.CurrentWeightKg)
	return buckets, nil
}

func dailyBuckets(logs []model.LogEntry, today time.Time, days int) ([]ChartBucket, []*float64) {
	buckets := make([]ChartBucket, 0, days)
	weights := make([]*float64, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		date := day.Format(dateLayout)

		total := 0
		var lastWeight *float64
		for _, entry := range logs {
			if entry.Date != date {
				continue
			}
			switch entry.Type {
			case model.LogFood:
				if entry.Calories != nil {
					total += *entry.Calories
				}
			case model.LogWeight:
				if entry.WeightKg != nil {
					lastWeight = entry.WeightKg
				}
			}
		}
		buckets = append(buckets, ChartBucket{Date: day, Calories: total})
		weights = append(weights, lastWeight)
	}
	return buckets, weights
}

func monthlyBuckets(logs []model.LogEntry, today time.Time, months int) ([]ChartBucket, []*float64) {
	buckets := make([]ChartBucket, 0, months)
	weights := make([]*float64, 0, months)
	for i := months - 1; i >= 0; i-- {
		first := time.Date(today.Year(), today.Month()-time.Month(i), 1, 0, 0, 0, 0, time.Local)

		totalCalories := 0
		foodDays := make(map[string]struct{})
		weightSum := 0.0
		weightCount := 0
		for _, entry := range logs {
			day, err := parseEntryDate(entry.Date)
			if err != nil {
				continue
			}
			if day.Year() != first.Year() || day.Month() != first.Month() {
				continue
			}
			switch entry.Type {
			case model.LogFood:
				if entry.Calories != nil {
					totalCalories += *entry.Calories
					foodDays[entry.Date] = struct{}{}
				}
			case model.LogWeight:
				if entry.WeightKg != nil {
					weightSum += *entry.WeightKg
					weightCount++
				}
			}
		}

		avgCalories := 0
		if len(foodDays) > 0 {
			avgCalories = int(math.Round(float64(totalCalories) / float64(len(foodDays))))
		}
		var avgWeight *float64
		if weightCount > 0 {
			v := math.Round(weightSum/float64(weightCount)*10) / 10
			avgWeight = &v
		}
		buckets = append(buckets, ChartBucket{Date: first, Calories: avgCalories})
		weights = append(weights, avgWeight)
	}
	return buckets, weights
}

// carryForwardWeights fills empty weight buckets with the most recently
// known weight. The seed is the latest weight entry dated strictly before
// the window, falling back to the profile's current weight, so every bucket
// ends up with a value and the trend line stays continuous.
func carryForwardWeights(buckets []ChartBucket, weights []*float64, logs []model.LogEntry, currentWeightKg float64) {
	if len(buckets) == 0 {
		return
	}
	windowStart := buckets[0].Date

	lastKnown := currentWeightKg
	var seedDate time.Time
	seeded := false
	for _, entry := range logs {
		if entry.Type != model.LogWeight || entry.WeightKg == nil {
			continue
		}
		day, err := parseEntryDate(entry.Date)
		if err != nil {
			continue
		}
		if !day.Before(windowStart) {
			continue
		}
		// Log order breaks ties within a day: the later entry wins.
		if !seeded || !day.Before(seedDate) {
			lastKnown = *entry.WeightKg
			seedDate = day
			seeded = true
		}
	}

	for i := range buckets {
		if weights[i] != nil {
			lastKnown = *weights[i]
		}
		buckets[i].WeightKg = lastKnown
	}
}
