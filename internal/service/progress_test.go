package service_test

import (
	"testing"

	"github.com/irfanyen1363/fitcoach-cli/internal/service"
)

func TestComputeGoalProgress(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name          string
		initial       float64
		current       float64
		target        float64
		wantPercent   int
		wantRemaining float64
	}{
		{"not started", 80, 80, 70, 0, 10},
		{"halfway", 80, 75, 70, 50, 5},
		{"reached", 80, 70, 70, 100, 0},
		{"past goal", 80, 65, 70, 100, 0},
		{"regressed", 80, 85, 70, 0, 15},
		{"goal above start but met", 70, 68, 72, 100, 0},
		{"goal above start and unmet", 70, 74, 72, 0, 2},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := service.ComputeGoalProgress(tc.initial, tc.current, tc.target)
			if !ok {
				t.Fatalf("expected progress to be defined")
			}
			if got.Percent != tc.wantPercent {
				t.Errorf("expected %d%%, got %d%%", tc.wantPercent, got.Percent)
			}
			if got.RemainingKg != tc.wantRemaining {
				t.Errorf("expected %.1f kg remaining, got %.1f", tc.wantRemaining, got.RemainingKg)
			}
		})
	}
}

func TestComputeGoalProgressUndefinedWithoutInitialWeight(t *testing.T) {
	t.Parallel()
	if _, ok := service.ComputeGoalProgress(0, 75, 70); ok {
		t.Fatalf("expected progress to be undefined when initial weight is unset")
	}
}
