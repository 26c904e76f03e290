package service_test

import (
	"testing"

	"github.com/irfanyen1363/fitcoach-cli/internal/model"
	"github.com/irfanyen1363/fitcoach-cli/internal/service"
	"github.com/irfanyen1363/fitcoach-cli/internal/store"
)

func TestBMRGenderBranchesDifferByConstant(t *testing.T) {
	t.Parallel()
	male := service.BMR(80, 180, 30, model.GenderMale)
	female := service.BMR(80, 180, 30, model.GenderFemale)
	if diff := male - female; diff != 166 {
		t.Fatalf("expected male/female BMR to differ by 166, got %.2f", diff)
	}
}

func TestComputeDailyCalorieTargetDeterministic(t *testing.T) {
	t.Parallel()
	// BMR = 10*80 + 6.25*180 - 5*30 + 5 = 1780; TDEE = 1780*1.55 = 2759; -500 -> 2259
	first, err := service.ComputeDailyCalorieTarget(80, 180, 30, model.GenderMale, model.ActivityModeratelyActive)
	if err != nil {
		t.Fatalf("compute target: %v", err)
	}
	if first != 2259 {
		t.Fatalf("expected target 2259, got %d", first)
	}
	second, err := service.ComputeDailyCalorieTarget(80, 180, 30, model.GenderMale, model.ActivityModeratelyActive)
	if err != nil {
		t.Fatalf("compute target again: %v", err)
	}
	if first != second {
		t.Fatalf("expected deterministic target, got %d then %d", first, second)
	}
}

func TestComputeDailyCalorieTargetRejectsUnknownActivityLevel(t *testing.T) {
	t.Parallel()
	if _, err := service.ComputeDailyCalorieTarget(80, 180, 30, model.GenderMale, "couch"); err == nil {
		t.Fatalf("expected unknown activity level to fail")
	}
}

func TestCompleteOnboardingSetsInitialWeightOnce(t *testing.T) {
	t.Parallel()
	db := newTestStore(t)
	defer db.Close()

	profile, err := service.CompleteOnboarding(db, service.OnboardingInput{
		Name:           "Deniz",
		Age:            30,
		Gender:         model.GenderFemale,
		HeightCm:       165,
		WeightKg:       70,
		TargetWeightKg: 62,
		ActivityLevel:  model.ActivityLightlyActive,
	})
	if err != nil {
		t.Fatalf("complete onboarding: %v", err)
	}
	if profile.InitialWeightKg != 70 || profile.CurrentWeightKg != 70 {
		t.Fatalf("expected initial and current weight 70, got %+v", profile)
	}
	if profile.DailyCalorieBurnTarget != 500 {
		t.Fatalf("expected default burn target 500, got %d", profile.DailyCalorieBurnTarget)
	}

	if _, err := service.CompleteOnboarding(db, service.OnboardingInput{
		Name: "Again", Age: 30, Gender: model.GenderFemale, HeightCm: 165,
		WeightKg: 70, TargetWeightKg: 62, ActivityLevel: model.ActivityLightlyActive,
	}); err == nil {
		t.Fatalf("expected second onboarding to fail")
	}
}

func TestCompleteOnboardingValidatesInput(t *testing.T) {
	t.Parallel()
	db := newTestStore(t)
	defer db.Close()

	cases := []service.OnboardingInput{
		{Name: "", Age: 30, Gender: model.GenderMale, HeightCm: 180, WeightKg: 80, TargetWeightKg: 75, ActivityLevel: model.ActivitySedentary},
		{Name: "A", Age: 0, Gender: model.GenderMale, HeightCm: 180, WeightKg: 80, TargetWeightKg: 75, ActivityLevel: model.ActivitySedentary},
		{Name: "A", Age: 30, Gender: model.GenderMale, HeightCm: 0, WeightKg: 80, TargetWeightKg: 75, ActivityLevel: model.ActivitySedentary},
		{Name: "A", Age: 30, Gender: model.GenderMale, HeightCm: 180, WeightKg: 0, TargetWeightKg: 75, ActivityLevel: model.ActivitySedentary},
		{Name: "A", Age: 30, Gender: model.GenderMale, HeightCm: 180, WeightKg: 80, TargetWeightKg: 0, ActivityLevel: model.ActivitySedentary},
	}
	for i, in := range cases {
		if _, err := service.CompleteOnboarding(db, in); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
	profile, err := store.LoadProfile(db)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if profile != nil {
		t.Fatalf("expected no profile persisted after failed validation")
	}
}

func TestUpdateProfilePreservesInitialWeightAndRecomputesTarget(t *testing.T) {
	t.Parallel()
	db := newTestStore(t)
	defer db.Close()
	seedProfile(t, db)

	updated, err := service.UpdateProfile(db, service.ProfileUpdate{
		Name:           "Deniz",
		Age:            31,
		Gender:         model.GenderMale,
		HeightCm:       180,
		WeightKg:       83,
		TargetWeightKg: 78,
		ActivityLevel:  model.ActivityVeryActive,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.InitialWeightKg != 90 {
		t.Fatalf("expected initial weight preserved at 90, got %.1f", updated.InitialWeightKg)
	}
	if updated.CurrentWeightKg != 83 {
		t.Fatalf("expected current weight 83, got %.1f", updated.CurrentWeightKg)
	}
	// BMR = 10*83 + 6.25*180 - 5*31 + 5 = 1805; TDEE = 1805*1.725 = 3113.625; -500 -> 2614
	if updated.DailyCalorieTarget != 2614 {
		t.Fatalf("expected recomputed target 2614, got %d", updated.DailyCalorieTarget)
	}
}

func TestParseActivityLevelAcceptsBothSpellings(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"lightly-active", "lightlyActive"} {
		level, err := service.ParseActivityLevel(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if level != model.ActivityLightlyActive {
			t.Fatalf("expected lightlyActive for %q, got %s", raw, level)
		}
	}
}
