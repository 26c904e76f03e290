package service

import (
	"database/sql"
	"fmt"
	"math"
	"strings"

	"github.com/irfanyen1363/fitcoach-cli/internal/model"
	"github.com/irfanyen1363/fitcoach-cli/internal/store"
)

// Daily calorie target = TDEE minus a fixed deficit for weight loss.
const (
	calorieDeficit           = 500
	defaultCalorieBurnTarget = 500
)

var activityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:        1.2,
	model.ActivityLightlyActive:    1.375,
	model.ActivityModeratelyActive: 1.55,
	model.ActivityVeryActive:       1.725,
	model.ActivityExtraActive:      1.9,
}

// BMR implements the Mifflin-St Jeor equation.
func BMR(weightKg float64, heightCm, age int, gender model.Gender) float64 {
	base := 10*weightKg + 6.25*float64(heightCm) - 5*float64(age)
	if gender == model.GenderMale {
		return base + 5
	}
	return base - 161
}

func ComputeDailyCalorieTarget(weightKg float64, heightCm, age int, gender model.Gender, level model.ActivityLevel) (int, error) {
	multiplier, ok := activityMultipliers[level]
	if !ok {
		return 0, fmt.Errorf("unknown activity level %q", level)
	}
	tdee := BMR(weightKg, heightCm, age, gender) * multiplier
	return int(math.Round(tdee - calorieDeficit)), nil
}

func ParseGender(raw string) (model.Gender, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "male", "m":
		return model.GenderMale, nil
	case "female", "f":
		return model.GenderFemale, nil
	default:
		return "", fmt.Errorf("invalid gender %q (use male or female)", raw)
	}
}

func ParseActivityLevel(raw string) (model.ActivityLevel, error) {
	switch strings.TrimSpace(raw) {
	case "sedentary":
		return model.ActivitySedentary, nil
	case "lightly-active", "lightlyActive":
		return model.ActivityLightlyActive, nil
	case "moderately-active", "moderatelyActive":
		return model.ActivityModeratelyActive, nil
	case "very-active", "veryActive":
		return model.ActivityVeryActive, nil
	case "extra-active", "extraActive":
		return model.ActivityExtraActive, nil
	default:
		return "", fmt.Errorf("invalid activity level %q (use sedentary, lightly-active, moderately-active, very-active, or extra-active)", raw)
	}
}

type OnboardingInput struct {
	Name           string
	Age            int
	Gender         model.Gender
	HeightCm       int
	WeightKg       float64
	TargetWeightKg float64
	ActivityLevel  model.ActivityLevel
}

func (in OnboardingInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if err := validatePositiveInt("age", in.Age); err != nil {
		return err
	}
	if err := validatePositiveInt("height", in.HeightCm); err != nil {
		return err
	}
	if err := validatePositiveFloat("weight", in.WeightKg); err != nil {
		return err
	}
	if err := validatePositiveFloat("target weight", in.TargetWeightKg); err != nil {
		return err
	}
	return nil
}

// CompleteOnboarding creates the profile. The weight supplied here becomes
// both the initial and the current weight; the initial weight never changes
// afterwards.
func CompleteOnboarding(db *sql.DB, in OnboardingInput) (*model.UserProfile, error) {
	existing, err := store.LoadProfile(db)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("a profile already exists (use 'profile set' to edit it, or 'reset' to start over)")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	target, err := ComputeDailyCalorieTarget(in.WeightKg, in.HeightCm, in.Age, in.Gender, in.ActivityLevel)
	if err != nil {
		return nil, err
	}
	profile := model.UserProfile{
		Name:                   strings.TrimSpace(in.Name),
		Age:                    in.Age,
		Gender:                 in.Gender,
		HeightCm:               in.HeightCm,
		InitialWeightKg:        in.WeightKg,
		CurrentWeightKg:        in.WeightKg,
		TargetWeightKg:         in.TargetWeightKg,
		ActivityLevel:          in.ActivityLevel,
		DailyCalorieTarget:     target,
		DailyCalorieBurnTarget: defaultCalorieBurnTarget,
	}
	if err := store.SaveProfile(db, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

type ProfileUpdate struct {
	Name           string
	Age            int
	Gender         model.Gender
	HeightCm       int
	WeightKg       float64
	TargetWeightKg float64
	ActivityLevel  model.ActivityLevel
}

// UpdateProfile replaces the stored profile and recomputes the daily calorie
// target from the edited biometrics. The initial weight is preserved.
func UpdateProfile(db *sql.DB, in ProfileUpdate) (*model.UserProfile, error) {
	current, err := store.LoadProfile(db)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("no profile found (run 'onboard' first)")
	}
	if err := (OnboardingInput{
		Name:           in.Name,
		Age:            in.Age,
		HeightCm:       in.HeightCm,
		WeightKg:       in.WeightKg,
		TargetWeightKg: in.TargetWeightKg,
	}).validate(); err != nil {
		return nil, err
	}
	target, err := ComputeDailyCalorieTarget(in.WeightKg, in.HeightCm, in.Age, in.Gender, in.ActivityLevel)
	if err != nil {
		return nil, err
	}
	initial := current.InitialWeightKg
	if initial == 0 {
		initial = in.WeightKg
	}
	updated := model.UserProfile{
		Name:                   strings.TrimSpace(in.Name),
		Age:                    in.Age,
		Gender:                 in.Gender,
		HeightCm:               in.HeightCm,
		InitialWeightKg:        initial,
		CurrentWeightKg:        in.WeightKg,
		TargetWeightKg:         in.TargetWeightKg,
		ActivityLevel:          in.ActivityLevel,
		DailyCalorieTarget:     target,
		DailyCalorieBurnTarget: current.DailyCalorieBurnTarget,
	}
	if err := store.SaveProfile(db, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
