package model

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightlyActive"
	ActivityModeratelyActive ActivityLevel = "moderatelyActive"
	ActivityVeryActive       ActivityLevel = "veryActive"
	ActivityExtraActive      ActivityLevel = "extraActive"
)

type UserProfile struct {
	Name                   string        `json:"name"`
	Age                    int           `json:"age"`
	Gender                 Gender        `json:"gender"`
	HeightCm               int           `json:"height"`
	InitialWeightKg        float64       `json:"initialWeight"`
	CurrentWeightKg        float64       `json:"currentWeight"`
	TargetWeightKg         float64       `json:"targetWeight"`
	ActivityLevel          ActivityLevel `json:"activityLevel"`
	DailyCalorieTarget     int           `json:"dailyCalorieTarget"`
	DailyCalorieBurnTarget int           `json:"dailyCalorieBurnTarget"`
}

type LogType string

const (
	LogFood    LogType = "food"
	LogWorkout LogType = "workout"
	LogWeight  LogType = "weight"
)

// LogEntry is immutable once appended. Calories is set for food and workout
// entries (both positive magnitudes), WeightKg only for weight entries.
type LogEntry struct {
	ID       int64    `json:"id"`
	Date     string   `json:"date"` // YYYY-MM-DD
	Type     LogType  `json:"type"`
	Name     string   `json:"name"`
	Calories *int     `json:"calories,omitempty"`
	WeightKg *float64 `json:"weight,omitempty"`
}

type TipContent struct {
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	FocusPoint    string `json:"focus_point"`
	InsightfulTip string `json:"insightful_tip"`
}

// DailyTip is cached once per calendar day per language.
type DailyTip struct {
	Date string     `json:"date"` // YYYY-MM-DD
	Tip  TipContent `json:"tip"`
}

type Meal struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

type MealPlan struct {
	Breakfast     Meal `json:"breakfast"`
	Lunch         Meal `json:"lunch"`
	Dinner        Meal `json:"dinner"`
	Snack         Meal `json:"snack"`
	TotalCalories int  `json:"totalCalories"`
}

type Exercise struct {
	Name string `json:"name"`
	Sets string `json:"sets"`
	Reps string `json:"reps"`
}

type WorkoutPlan struct {
	Focus                   string     `json:"focus"`
	EstimatedCaloriesBurned int        `json:"estimatedCaloriesBurned"`
	Exercises               []Exercise `json:"exercises"`
}

type Product struct {
	Name           string
	CaloriesPer100 float64
	ServingSize    string
}
