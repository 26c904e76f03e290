package fitcoach

import (
	"database/sql"
	"fmt"

	"github.com/irfanyen1363/fitcoach-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	onboardName         string
	onboardAge          int
	onboardGender       string
	onboardHeight       int
	onboardWeight       float64
	onboardTargetWeight float64
	onboardActivity     string
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Create your profile and compute the daily calorie target",
	RunE: func(cmd *cobra.Command, args []string) error {
		gender, err := service.ParseGender(onboardGender)
		if err != nil {
			return err
		}
		level, err := service.ParseActivityLevel(onboardActivity)
		if err != nil {
			return err
		}
		return withStore(func(db *sql.DB) error {
			profile, err := service.CompleteOnboarding(db, service.OnboardingInput{
				Name:           onboardName,
				Age:            onboardAge,
				Gender:         gender,
				HeightCm:       onboardHeight,
				WeightKg:       onboardWeight,
				TargetWeightKg: onboardTargetWeight,
				ActivityLevel:  level,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", profile.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Daily calorie target: %d kcal\n", profile.DailyCalorieTarget)
			fmt.Fprintf(cmd.OutOrStdout(), "Daily burn target: %d kcal\n", profile.DailyCalorieBurnTarget)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(onboardCmd)
	onboardCmd.Flags().StringVar(&onboardName, "name", "", "Your name")
	onboardCmd.Flags().IntVar(&onboardAge, "age", 0, "Age in years")
	onboardCmd.Flags().StringVar(&onboardGender, "gender", "", "Gender (male or female)")
	onboardCmd.Flags().IntVar(&onboardHeight, "height", 0, "Height in cm")
	onboardCmd.Flags().Float64Var(&onboardWeight, "weight", 0, "Current weight in kg")
	onboardCmd.Flags().Float64Var(&onboardTargetWeight, "target-weight", 0, "Target weight in kg")
	onboardCmd.Flags().StringVar(&onboardActivity, "activity", "sedentary", "Activity level (sedentary, lightly-active, moderately-active, very-active, extra-active)")
	_ = onboardCmd.MarkFlagRequired("name")
	_ = onboardCmd.MarkFlagRequired("age")
	_ = onboardCmd.MarkFlagRequired("gender")
	_ = onboardCmd.MarkFlagRequired("height")
	_ = onboardCmd.MarkFlagRequired("weight")
	_ = onboardCmd.MarkFlagRequired("target-weight")
}
