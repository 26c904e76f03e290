package fitcoach

import (
	"database/sql"
	"fmt"

	"github.com/irfanyen1363/fitcoach-cli/internal/service"
	"github.com/irfanyen1363/fitcoach-cli/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(db *sql.DB) error {
			profile, err := store.LoadProfile(db)
			if err != nil {
				return err
			}
			if profile == nil {
				return fmt.Errorf("no profile found (run 'onboard' first)")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", profile.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Age: %d\n", profile.Age)
			fmt.Fprintf(cmd.OutOrStdout(), "Gender: %s\n", profile.Gender)
			fmt.Fprintf(cmd.OutOrStdout(), "Height: %d cm\n", profile.HeightCm)
			fmt.Fprintf(cmd.OutOrStdout(), "Initial weight: %.1f kg\n", profile.InitialWeightKg)
			fmt.Fprintf(cmd.OutOrStdout(), "Current weight: %.1f kg\n", profile.CurrentWeightKg)
			fmt.Fprintf(cmd.OutOrStdout(), "Target weight: %.1f kg\n", profile.TargetWeightKg)
			fmt.Fprintf(cmd.OutOrStdout(), "Activity level: %s\n", profile.ActivityLevel)
			fmt.Fprintf(cmd.OutOrStdout(), "Daily calorie target: %d kcal\n", profile.DailyCalorieTarget)
			fmt.Fprintf(cmd.OutOrStdout(), "Daily burn target: %d kcal\n", profile.DailyCalorieBurnTarget)
			return nil
		})
	},
}

var (
	setName         string
	setAge          int
	setGender       string
	setHeight       int
	setWeight       float64
	setTargetWeight float64
	setActivity     string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Edit the profile and recompute the calorie target",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(db *sql.DB) error {
			current, err := store.LoadProfile(db)
			if err != nil {
				return err
			}
			if current == nil {
				return fmt.Errorf("no profile found (run 'onboard' first)")
			}

			update := service.ProfileUpdate{
				Name:           current.Name,
				Age:            current.Age,
				Gender:         current.Gender,
				HeightCm:       current.HeightCm,
				WeightKg:       current.CurrentWeightKg,
				TargetWeightKg: current.TargetWeightKg,
				ActivityLevel:  current.ActivityLevel,
			}
			if cmd.Flags().Changed("name") {
				update.Name = setName
			}
			if cmd.Flags().Changed("age") {
				update.Age = setAge
			}
			if cmd.Flags().Changed("gender") {
				gender, err := service.ParseGender(setGender)
				if err != nil {
					return err
				}
				update.Gender = gender
			}
			if cmd.Flags().Changed("height") {
				update.HeightCm = setHeight
			}
			if cmd.Flags().Changed("weight") {
				update.WeightKg = setWeight
			}
			if cmd.Flags().Changed("target-weight") {
				update.TargetWeightKg = setTargetWeight
			}
			if cmd.Flags().Changed("activity") {
				level, err := service.ParseActivityLevel(setActivity)
				if err != nil {
					return err
				}
				update.ActivityLevel = level
			}

			updated, err := service.UpdateProfile(db, update)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile saved. Daily calorie target: %d kcal\n", updated.DailyCalorieTarget)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)

	profileSetCmd.Flags().StringVar(&setName, "name", "", "Your name")
	profileSetCmd.Flags().IntVar(&setAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&setGender, "gender", "", "Gender (male or female)")
	profileSetCmd.Flags().IntVar(&setHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&setWeight, "weight", 0, "Current weight in kg")
	profileSetCmd.Flags().Float64Var(&setTargetWeight, "target-weight", 0, "Target weight in kg")
	profileSetCmd.Flags().StringVar(&setActivity, "activity", "", "Activity level")
}
