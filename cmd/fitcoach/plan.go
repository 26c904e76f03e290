package fitcoach

import (
	"database/sql"
	"fmt"

	"github.com/irfanyen1363/fitcoach-cli/internal/model"
	"github.com/irfanyen1363/fitcoach-cli/internal/service"
	"github.com/irfanyen1363/fitcoach-cli/internal/store"
	"github.com/spf13/cobra"
)

var planLog bool

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate AI meal and workout plans",
}

var planMealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Generate a daily meal plan around your calorie target",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(db *sql.DB) error {
			profile, err := store.LoadProfile(db)
			if err != nil {
				return err
			}
			if profile == nil {
				return fmt.Errorf("no profile found (run 'onboard' first)")
			}
			lang, tr, err := outputLanguage(db)
			if err != nil {
				return err
			}
			plan, err := geminiClient().GenerateMealPlan(cmd.Context(), profile.DailyCalorieTarget, lang)
			if err != nil {
				return err
			}

			meals := []struct {
				labelKey string
				meal     model.Meal
			}{
				{"plan.breakfast", plan.Breakfast},
				{"plan.lunch", plan.Lunch},
				{"plan.dinner", plan.Dinner},
				{"plan.snack", plan.Snack},
			}
			for _, m := range meals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d kcal)\n", tr.T(lang, m.labelKey, nil), m.meal.Name, m.meal.Calories)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d kcal\n", tr.T(lang, "plan.total", nil), plan.TotalCalories)

			if planLog {
				for _, m := range meals {
					if _, err := service.AppendLog(db, service.AppendLogInput{
						Type:     model.LogFood,
						Name:     m.meal.Name,
						Calories: m.meal.Calories,
					}); err != nil {
						return err
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Logged all meals as food entries.")
			}
			return nil
		})
	},
}

var planWorkoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Generate a workout plan for your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(db *sql.DB) error {
			profile, err := store.LoadProfile(db)
			if err != nil {
				return err
			}
			if profile == nil {
				return fmt.Errorf("no profile found (run 'onboard' first)")
			}
			lang, _, err := outputLanguage(db)
			if err != nil {
				return err
			}
			plan, err := geminiClient().GenerateWorkoutPlan(cmd.Context(), *profile, lang)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (~%d kcal)\n", plan.Focus, plan.EstimatedCaloriesBurned)
			for _, ex := range plan.Exercises {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s: %s x %s\n", ex.Name, ex.Sets, ex.Reps)
			}

			if planLog {
				if _, err := service.AppendLog(db, service.AppendLogInput{
					Type:     model.LogWorkout,
					Name:     plan.Focus,
					Calories: plan.EstimatedCaloriesBurned,
				}); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Logged workout entry.")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planMealCmd)
	planCmd.AddCommand(planWorkoutCmd)
	planCmd.PersistentFlags().BoolVar(&planLog, "log", false, "Append the generated plan to the log")
}
