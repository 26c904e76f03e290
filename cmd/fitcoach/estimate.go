package fitcoach

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/irfanyen1363/fitcoach-cli/internal/model"
	"github.com/irfanyen1363/fitcoach-cli/internal/service"
	"github.com/irfanyen1363/fitcoach-cli/internal/store"
	"github.com/spf13/cobra"
)

var estimateLog bool

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate calories from a text description",
}

var estimateFoodCmd = &cobra.Command{
	Use:   "food <description>",
	Short: "Estimate intake calories for a food description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEstimate(cmd, model.LogFood, strings.Join(args, " "))
	},
}

var estimateWorkoutCmd = &cobra.Command{
	Use:   "workout <description>",
	Short: "Estimate burned calories for a workout description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEstimate(cmd, model.LogWorkout, strings.Join(args, " "))
	},
}

func runEstimate(cmd *cobra.Command, kind model.LogType, text string) error {
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
		calories, err := geminiClient().EstimateCaloriesFromText(cmd.Context(), kind, text, profile.CurrentWeightKg, lang)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ~%d kcal\n", text, calories)

		if estimateLog {
			entry, err := service.AppendLog(db, service.AppendLogInput{
				Type:     kind,
				Name:     text,
				Calories: calories,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s entry on %s\n", entry.Type, entry.Date)
		}
		return nil
	})
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	estimateCmd.AddCommand(estimateFoodCmd)
	estimateCmd.AddCommand(estimateWorkoutCmd)
	estimateCmd.PersistentFlags().BoolVar(&estimateLog, "log", false, "Append the estimate to the log")
}
