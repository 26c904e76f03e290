package fitcoach

import (
	"database/sql"
	"fmt"

	"github.com/irfanyen1363/fitcoach-cli/internal/service"
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's summary and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		now, err := parseDateOrNow(todayDate)
		if err != nil {
			return err
		}
		return withStore(func(db *sql.DB) error {
			status, err := service.DashboardSummary(db, now)
			if err != nil {
				return err
			}
			lang, tr, err := outputLanguage(db)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tr.T(lang, "dashboard.greeting", map[string]any{"name": status.Name}))
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", status.CaloriesLeft, tr.T(lang, "dashboard.caloriesLeft", nil))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d / %d kcal\n", tr.T(lang, "dashboard.intake", nil), status.IntakeCalories, status.AdaptiveTarget)
			if status.TargetAdjusted {
				fmt.Fprintln(cmd.OutOrStdout(), tr.T(lang, "dashboard.adjustedTarget", nil))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d / %d kcal\n", tr.T(lang, "dashboard.burned", nil), status.BurnedCalories, status.BurnTarget)
			if status.HasGoalProgress {
				fmt.Fprintln(cmd.OutOrStdout(), tr.T(lang, "dashboard.goalProgress", map[string]any{"percent": status.Goal.Percent}))
				if status.Goal.Percent >= 100 {
					fmt.Fprintln(cmd.OutOrStdout(), tr.T(lang, "dashboard.goalAchieved", nil))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), tr.T(lang, "dashboard.goalToGo", map[string]any{"amount": fmt.Sprintf("%.1f", status.Goal.RemainingKg)}))
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
