package fitcoach

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/irfanyen1363/fitcoach-cli/internal/i18n"
	"github.com/irfanyen1363/fitcoach-cli/internal/service"
	"github.com/irfanyen1363/fitcoach-cli/internal/store"
	"github.com/spf13/cobra"
)

var (
	chartRange string
	chartDate  string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show calorie and weight trends",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng, err := service.ParseChartRange(chartRange)
		if err != nil {
			return err
		}
		now, err := parseDateOrNow(chartDate)
		if err != nil {
			return err
		}
		return withStore(func(db *sql.DB) error {
			profile, err := store.LoadProfile(db)
			if err != nil {
				return err
			}
			if profile == nil {
				return fmt.Errorf("no profile found (run 'onboard' first)")
			}
			logs, err := store.LoadLogs(db)
			if err != nil {
				return err
			}
			buckets, err := service.ChartData(logs, *profile, rng, now)
			if err != nil {
				return err
			}
			lang, tr, err := outputLanguage(db)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
				tr.T(lang, "chart.headerDate", nil),
				tr.T(lang, "chart.headerCalories", nil),
				tr.T(lang, "chart.headerWeight", nil))
			for _, b := range buckets {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%.1f\n", bucketLabel(tr, lang, rng, b.Date), b.Calories, b.WeightKg)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d kcal / %.1f kg\n",
				tr.T(lang, "chart.target", nil), profile.DailyCalorieTarget, profile.TargetWeightKg)
			return nil
		})
	},
}

func bucketLabel(tr *i18n.Manager, lang string, rng service.ChartRange, date time.Time) string {
	switch rng {
	case service.RangeWeekly:
		return tr.WeekdayShort(lang, date.Weekday())
	case service.RangeSixMonths:
		return tr.MonthShort(lang, date.Month())
	default:
		return fmt.Sprintf("%d %s", date.Day(), tr.MonthShort(lang, date.Month()))
	}
}

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().StringVar(&chartRange, "range", "weekly", "Window: weekly, monthly, or six-months")
	chartCmd.Flags().StringVar(&chartDate, "date", "", "Window end date YYYY-MM-DD (default today)")
}
