package fitcoach

import (
	"database/sql"
	"fmt"

	"github.com/irfanyen1363/fitcoach-cli/internal/model"
	"github.com/irfanyen1363/fitcoach-cli/internal/service"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Append food, workout, and weight entries",
}

var (
	logName string
	logDate string
)

var logFoodCmd = &cobra.Command{
	Use:   "food <calories>",
	Short: "Log food intake",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		calories, err := parsePositiveIntArg("calories", args[0])
		if err != nil {
			return err
		}
		return appendAndReport(cmd, model.LogFood, calories, 0)
	},
}

var logWorkoutCmd = &cobra.Command{
	Use:   "workout <calories>",
	Short: "Log calories burned in a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		calories, err := parsePositiveIntArg("calories", args[0])
		if err != nil {
			return err
		}
		return appendAndReport(cmd, model.LogWorkout, calories, 0)
	},
}

var logWeightCmd = &cobra.Command{
	Use:   "weight <kg>",
	Short: "Log a weight measurement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := parsePositiveFloatArg("weight", args[0])
		if err != nil {
			return err
		}
		return appendAndReport(cmd, model.LogWeight, 0, weight)
	},
}

func appendAndReport(cmd *cobra.Command, logType model.LogType, calories int, weightKg float64) error {
	at, err := parseDateOrNow(logDate)
	if err != nil {
		return err
	}
	return withStore(func(db *sql.DB) error {
		entry, err := service.AppendLog(db, service.AppendLogInput{
			Type:     logType,
			Name:     logName,
			Calories: calories,
			WeightKg: weightKg,
			At:       at,
		})
		if err != nil {
			return err
		}
		switch entry.Type {
		case model.LogWeight:
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %.1f kg on %s\n", entry.Name, *entry.WeightKg, entry.Date)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %d kcal on %s\n", entry.Name, *entry.Calories, entry.Date)
		}
		return nil
	})
}

var (
	listDate  string
	listType  string
	listLimit int
)

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List log entries in insertion order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(db *sql.DB) error {
			entries, err := service.ListLogs(db, service.LogFilter{
				Date:  listDate,
				Type:  model.LogType(listType),
				Limit: listLimit,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tTYPE\tNAME\tVALUE")
			for _, e := range entries {
				value := ""
				switch {
				case e.Calories != nil:
					value = fmt.Sprintf("%d kcal", *e.Calories)
				case e.WeightKg != nil:
					value = fmt.Sprintf("%.1f kg", *e.WeightKg)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\n", e.ID, e.Date, e.Type, e.Name, value)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logFoodCmd)
	logCmd.AddCommand(logWorkoutCmd)
	logCmd.AddCommand(logWeightCmd)
	logCmd.AddCommand(logListCmd)

	logCmd.PersistentFlags().StringVar(&logName, "name", "", "Entry name")
	logCmd.PersistentFlags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")

	logListCmd.Flags().StringVar(&listDate, "date", "", "Only entries on this date")
	logListCmd.Flags().StringVar(&listType, "type", "", "Only entries of this type (food, workout, weight)")
	logListCmd.Flags().IntVar(&listLimit, "limit", 0, "Only the most recent N entries")
}
