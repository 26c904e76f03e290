package fitcoach

import (
	"database/sql"
	"fmt"

	"github.com/irfanyen1363/fitcoach-cli/internal/store"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase the profile, all logs, cached tips, and the language preference",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("reset erases all data; re-run with --yes to confirm")
		}
		return withStore(func(db *sql.DB) error {
			if err := store.Reset(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data erased.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm the reset")
}
