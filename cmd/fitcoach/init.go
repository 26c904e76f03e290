package fitcoach

import (
	"fmt"

	"github.com/irfanyen1363/fitcoach-cli/internal/app"
	"github.com/irfanyen1363/fitcoach-cli/internal/store"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize local fitcoach database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}

		db, err := store.Open(path)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := store.ApplyMigrations(db); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized fitcoach database at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
