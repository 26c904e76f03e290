package fitcoach

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/irfanyen1363/fitcoach-cli/internal/i18n"
	"github.com/irfanyen1363/fitcoach-cli/internal/store"
	"github.com/spf13/cobra"
)

var langCmd = &cobra.Command{
	Use:   "lang [code]",
	Short: "Show or set the output language",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(db *sql.DB) error {
			manager, err := i18n.NewManager()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				lang, _, err := outputLanguage(db)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), lang)
				return nil
			}

			requested := strings.ToLower(strings.TrimSpace(args[0]))
			supported := false
			for _, lang := range manager.SupportedLanguages() {
				if lang == requested {
					supported = true
					break
				}
			}
			if !supported {
				return fmt.Errorf("unsupported language %q (supported: %s)", args[0], strings.Join(manager.SupportedLanguages(), ", "))
			}
			if err := store.SaveLanguage(db, requested); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Language set to %s\n", requested)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(langCmd)
}
