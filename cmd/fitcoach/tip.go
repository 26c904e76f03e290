package fitcoach

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/irfanyen1363/fitcoach-cli/internal/service"
	"github.com/spf13/cobra"
)

var tipRefresh bool

var tipCmd = &cobra.Command{
	Use:   "tip",
	Short: "Show today's AI coaching tip",
	Long:  "Shows the cached tip for today, generating one first if needed. Use --refresh to force a new tip.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(db *sql.DB) error {
			lang, tr, err := outputLanguage(db)
			if err != nil {
				return err
			}
			coach := service.NewTipCoach(db, geminiClient())
			tip, err := coach.EnsureTipForToday(cmd.Context(), lang, time.Now(), tipRefresh)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", tip.Tip.Title)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", tr.T(lang, "tip.summary", nil), tip.Tip.Summary)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", tr.T(lang, "tip.focusPoint", nil), tip.Tip.FocusPoint)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", tr.T(lang, "tip.insightfulTip", nil), tip.Tip.InsightfulTip)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(tipCmd)
	tipCmd.Flags().BoolVar(&tipRefresh, "refresh", false, "Regenerate even if a tip is cached for today")
}
