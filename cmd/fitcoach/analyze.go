package fitcoach

import (
	"database/sql"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/irfanyen1363/fitcoach-cli/internal/model"
	"github.com/irfanyen1363/fitcoach-cli/internal/service"
	"github.com/spf13/cobra"
)

var analyzeLog bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image-file>",
	Short: "Identify food in a photo and estimate its calories",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		image, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read image %s: %w", path, err)
		}
		mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
		if mimeType == "" {
			mimeType = "image/jpeg"
		}
		return withStore(func(db *sql.DB) error {
			lang, _, err := outputLanguage(db)
			if err != nil {
				return err
			}
			analysis, err := geminiClient().AnalyzeFoodImage(cmd.Context(), image, mimeType, lang)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ~%d kcal\n", analysis.Name, analysis.Calories)

			if analyzeLog {
				entry, err := service.AppendLog(db, service.AppendLogInput{
					Type:     model.LogFood,
					Name:     analysis.Name,
					Calories: analysis.Calories,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged food entry on %s\n", entry.Date)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeLog, "log", false, "Append the result to the log")
}
