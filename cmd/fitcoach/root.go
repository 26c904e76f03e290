package fitcoach

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "fitcoach",
	Short: "fitcoach tracks your weight-loss journey from the terminal",
	Long:  "fitcoach is a local-first weight-loss coaching CLI with calorie targets, food/workout/weight logging, trend charts, and AI-generated plans and daily tips.",
}

func Execute() {
	// A .env in the working directory may carry GEMINI_API_KEY.
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
