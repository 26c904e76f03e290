package fitcoach

import (
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/irfanyen1363/fitcoach-cli/internal/model"
	"github.com/irfanyen1363/fitcoach-cli/internal/provider/openfoodfacts"
	"github.com/irfanyen1363/fitcoach-cli/internal/service"
	"github.com/spf13/cobra"
)

var lookupLog bool

var lookupCmd = &cobra.Command{
	Use:   "lookup <barcode>",
	Short: "Look up a product by barcode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		barcode := args[0]
		return withStore(func(db *sql.DB) error {
			lang, tr, err := outputLanguage(db)
			if err != nil {
				return err
			}
			client := &openfoodfacts.Client{}
			product, err := client.LookupProduct(cmd.Context(), barcode)
			if errors.Is(err, openfoodfacts.ErrProductNotFound) {
				return fmt.Errorf("no product found for barcode %q", barcode)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %.0f kcal / 100g\n", product.Name, product.CaloriesPer100)
			fmt.Fprintln(cmd.OutOrStdout(), tr.T(lang, "lookup.perServing", map[string]any{"serving": product.ServingSize}))

			if lookupLog {
				entry, err := service.AppendLog(db, service.AppendLogInput{
					Type:     model.LogFood,
					Name:     fmt.Sprintf("%s (%s)", product.Name, product.ServingSize),
					Calories: int(math.Round(product.CaloriesPer100)),
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
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().BoolVar(&lookupLog, "log", false, "Append the product to the log")
}
