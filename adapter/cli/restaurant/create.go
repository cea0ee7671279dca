package restaurant

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/resto/adapter/cli"
	"github.com/felixgeelhaar/resto/internal/guide/application/commands"
)

var (
	createDescription string
	createWebsite     string
	createStreet      string
	createCityID      int64
	createTypeID      int64
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new restaurant",
	Long: `Create a new restaurant in an existing city with an existing type.

Examples:
  resto restaurant create "Les Trois Couronnes" --city 1 --type 2 --street "Rue du Bourg 8"
  resto restaurant create "Le Dauphin" --city 3 --type 1 --street "Quai 12" --website http://dauphin.ch`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateRestaurantHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		created, err := app.CreateRestaurantHandler.Execute(cmd.Context(), commands.CreateRestaurantCommand{
			Name:        args[0],
			Description: createDescription,
			Website:     createWebsite,
			Street:      createStreet,
			CityID:      createCityID,
			TypeID:      createTypeID,
		})
		if err != nil {
			return cli.FormatError(err)
		}

		fmt.Printf("Restaurant created: %d\n", created.ID())
		fmt.Printf("  name: %s\n", created.Name())
		fmt.Printf("  city: %s\n", created.City().Name())
		fmt.Printf("  type: %s\n", created.Type().Label())

		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createDescription, "description", "", "restaurant description")
	createCmd.Flags().StringVar(&createWebsite, "website", "", "restaurant website")
	createCmd.Flags().StringVar(&createStreet, "street", "", "street address")
	createCmd.Flags().Int64Var(&createCityID, "city", 0, "city id (required)")
	createCmd.Flags().Int64Var(&createTypeID, "type", 0, "restaurant type id (required)")
	_ = createCmd.MarkFlagRequired("city")
	_ = createCmd.MarkFlagRequired("type")
}
