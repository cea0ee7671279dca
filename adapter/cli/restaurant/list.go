package restaurant

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/resto/adapter/cli"
	"github.com/felixgeelhaar/resto/internal/guide/application/queries"
)

var (
	filterName string
	filterCity string
	filterType int64
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List restaurants",
	Long: `List restaurants, optionally filtered by exact name, by a city name
fragment (case-insensitive), or by restaurant type.

Examples:
  resto restaurant list
  resto restaurant list --name "Les Trois Couronnes"
  resto restaurant list --city sion
  resto restaurant list --type 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListRestaurantsHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		query := queries.ListRestaurantsQuery{
			Name:         filterName,
			CityFragment: filterCity,
		}
		if cmd.Flags().Changed("type") {
			query.TypeID = &filterType
		}

		restaurants, err := app.ListRestaurantsHandler.Execute(cmd.Context(), query)
		if err != nil {
			return cli.FormatError(err)
		}

		if len(restaurants) == 0 {
			fmt.Println("No restaurants found.")
			return nil
		}

		fmt.Printf("Found %d restaurant(s):\n\n", len(restaurants))
		for _, r := range restaurants {
			fmt.Printf("  [%d] %s (%s)\n", r.ID, r.Name, r.Type.Label)
			fmt.Printf("      %s, %s %s\n", r.Street, r.City.ZipCode, r.City.Name)
			fmt.Printf("      evaluations: %d (likes %d, dislikes %d, comments %d)\n",
				r.EvaluationCount, r.LikeCount, r.DislikeCount, len(r.CompleteEvaluations))
		}

		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&filterName, "name", "", "exact restaurant name")
	listCmd.Flags().StringVar(&filterCity, "city", "", "city name fragment")
	listCmd.Flags().Int64Var(&filterType, "type", 0, "restaurant type id")
}
