package restaurant

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/resto/adapter/cli"
	"github.com/felixgeelhaar/resto/internal/guide/application/commands"
)

var (
	moveVersion int64
	moveStreet  string
	moveCityID  int64
)

var moveCmd = &cobra.Command{
	Use:   "move <id>",
	Short: "Move a restaurant to a new address",
	Long: `Move a restaurant to a new street and city.

Example:
  resto restaurant move 4 --version 2 --street "Avenue de la Gare 3" --city 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.UpdateRestaurantAddressHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid restaurant id: %s", args[0])
		}

		updated, err := app.UpdateRestaurantAddressHandler.Execute(cmd.Context(), commands.UpdateRestaurantAddressCommand{
			RestaurantID:    id,
			ExpectedVersion: moveVersion,
			Street:          moveStreet,
			CityID:          moveCityID,
		})
		if err != nil {
			return cli.FormatError(err)
		}

		fmt.Printf("Restaurant moved: %d\n", updated.ID())
		fmt.Printf("  address: %s, %s %s\n", updated.Street(), updated.City().ZipCode(), updated.City().Name())
		fmt.Printf("  version: %d\n", updated.Version())

		return nil
	},
}

func init() {
	moveCmd.Flags().Int64Var(&moveVersion, "version", 0, "version observed on the last read (required)")
	moveCmd.Flags().StringVar(&moveStreet, "street", "", "new street address (required)")
	moveCmd.Flags().Int64Var(&moveCityID, "city", 0, "new city id (required)")
	_ = moveCmd.MarkFlagRequired("version")
	_ = moveCmd.MarkFlagRequired("street")
	_ = moveCmd.MarkFlagRequired("city")
}
