package restaurant

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/resto/adapter/cli"
	"github.com/felixgeelhaar/resto/internal/guide/application/commands"
)

var (
	updateVersion     int64
	updateName        string
	updateDescription string
	updateWebsite     string
	updateTypeID      int64
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a restaurant's details",
	Long: `Update a restaurant's name, description, website or type.

The --version flag must carry the version shown by 'restaurant show'. The
update is rejected when someone else modified the restaurant in between.

Examples:
  resto restaurant update 4 --version 2 --name "Les Trois Couronnes"
  resto restaurant update 4 --version 2 --name "Les Trois Couronnes" --type 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.UpdateRestaurantDetailsHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid restaurant id: %s", args[0])
		}

		details := commands.UpdateRestaurantDetailsCommand{
			RestaurantID:    id,
			ExpectedVersion: updateVersion,
			Name:            updateName,
			Description:     updateDescription,
			Website:         updateWebsite,
		}
		if cmd.Flags().Changed("type") {
			details.TypeID = &updateTypeID
		}

		updated, err := app.UpdateRestaurantDetailsHandler.Execute(cmd.Context(), details)
		if err != nil {
			return cli.FormatError(err)
		}

		fmt.Printf("Restaurant updated: %d\n", updated.ID())
		fmt.Printf("  name: %s\n", updated.Name())
		fmt.Printf("  version: %d\n", updated.Version())

		return nil
	},
}

func init() {
	updateCmd.Flags().Int64Var(&updateVersion, "version", 0, "version observed on the last read (required)")
	updateCmd.Flags().StringVar(&updateName, "name", "", "new restaurant name (required)")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "new description")
	updateCmd.Flags().StringVar(&updateWebsite, "website", "", "new website")
	updateCmd.Flags().Int64Var(&updateTypeID, "type", 0, "new restaurant type id")
	_ = updateCmd.MarkFlagRequired("version")
	_ = updateCmd.MarkFlagRequired("name")
}
