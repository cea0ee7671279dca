package restaurant

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/resto/adapter/cli"
	"github.com/felixgeelhaar/resto/internal/guide/application/commands"
)

var deleteVersion int64

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a restaurant and all its evaluations",
	Long: `Delete a restaurant. All its likes, comments and grades go with it.
Deleting a restaurant that no longer exists is not an error.

Example:
  resto restaurant delete 4 --version 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.DeleteRestaurantHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid restaurant id: %s", args[0])
		}

		err = app.DeleteRestaurantHandler.Execute(cmd.Context(), commands.DeleteRestaurantCommand{
			RestaurantID:    id,
			ExpectedVersion: deleteVersion,
		})
		if err != nil {
			return cli.FormatError(err)
		}

		fmt.Printf("Restaurant %d deleted.\n", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().Int64Var(&deleteVersion, "version", 0, "version observed on the last read (required)")
	_ = deleteCmd.MarkFlagRequired("version")
}
