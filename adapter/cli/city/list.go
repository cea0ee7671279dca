package city

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/resto/adapter/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cities",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListCitiesHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		cities, err := app.ListCitiesHandler.Execute(cmd.Context())
		if err != nil {
			return cli.FormatError(err)
		}

		if len(cities) == 0 {
			fmt.Println("No cities yet. Add one with: resto city create")
			return nil
		}

		for _, c := range cities {
			fmt.Printf("  [%d] %s %s\n", c.ID, c.ZipCode, c.Name)
		}

		return nil
	},
}
