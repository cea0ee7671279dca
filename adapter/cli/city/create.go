package city

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/resto/adapter/cli"
	"github.com/felixgeelhaar/resto/internal/guide/application/commands"
)

var zipCode string

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new city",
	Long: `Create a new city.

Example:
  resto city create Sion --zip 1950`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateCityHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		created, err := app.CreateCityHandler.Execute(cmd.Context(), commands.CreateCityCommand{
			ZipCode: zipCode,
			Name:    args[0],
		})
		if err != nil {
			return cli.FormatError(err)
		}

		fmt.Printf("City created: %d\n", created.ID())
		fmt.Printf("  %s %s\n", created.ZipCode(), created.Name())

		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&zipCode, "zip", "", "zip code (required)")
	_ = createCmd.MarkFlagRequired("zip")
}
