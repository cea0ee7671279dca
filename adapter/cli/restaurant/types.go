package restaurant

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/resto/adapter/cli"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the available restaurant types",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListTypesHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		types, err := app.ListTypesHandler.Execute(cmd.Context())
		if err != nil {
			return cli.FormatError(err)
		}

		for _, t := range types {
			if t.Description != "" {
				fmt.Printf("  [%d] %s - %s\n", t.ID, t.Label, t.Description)
			} else {
				fmt.Printf("  [%d] %s\n", t.ID, t.Label)
			}
		}

		return nil
	},
}
