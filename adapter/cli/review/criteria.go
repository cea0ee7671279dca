package review

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/resto/adapter/cli"
)

var criteriaCmd = &cobra.Command{
	Use:   "criteria",
	Short: "List the evaluation criteria",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListCriteriaHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		criteria, err := app.ListCriteriaHandler.Execute(cmd.Context())
		if err != nil {
			return cli.FormatError(err)
		}

		for _, c := range criteria {
			if c.Description != "" {
				fmt.Printf("  [%d] %s - %s\n", c.ID, c.Name, c.Description)
			} else {
				fmt.Printf("  [%d] %s\n", c.ID, c.Name)
			}
		}

		return nil
	},
}
