package restaurant

import (
	"github.com/spf13/cobra"
)

// Cmd is the restaurant command group
var Cmd = &cobra.Command{
	Use:   "restaurant",
	Short: "Manage restaurants",
	Long:  `Create, list, update, relocate, and delete restaurants.`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(moveCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(typesCmd)
}
