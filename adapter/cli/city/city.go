package city

import (
	"github.com/spf13/cobra"
)

// Cmd is the city command group
var Cmd = &cobra.Command{
	Use:   "city",
	Short: "Manage cities",
	Long:  `List and create the cities restaurants belong to.`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(createCmd)
}
