package review

import (
	"github.com/spf13/cobra"
)

// Cmd is the review command group
var Cmd = &cobra.Command{
	Use:   "review",
	Short: "Evaluate restaurants",
	Long:  `Leave a quick like or a full graded commentary on a restaurant.`,
}

func init() {
	Cmd.AddCommand(likeCmd)
	Cmd.AddCommand(commentCmd)
	Cmd.AddCommand(criteriaCmd)
}
