package restaurant

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/resto/adapter/cli"
	"github.com/felixgeelhaar/resto/internal/guide/application/queries"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a restaurant with all its evaluations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.GetRestaurantHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid restaurant id: %s", args[0])
		}

		r, err := app.GetRestaurantHandler.Execute(cmd.Context(), queries.GetRestaurantQuery{RestaurantID: id})
		if err != nil {
			return cli.FormatError(err)
		}

		fmt.Printf("%s  [id %d, version %d]\n", r.Name, r.ID, r.Version)
		if r.Description != "" {
			fmt.Printf("  %s\n", r.Description)
		}
		if r.Website != "" {
			fmt.Printf("  %s\n", r.Website)
		}
		fmt.Printf("  %s, %s %s\n", r.Street, r.City.ZipCode, r.City.Name)
		fmt.Printf("  type: %s\n", r.Type.Label)

		fmt.Printf("\nLikes: %d up, %d down\n", r.LikeCount, r.DislikeCount)

		if len(r.CompleteEvaluations) > 0 {
			fmt.Printf("\nComments (%d):\n", len(r.CompleteEvaluations))
			for _, c := range r.CompleteEvaluations {
				fmt.Printf("  %s on %s:\n", c.Username, c.VisitDate.Format(time.DateOnly))
				fmt.Printf("    %s\n", c.Comment)
				for _, g := range c.Grades {
					fmt.Printf("    %s: %d/5\n", g.Criterion.Name, g.Value)
				}
			}
		}

		return nil
	},
}
