package review

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/resto/adapter/cli"
	"github.com/felixgeelhaar/resto/internal/guide/application/commands"
)

var (
	likeDislike   bool
	likeVisitDate string
	likeIPAddress string
)

var likeCmd = &cobra.Command{
	Use:   "like <restaurant-id>",
	Short: "Like or dislike a restaurant",
	Long: `Record a quick thumbs up or down for a restaurant visit.

Examples:
  resto review like 4 --ip 192.168.1.10
  resto review like 4 --down --date 2026-03-14 --ip 192.168.1.10`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.AddBasicEvaluationHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid restaurant id: %s", args[0])
		}

		visit := time.Now()
		if likeVisitDate != "" {
			visit, err = time.Parse(time.DateOnly, likeVisitDate)
			if err != nil {
				return fmt.Errorf("invalid visit date (use YYYY-MM-DD): %w", err)
			}
		}

		updated, err := app.AddBasicEvaluationHandler.Execute(cmd.Context(), commands.AddBasicEvaluationCommand{
			RestaurantID: id,
			Liked:        !likeDislike,
			VisitDate:    visit,
			IPAddress:    likeIPAddress,
		})
		if err != nil {
			return cli.FormatError(err)
		}

		if likeDislike {
			fmt.Printf("Dislike recorded for %s.\n", updated.Name())
		} else {
			fmt.Printf("Like recorded for %s.\n", updated.Name())
		}

		return nil
	},
}

func init() {
	likeCmd.Flags().BoolVar(&likeDislike, "down", false, "record a dislike instead of a like")
	likeCmd.Flags().StringVar(&likeVisitDate, "date", "", "visit date (YYYY-MM-DD, defaults to today)")
	likeCmd.Flags().StringVar(&likeIPAddress, "ip", "", "visitor ip address (required)")
	_ = likeCmd.MarkFlagRequired("ip")
}
