package review

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/resto/adapter/cli"
	"github.com/felixgeelhaar/resto/internal/guide/application/commands"
)

var (
	commentText      string
	commentUsername  string
	commentVisitDate string
	commentGrades    []string
)

var commentCmd = &cobra.Command{
	Use:   "comment <restaurant-id>",
	Short: "Leave a full commentary with grades",
	Long: `Leave a commentary on a restaurant with one grade per criterion.
Grades use the form <criterion-id>=<value> with values from 1 to 5.
The whole submission is validated before anything is stored; a single bad
grade rejects the entire commentary.

Example:
  resto review comment 4 --user gourmet42 --text "Excellent meal." \
    --grade 1=5 --grade 2=4 --grade 3=5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.AddCompleteEvaluationHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid restaurant id: %s", args[0])
		}

		visit := time.Now()
		if commentVisitDate != "" {
			visit, err = time.Parse(time.DateOnly, commentVisitDate)
			if err != nil {
				return fmt.Errorf("invalid visit date (use YYYY-MM-DD): %w", err)
			}
		}

		grades := make([]commands.GradeInput, 0, len(commentGrades))
		for _, g := range commentGrades {
			input, err := parseGrade(g)
			if err != nil {
				return err
			}
			grades = append(grades, input)
		}

		updated, err := app.AddCompleteEvaluationHandler.Execute(cmd.Context(), commands.AddCompleteEvaluationCommand{
			RestaurantID: id,
			VisitDate:    visit,
			Comment:      commentText,
			Username:     commentUsername,
			Grades:       grades,
		})
		if err != nil {
			return cli.FormatError(err)
		}

		fmt.Printf("Comment recorded for %s (%d grade(s)).\n", updated.Name(), len(grades))
		return nil
	},
}

func parseGrade(s string) (commands.GradeInput, error) {
	parts := strings.SplitN(s, "=", 2)
	if len(parts) != 2 {
		return commands.GradeInput{}, fmt.Errorf("invalid grade %q (use <criterion-id>=<value>)", s)
	}
	criterionID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return commands.GradeInput{}, fmt.Errorf("invalid criterion id in grade %q", s)
	}
	value, err := strconv.Atoi(parts[1])
	if err != nil {
		return commands.GradeInput{}, fmt.Errorf("invalid value in grade %q", s)
	}
	return commands.GradeInput{CriterionID: criterionID, Value: value}, nil
}

func init() {
	commentCmd.Flags().StringVar(&commentText, "text", "", "commentary text (required)")
	commentCmd.Flags().StringVar(&commentUsername, "user", "", "username (required)")
	commentCmd.Flags().StringVar(&commentVisitDate, "date", "", "visit date (YYYY-MM-DD, defaults to today)")
	commentCmd.Flags().StringArrayVar(&commentGrades, "grade", nil, "grade as <criterion-id>=<value>, repeatable")
	_ = commentCmd.MarkFlagRequired("text")
	_ = commentCmd.MarkFlagRequired("user")
}
