package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newRecommendationCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "recommend <employee-id>",
		Aliases: []string{"recommendations", "rec"},
		Short:   "Show account health recommendations",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}

			recs, err := apiClient.Recommendations().ForEmployee(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to fetch recommendations: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(recs)
			}

			if len(recs) == 0 {
				fmt.Println("No recommendations. Account is in good standing.")
				return nil
			}

			for _, r := range recs {
				fmt.Printf("%s  %s\n", formatType(r.Type), r.Title)
				fmt.Printf("    %s\n", r.Message)
				if r.Action != "" {
					fmt.Printf("    Action: %s\n", r.Action)
				}
				fmt.Println()
			}
			return nil
		},
	}
}
