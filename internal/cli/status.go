package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show fleet summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			stats, err := apiClient.Statistics().Global(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch statistics: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(stats)
			}

			fmt.Println("FitFix Fleet Summary")
			fmt.Println(strings.Repeat("=", 40))
			fmt.Printf("  Employees:       %d\n", stats.TotalEmployees)
			fmt.Printf("  Active subs:     %d\n", stats.ActiveSubscriptions)
			fmt.Printf("  Expired subs:    %d\n", stats.ExpiredSubscriptions)
			if stats.ExpiringSoon > 0 {
				fmt.Printf("  Expiring soon:   %d (within 7 days)\n", stats.ExpiringSoon)
			}
			fmt.Printf("  Total revenue:   $%.2f\n", stats.TotalRevenue)
			fmt.Printf("  Popular plan:    %s\n", stats.MostPopularPlan)

			return nil
		},
	}
}
