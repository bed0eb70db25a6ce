package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show fleet-wide statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := apiClient.Statistics().Global(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch statistics: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(stats)
			}

			table := NewTable("METRIC", "VALUE")
			table.AddRow("Total employees", strconv.Itoa(stats.TotalEmployees))
			table.AddRow("Active subscriptions", strconv.Itoa(stats.ActiveSubscriptions))
			table.AddRow("Expired subscriptions", strconv.Itoa(stats.ExpiredSubscriptions))
			table.AddRow("Expiring within 7 days", strconv.Itoa(stats.ExpiringSoon))
			table.AddRow("Total revenue", fmt.Sprintf("$%.2f", stats.TotalRevenue))
			table.AddRow("Most popular plan", stats.MostPopularPlan)
			table.Render()
			return nil
		},
	}
}
