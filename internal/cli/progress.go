package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/malakyounes2004-ai/fitfix/pkg/client"
)

func newProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Track client progress logs",
	}

	cmd.AddCommand(newProgressListCmd())
	cmd.AddCommand(newProgressAddCmd())
	cmd.AddCommand(newProgressReportCmd())

	return cmd
}

func newProgressListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <employee-id>",
		Short: "List progress entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}

			entries, err := apiClient.Progress().List(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to list progress: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(entries)
			}

			table := NewTable("DATE", "CLIENT", "WORKOUT", "MEAL PLAN")
			for _, e := range entries {
				table.AddRow(
					e.Date.Format("2006-01-02"),
					truncate(e.ClientName, 25),
					boolMark(e.WorkoutCompleted),
					boolMark(e.MealPlanFollowed),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newProgressAddCmd() *cobra.Command {
	var clientName string
	var workout, meal bool

	cmd := &cobra.Command{
		Use:   "add <employee-id>",
		Short: "Record one day of client progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}

			entry, err := apiClient.Progress().AddEntry(context.Background(), id, client.AddEntryRequest{
				ClientName:       clientName,
				WorkoutCompleted: workout,
				MealPlanFollowed: meal,
			})
			if err != nil {
				return fmt.Errorf("failed to add entry: %w", err)
			}

			fmt.Printf("Recorded entry %d for %s\n", entry.ID, entry.Date.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&clientName, "client", "", "client name")
	cmd.Flags().BoolVar(&workout, "workout", false, "workout completed")
	cmd.Flags().BoolVar(&meal, "meal", false, "meal plan followed")

	return cmd
}

func newProgressReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <employee-id>",
		Short: "Show aggregated progress metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}

			stats, err := apiClient.Progress().Report(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get progress report: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(stats)
			}

			table := NewTable("METRIC", "VALUE")
			table.AddRow("Active days", strconv.Itoa(stats.ActiveDays))
			table.AddRow("Skipped days", strconv.Itoa(stats.SkippedDays))
			table.AddRow("Completion", fmt.Sprintf("%d%%", stats.CompletionPercentage))
			table.AddRow("Calories compliance", fmt.Sprintf("%d%%", stats.CaloriesCompliance))
			table.AddRow("Workout compliance", fmt.Sprintf("%d%%", stats.WorkoutCompliance))
			table.Render()
			return nil
		},
	}
}
