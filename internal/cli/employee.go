package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/malakyounes2004-ai/fitfix/pkg/client"
)

func newEmployeeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employee",
		Aliases: []string{"employees", "emp"},
		Short:   "Manage employee accounts",
	}

	cmd.AddCommand(newEmployeeListCmd())
	cmd.AddCommand(newEmployeeGetCmd())
	cmd.AddCommand(newEmployeeCreateCmd())
	cmd.AddCommand(newEmployeeDeleteCmd())
	cmd.AddCommand(newEmployeeReportCmd())
	cmd.AddCommand(newEmployeeSubscribeCmd())
	cmd.AddCommand(newEmployeePayCmd())

	return cmd
}

func parseEmployeeID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid employee ID %q", arg)
	}
	return id, nil
}

func newEmployeeListCmd() *cobra.Command {
	var role, search string
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			opts := &client.EmployeeListOptions{
				Role:   role,
				Search: search,
			}
			if activeOnly {
				active := true
				opts.Active = &active
			}

			page, err := apiClient.Employees().List(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to list employees: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(page.Data)
			}

			table := NewTable("ID", "NAME", "EMAIL", "ROLE", "ACTIVE")
			for _, emp := range page.Data {
				table.AddRow(
					strconv.FormatInt(emp.ID, 10),
					truncate(emp.DisplayName, 30),
					truncate(emp.Email, 35),
					emp.Role,
					boolMark(emp.IsActive),
				)
			}
			table.Render()
			fmt.Printf("\n%d of %d employees (page %d)\n", len(page.Data), page.TotalItems, page.Page)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "filter by role (coach, manager)")
	cmd.Flags().StringVar(&search, "search", "", "search in name and email")
	cmd.Flags().BoolVar(&activeOnly, "active", false, "only active accounts")

	return cmd
}

func newEmployeeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}

			emp, err := apiClient.Employees().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get employee: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(emp)
			}

			fmt.Printf("ID:       %d\n", emp.ID)
			fmt.Printf("Name:     %s\n", emp.DisplayName)
			fmt.Printf("Email:    %s\n", emp.Email)
			fmt.Printf("Role:     %s\n", emp.Role)
			fmt.Printf("Active:   %s\n", boolMark(emp.IsActive))
			if emp.PhoneNumber != "" {
				fmt.Printf("Phone:    %s\n", emp.PhoneNumber)
			}
			return nil
		},
	}
}

func newEmployeeCreateCmd() *cobra.Command {
	var name, email, role, phone string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an employee account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				name = promptInput("Display name: ")
			}
			if email == "" {
				email = promptInput("Email: ")
			}

			emp, err := apiClient.Employees().Create(context.Background(), client.CreateEmployeeRequest{
				DisplayName: name,
				Email:       email,
				Role:        role,
				PhoneNumber: phone,
			})
			if err != nil {
				return fmt.Errorf("failed to create employee: %w", err)
			}

			fmt.Printf("Created employee %d (%s)\n", emp.ID, emp.DisplayName)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&role, "role", "", "role (coach, manager)")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")

	return cmd
}

func newEmployeeDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}

			if !force {
				answer := promptInput(fmt.Sprintf("Delete employee %d and all records? [y/N]: ", id))
				if answer != "y" && answer != "Y" {
					fmt.Println("Aborted")
					return nil
				}
			}

			if err := apiClient.Employees().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete employee: %w", err)
			}

			fmt.Printf("Deleted employee %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func newEmployeeReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <id>",
		Short: "Show the aggregate account report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}

			rep, err := apiClient.Employees().Report(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get report: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(rep)
			}

			if rep.Subscription != nil {
				sub := rep.Subscription
				fmt.Printf("Subscription:  %s (%s)\n", sub.PlanName, formatStatus(sub.Status))
				if sub.ExpirationDate != nil {
					fmt.Printf("Expires:       %s\n", sub.ExpirationDate.Format("2006-01-02"))
				}
			} else {
				fmt.Println("Subscription:  (none)")
			}
			if rep.Activity != nil {
				act := rep.Activity
				fmt.Printf("Clients:       %d\n", act.UsersManaged)
				fmt.Printf("Plans:         %d meal, %d workout\n", act.MealPlansCreated, act.WorkoutPlansCreated)
				if act.LastLogin != nil {
					fmt.Printf("Last login:    %s\n", act.LastLogin.Format("2006-01-02"))
				}
			}
			fmt.Printf("Payments:      %d on file, $%.2f total\n", len(rep.PaymentHistory), rep.TotalAmountPaid)
			return nil
		},
	}
}

func newEmployeeSubscribeCmd() *cobra.Command {
	var plan string
	var days int

	cmd := &cobra.Command{
		Use:   "subscribe <id>",
		Short: "Set an employee's subscription plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}
			if plan == "" {
				return fmt.Errorf("--plan is required")
			}

			now := time.Now()
			sub, err := apiClient.Employees().SetSubscription(context.Background(), id, client.SetSubscriptionRequest{
				PlanName:     plan,
				DurationDays: days,
				StartDate:    &now,
			})
			if err != nil {
				return fmt.Errorf("failed to set subscription: %w", err)
			}

			fmt.Printf("Subscribed employee %d to %s", id, sub.PlanName)
			if sub.ExpirationDate != nil {
				fmt.Printf(" until %s", sub.ExpirationDate.Format("2006-01-02"))
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&plan, "plan", "", "plan name")
	cmd.Flags().IntVar(&days, "days", 30, "subscription duration in days")

	return cmd
}

func newEmployeePayCmd() *cobra.Command {
	var amount float64
	var payType string

	cmd := &cobra.Command{
		Use:   "pay <id>",
		Short: "Record a payment for an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}

			rec, err := apiClient.Employees().RecordPayment(context.Background(), id, client.RecordPaymentRequest{
				Type:   payType,
				Amount: amount,
			})
			if err != nil {
				return fmt.Errorf("failed to record payment: %w", err)
			}

			fmt.Printf("Recorded $%.2f %s payment (id %d)\n", rec.Amount, rec.Type, rec.ID)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "payment amount")
	cmd.Flags().StringVar(&payType, "type", "subscription", "payment type (subscription, renewal, upgrade)")

	return cmd
}
