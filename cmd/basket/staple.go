package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/basket-md/basket/internal/shopping"
	"github.com/basket-md/basket/internal/suggest"
	"github.com/basket-md/basket/internal/usecase"
)

func newStapleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staple",
		Short: "Manage staple items",
		Long:  "Staples are items you buy regularly. basket reminds you of them on a cadence: always, weekly, biweekly or monthly.",
	}

	cmd.AddCommand(newStapleAddCmd())
	cmd.AddCommand(newStapleLsCmd())
	cmd.AddCommand(newStapleEditCmd())
	cmd.AddCommand(newStapleRmCmd())

	return cmd
}

func newStapleAddCmd() *cobra.Command {
	var (
		department string
		frequency  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a staple",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBasket(cmd, func(ctx context.Context, uc *usecase.Basket) error {
				staple, err := uc.AddStaple(ctx, args[0], department, frequency)
				if err != nil {
					if errors.Is(err, suggest.ErrDuplicateStaple) {
						return fmt.Errorf("'%s' is already a staple", args[0])
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added staple '%s' (%s)\n", staple.Name, staple.Frequency)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&department, "dept", "d", "", "Department ID or name")
	cmd.Flags().StringVar(&frequency, "freq", string(shopping.FrequencyWeekly), "Reminder frequency: always, weekly, biweekly or monthly")

	return cmd
}

type stapleOutputEntry struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DepartmentID  string `json:"departmentId,omitempty"`
	Department    string `json:"department"`
	Frequency     string `json:"frequency"`
	LastPurchased string `json:"lastPurchased,omitempty"`
	Due           bool   `json:"due"`
}

func newStapleLsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List staples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			return withBasket(cmd, func(ctx context.Context, uc *usecase.Basket) error {
				staples, err := uc.Staples(ctx)
				if err != nil {
					return err
				}
				departments, err := uc.DepartmentIndex(ctx)
				if err != nil {
					return err
				}

				now := time.Now()
				if format == "json" {
					output := make([]stapleOutputEntry, 0, len(staples))
					for _, s := range staples {
						due, _ := suggest.CheckStaple(s, now)
						entry := stapleOutputEntry{
							ID:           s.ID,
							Name:         s.Name,
							DepartmentID: s.DepartmentID,
							Department:   departments.Label(s.DepartmentID),
							Frequency:    string(s.Frequency),
							Due:          due,
						}
						if s.LastPurchased != nil {
							entry.LastPurchased = s.LastPurchased.Format(time.RFC3339)
						}
						output = append(output, entry)
					}
					return outputJSON(cmd, output)
				}

				t := newTable(cmd)
				t.AppendHeader(table.Row{"Name", "Frequency", "Department", "Last Bought", "Due", "ID"})
				for _, s := range staples {
					due, _ := suggest.CheckStaple(s, now)
					last := "never"
					if s.LastPurchased != nil {
						last = s.LastPurchased.Local().Format(timeLayout)
					}
					t.AppendRow(table.Row{s.Name, s.Frequency, departments.Label(s.DepartmentID), last, due, s.ID})
				}
				t.Render()
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

func newStapleEditCmd() *cobra.Command {
	var (
		name       string
		department string
		frequency  string
	)

	cmd := &cobra.Command{
		Use:   "edit <staple>",
		Short: "Change a staple's name, department or frequency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var update shopping.StapleUpdate
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("dept") {
				update.DepartmentID = &department
			}
			if cmd.Flags().Changed("freq") {
				f, err := shopping.ParseFrequency(frequency)
				if err != nil {
					return err
				}
				update.Frequency = &f
			}
			if update.IsEmpty() {
				return fmt.Errorf("nothing to change: pass --name, --dept or --freq")
			}

			return withBasket(cmd, func(ctx context.Context, uc *usecase.Basket) error {
				staple, err := uc.UpdateStaple(ctx, args[0], update)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated staple '%s' (%s)\n", staple.Name, staple.Frequency)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVarP(&department, "dept", "d", "", "New department ID or name")
	cmd.Flags().StringVar(&frequency, "freq", "", "New reminder frequency: always, weekly, biweekly or monthly")

	return cmd
}

func newStapleRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <staple>",
		Short: "Remove a staple",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBasket(cmd, func(ctx context.Context, uc *usecase.Basket) error {
				staple, err := uc.RemoveStaple(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed staple '%s'\n", staple.Name)
				return nil
			})
		},
	}
}
