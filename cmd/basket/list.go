package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/basket-md/basket/internal/shopping"
	"github.com/basket-md/basket/internal/usecase"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Manage shopping lists",
	}

	cmd.AddCommand(newListCreateCmd())
	cmd.AddCommand(newListLsCmd())
	cmd.AddCommand(newListShowCmd())
	cmd.AddCommand(newListRmCmd())

	return cmd
}

func newListCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a shopping list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBasket(cmd, func(ctx context.Context, uc *usecase.Basket) error {
				list, err := uc.CreateList(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created list '%s' (%s)\n", list.Name, list.ID)
				return nil
			})
		},
	}
}

type listOutputEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func newListLsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List shopping lists, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			return withBasket(cmd, func(ctx context.Context, uc *usecase.Basket) error {
				lists, err := uc.Lists(ctx)
				if err != nil {
					return err
				}

				if format == "json" {
					output := make([]listOutputEntry, 0, len(lists))
					for _, list := range lists {
						output = append(output, listOutputEntry{
							ID:        list.ID,
							Name:      list.Name,
							CreatedAt: list.CreatedAt.Format(time.RFC3339),
							UpdatedAt: list.UpdatedAt.Format(time.RFC3339),
						})
					}
					return outputJSON(cmd, output)
				}

				t := newTable(cmd)
				t.AppendHeader(table.Row{"Name", "ID", "Updated"})
				for _, list := range lists {
					t.AppendRow(table.Row{list.Name, list.ID, list.UpdatedAt.Local().Format(timeLayout)})
				}
				t.Render()
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

type itemOutputEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DepartmentID string `json:"departmentId,omitempty"`
	Department   string `json:"department"`
	IsChecked    bool   `json:"isChecked"`
	CheckedAt    string `json:"checkedAt,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

type showOutput struct {
	List  listOutputEntry   `json:"list"`
	Items []itemOutputEntry `json:"items"`
}

func newListShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <list>",
		Short: "Show the items on a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			return withBasket(cmd, func(ctx context.Context, uc *usecase.Basket) error {
				list, items, err := uc.ShowList(ctx, args[0])
				if err != nil {
					return err
				}
				departments, err := uc.DepartmentIndex(ctx)
				if err != nil {
					return err
				}

				if format == "json" {
					return outputJSON(cmd, toShowOutput(list, items, departments))
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d items)\n", list.Name, len(items))
				outputItemsTable(cmd, items, departments)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

func toShowOutput(list *shopping.List, items []shopping.Item, departments shopping.DepartmentIndex) showOutput {
	output := showOutput{
		List: listOutputEntry{
			ID:        list.ID,
			Name:      list.Name,
			CreatedAt: list.CreatedAt.Format(time.RFC3339),
			UpdatedAt: list.UpdatedAt.Format(time.RFC3339),
		},
		Items: make([]itemOutputEntry, 0, len(items)),
	}
	for _, item := range items {
		entry := itemOutputEntry{
			ID:           item.ID,
			Name:         item.Name,
			DepartmentID: item.DepartmentID,
			Department:   departments.Label(item.DepartmentID),
			IsChecked:    item.IsChecked,
			CreatedAt:    item.CreatedAt.Format(time.RFC3339),
		}
		if item.CheckedAt != nil {
			entry.CheckedAt = item.CheckedAt.Format(time.RFC3339)
		}
		output.Items = append(output.Items, entry)
	}
	return output
}

func outputItemsTable(cmd *cobra.Command, items []shopping.Item, departments shopping.DepartmentIndex) {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	nameWidth := maxWidth(names, 10, 40)

	t := newTable(cmd)
	t.AppendHeader(table.Row{"", "Item", "Department", "ID"})
	for _, item := range items {
		mark := "[ ]"
		if item.IsChecked {
			mark = "[x]"
		}
		t.AppendRow(table.Row{mark, truncate(item.Name, nameWidth), departments.Label(item.DepartmentID), item.ID})
	}
	t.Render()
}

func newListRmCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <list>",
		Short: "Delete a list and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				ok, err := confirm(cmd, fmt.Sprintf("Delete list '%s' and all of its items? (y/N) ", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled")
					return nil
				}
			}

			return withBasket(cmd, func(ctx context.Context, uc *usecase.Basket) error {
				list, err := uc.DeleteList(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted list '%s'\n", list.Name)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
