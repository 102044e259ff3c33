package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basket-md/basket/internal/usecase"
)

func newItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Add, check and remove items on a list",
	}

	cmd.AddCommand(newItemAddCmd())
	cmd.AddCommand(newItemCheckCmd("check", true))
	cmd.AddCommand(newItemCheckCmd("uncheck", false))
	cmd.AddCommand(newItemRmCmd())

	return cmd
}

func newItemAddCmd() *cobra.Command {
	var department string

	cmd := &cobra.Command{
		Use:   "add <list> <name>",
		Short: "Add an item to a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBasket(cmd, func(ctx context.Context, uc *usecase.Basket) error {
				item, err := uc.AddItem(ctx, args[0], args[1], department)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added '%s' (%s)\n", item.Name, item.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&department, "dept", "d", "", "Department ID or name")

	return cmd
}

func newItemCheckCmd(use string, checked bool) *cobra.Command {
	short, done := "Check off an item", "Checked"
	if !checked {
		short, done = "Uncheck an item", "Unchecked"
	}

	return &cobra.Command{
		Use:   use + " <list> <item>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBasket(cmd, func(ctx context.Context, uc *usecase.Basket) error {
				item, err := uc.CheckItem(ctx, args[0], args[1], checked)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s '%s'\n", done, item.Name)
				return nil
			})
		},
	}
}

func newItemRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <list> <item>",
		Short: "Remove an item from a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBasket(cmd, func(ctx context.Context, uc *usecase.Basket) error {
				item, err := uc.RemoveItem(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed '%s'\n", item.Name)
				return nil
			})
		},
	}
}
