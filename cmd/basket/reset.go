package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basket-md/basket/internal/database"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all lists, items, history and staples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				ok, err := confirm(cmd, "Delete ALL basket data? Consider 'basket export' first. (y/N) ")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled")
					return nil
				}
			}

			return withDatabase(cmd, func(_ context.Context, dbCtx *database.Context) error {
				if err := database.ClearDatabase(dbCtx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All data deleted")
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")

	return cmd
}
