package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basket-md/basket/internal/usecase"
)

func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <list>",
		Short: "Finish a shopping trip",
		Long:  "Finish a shopping trip. Every pair of checked items is remembered as bought together.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBasket(cmd, func(ctx context.Context, uc *usecase.Basket) error {
				pairs, err := uc.CompleteTrip(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Trip complete: recorded %d item pair(s)\n", pairs)
				return nil
			})
		},
	}
}
