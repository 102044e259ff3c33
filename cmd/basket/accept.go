package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basket-md/basket/internal/usecase"
)

func newAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <list> <suggestion>",
		Short: "Add a suggested item to a list",
		Long:  "Add a suggested item to a list. The suggestion is given by its ID or item name as shown by 'basket suggest'.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBasket(cmd, func(ctx context.Context, uc *usecase.Basket) error {
				item, suggestion, err := uc.AcceptSuggestion(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added '%s' (%s suggestion)\n", item.Name, suggestion.Reason)
				return nil
			})
		},
	}
}
