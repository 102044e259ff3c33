package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/basket-md/basket/internal/shopping"
	"github.com/basket-md/basket/internal/usecase"
)

func newSuggestCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "suggest <list>",
		Short: "Suggest items to add to a list",
		Long: "Suggest up to five items for a list: staples that are due, items you add often " +
			"and items you usually buy together with what is already on the list.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			return withBasket(cmd, func(ctx context.Context, uc *usecase.Basket) error {
				suggestions, err := uc.Suggest(ctx, args[0])
				if err != nil {
					return err
				}
				departments, err := uc.DepartmentIndex(ctx)
				if err != nil {
					return err
				}

				if format == "json" {
					return outputJSON(cmd, toSuggestionEntries(suggestions, departments))
				}
				if len(suggestions) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No suggestions")
					return nil
				}
				outputSuggestionsTable(cmd, suggestions, departments)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

type suggestionOutputEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DepartmentID string `json:"departmentId,omitempty"`
	Department   string `json:"department"`
	Reason       string `json:"reason"`
	Details      string `json:"details"`
	Priority     int    `json:"priority"`
}

func toSuggestionEntries(suggestions []shopping.Suggestion, departments shopping.DepartmentIndex) []suggestionOutputEntry {
	output := make([]suggestionOutputEntry, 0, len(suggestions))
	for _, s := range suggestions {
		output = append(output, suggestionOutputEntry{
			ID:           s.ID,
			Name:         s.Name,
			DepartmentID: s.DepartmentID,
			Department:   departments.Label(s.DepartmentID),
			Reason:       string(s.Reason),
			Details:      s.Details,
			Priority:     s.Priority,
		})
	}
	return output
}

func outputSuggestionsTable(cmd *cobra.Command, suggestions []shopping.Suggestion, departments shopping.DepartmentIndex) {
	names := make([]string, 0, len(suggestions))
	labels := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		names = append(names, s.Name)
		labels = append(labels, departments.Label(s.DepartmentID))
	}
	nameWidth := maxWidth(names, 4, 30)
	deptWidth := maxWidth(labels, 10, 22)

	// "#", Item, Reason ("frequency"), Department, Priority
	detailsWidth := flexWidth([]int{2, nameWidth, 9, deptWidth, 8}, 15)

	t := newTable(cmd)
	t.AppendHeader(table.Row{"#", "Item", "Reason", "Department", "Priority", "Details"})
	for i, s := range suggestions {
		t.AppendRow(table.Row{
			i + 1,
			truncate(s.Name, nameWidth),
			s.Reason,
			truncate(departments.Label(s.DepartmentID), deptWidth),
			s.Priority,
			truncate(s.Details, detailsWidth),
		})
	}
	t.Render()
}
