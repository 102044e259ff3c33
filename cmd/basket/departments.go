package main

import (
	"context"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/basket-md/basket/internal/usecase"
)

type departmentOutputEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	SortOrder int    `json:"sortOrder"`
	IsDefault bool   `json:"isDefault"`
}

func newDepartmentsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "departments",
		Short: "List store departments",
		Long:  "List the departments items and staples can be filed under. Pass the ID or the name to --dept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			return withBasket(cmd, func(ctx context.Context, uc *usecase.Basket) error {
				departments, err := uc.Departments(ctx)
				if err != nil {
					return err
				}

				if format == "json" {
					output := make([]departmentOutputEntry, 0, len(departments))
					for _, d := range departments {
						output = append(output, departmentOutputEntry(d))
					}
					return outputJSON(cmd, output)
				}

				t := newTable(cmd)
				t.AppendHeader(table.Row{"", "Department", "ID", "Color"})
				for _, d := range departments {
					t.AppendRow(table.Row{d.Icon, d.Name, d.ID, d.Color})
				}
				t.Render()
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}
