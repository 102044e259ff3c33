package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/basket-md/basket/internal/application"
	"github.com/basket-md/basket/internal/config"
	"github.com/basket-md/basket/internal/database"
)

type infoOutput struct {
	Version       string `json:"version"`
	DataDir       string `json:"dataDir"`
	Database      string `json:"database"`
	BackupsDir    string `json:"backupsDir"`
	SchemaVersion uint   `json:"schemaVersion"`
	SchemaDirty   bool   `json:"schemaDirty"`
	Departments   int    `json:"departments"`
	Lists         int    `json:"lists"`
	Items         int    `json:"items"`
	RecentItems   int    `json:"recentItems"`
	Staples       int    `json:"staples"`
	ItemPairs     int    `json:"itemPairs"`
}

func newInfoCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show storage locations and record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			return withDatabase(cmd, func(ctx context.Context, dbCtx *database.Context) error {
				schemaVersion, dirty, err := database.SchemaVersion(dbCtx)
				if err != nil {
					return err
				}
				snap, err := application.ExportSnapshot(ctx, dbCtx, time.Now())
				if err != nil {
					return err
				}

				path := dbPath
				if path == "" {
					path = config.GetDBPath()
				}

				output := infoOutput{
					Version:       version,
					DataDir:       config.GetBasketDir(),
					Database:      path,
					BackupsDir:    config.GetBackupsDir(),
					SchemaVersion: schemaVersion,
					SchemaDirty:   dirty,
					Departments:   len(snap.Departments),
					Lists:         len(snap.ShoppingLists),
					Items:         len(snap.Items),
					RecentItems:   len(snap.RecentItems),
					Staples:       len(snap.Staples),
					ItemPairs:     len(snap.ItemPairs),
				}

				if format == "json" {
					return outputJSON(cmd, output)
				}
				outputInfoTable(cmd, output)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

func outputInfoTable(cmd *cobra.Command, info infoOutput) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Version:      %s\n", info.Version)
	fmt.Fprintf(w, "Data Dir:     %s\n", info.DataDir)
	fmt.Fprintf(w, "Database:     %s\n", info.Database)
	fmt.Fprintf(w, "Backups Dir:  %s\n", info.BackupsDir)
	fmt.Fprintf(w, "Schema:       %d (dirty: %t)\n", info.SchemaVersion, info.SchemaDirty)
	fmt.Fprintf(w, "Departments:  %d\n", info.Departments)
	fmt.Fprintf(w, "Lists:        %d\n", info.Lists)
	fmt.Fprintf(w, "Items:        %d\n", info.Items)
	fmt.Fprintf(w, "Recent Items: %d\n", info.RecentItems)
	fmt.Fprintf(w, "Staples:      %d\n", info.Staples)
	fmt.Fprintf(w, "Item Pairs:   %d\n", info.ItemPairs)
}
