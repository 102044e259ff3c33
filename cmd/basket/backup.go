package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/basket-md/basket/internal/application"
	"github.com/basket-md/basket/internal/backup"
	"github.com/basket-md/basket/internal/database"
)

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data to a JSON snapshot",
		Long:  "Export lists, items, purchase history, staples and item pairs to a JSON snapshot. Without --out the file is written to the backups directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(cmd, func(ctx context.Context, dbCtx *database.Context) error {
				path, hash, err := application.WriteBackup(ctx, dbCtx, out, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
				fmt.Fprintf(cmd.OutOrStdout(), "SHA-256: %s\n", hash)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: backups directory)")

	return cmd
}

func newImportCmd() *cobra.Command {
	var (
		hash    string
		replace bool
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON snapshot",
		Long: "Import a JSON snapshot. Records that already exist are kept and the snapshot's copy is skipped. " +
			"With --replace all current data is deleted first.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if replace && !force {
				ok, err := confirm(cmd, "Replace all current data with the snapshot? (y/N) ")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Import cancelled")
					return nil
				}
			}

			return withDatabase(cmd, func(ctx context.Context, dbCtx *database.Context) error {
				result, err := application.RestoreBackup(ctx, dbCtx, args[0], hash, replace)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"Imported %d record(s): %d department(s), %d list(s), %d item(s), %d recent item(s), %d staple(s), %d item pair(s)\n",
					result.Total(), result.Departments, result.Lists, result.Items, result.RecentItems, result.Staples, result.ItemPairs)
				if result.SkippedItems > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Skipped %d item(s) whose list was not found\n", result.SkippedItems)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&hash, "hash", "", "Expected SHA-256 of the file")
	cmd.Flags().BoolVar(&replace, "replace", false, "Delete all current data before importing")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func newBackupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backups",
		Short: "List snapshots in the backups directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			files, err := backup.List()
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No backups")
				return nil
			}

			t := newTable(cmd)
			t.AppendHeader(table.Row{"File", "Size", "Modified"})
			for _, f := range files {
				t.AppendRow(table.Row{f.Name, f.Size, f.ModTime.Local().Format(timeLayout)})
			}
			t.Render()
			return nil
		},
	}
}
