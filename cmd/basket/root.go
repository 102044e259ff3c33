package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/basket-md/basket/internal/config"
	"github.com/basket-md/basket/internal/database"
	"github.com/basket-md/basket/internal/logging"
	"github.com/basket-md/basket/internal/usecase"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:          "basket",
	Short:        "basket - shopping lists that remember what you buy",
	Long:         "basket keeps shopping lists in a local SQLite database and suggests items from your staples, purchase history and items you buy together.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		slog.SetDefault(logging.New(os.Stderr, cfg.Log))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the database file (default: $BASKET_DIR/basket.db)")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newItemCmd())
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newAcceptCmd())
	rootCmd.AddCommand(newDoneCmd())
	rootCmd.AddCommand(newStapleCmd())
	rootCmd.AddCommand(newDepartmentsCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newBackupsCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newMCPCmd())
}

// withDatabase opens the database for the duration of fn.
func withDatabase(cmd *cobra.Command, fn func(ctx context.Context, dbCtx *database.Context) error) error {
	dbCtx, err := database.CreateDatabase(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = database.CloseDatabase(dbCtx)
	}()

	return fn(cmd.Context(), dbCtx)
}

// withBasket is withDatabase for commands that only need the use cases.
func withBasket(cmd *cobra.Command, fn func(ctx context.Context, uc *usecase.Basket) error) error {
	return withDatabase(cmd, func(ctx context.Context, dbCtx *database.Context) error {
		return fn(ctx, usecase.NewBasket(dbCtx))
	})
}
