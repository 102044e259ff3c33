package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/basket-md/basket/internal/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Long:  "Start the Model Context Protocol server for basket on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server, err := mcp.NewServer(dbPath, version)
			if err != nil {
				return err
			}

			slog.Debug("serving mcp", "db", dbPath)
			return server.Run(cmd.Context())
		},
	}

	return cmd
}
