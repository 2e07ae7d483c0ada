package main

import (
	"context"
	"log/slog"

	"github.com/averycrespi/semantic-movement-mcp/internal/server"
	"github.com/averycrespi/semantic-movement-mcp/pkg/types"

	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the navigation commands over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts.config)
		},
	}
}

func runServe(ctx context.Context, cfg *types.Config) error {
	mcpServer := server.NewSemanticMovementServer(cfg)

	serveErr := mcpServer.Start(ctx)
	if err := mcpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
		slog.Error("Failed to shut down cleanly", "error", err)
	}
	return serveErr
}
