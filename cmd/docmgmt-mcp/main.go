package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/docuvault/docmgmt-mcp/internal/config"
	"github.com/docuvault/docmgmt-mcp/pkg/client"
	"github.com/docuvault/docmgmt-mcp/pkg/mcpsrv"
)

func main() {
	// Set up context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Create Document Management API client.
	// Base URL and HTTP client timeout come from environment variables
	// (DOCMGMT_BASE_URL, HTTP_CLIENT_TIMEOUT_MS).
	cfg := config.Load()
	apiClient := client.New(
		client.WithBaseURL(cfg.BaseURL),
		client.WithHTTPClient(&http.Client{Timeout: cfg.HTTPClientTimeout}),
	)

	// Create MCP server with all builtin tools.
	// Configuration is loaded from environment variables:
	// - LOG_LEVEL: debug, info, warn, error (default: info)
	// - LOG_FILE: path to log file (default: stderr only)
	// - DOCMGMT_SAVE_DIR: where downloads and archives land
	// - etc. (see internal/config for all options)
	server, err := mcpsrv.NewServer(apiClient)
	if err != nil {
		slog.Error("failed to create MCP server", "error", err)
		os.Exit(1)
	}
	defer server.Close()

	// Run the server with stdio transport
	slog.Info("starting document management MCP server on stdio")
	if err := server.Run(ctx); err != nil && err != context.Canceled {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
