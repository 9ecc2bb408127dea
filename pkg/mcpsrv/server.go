package mcpsrv

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docuvault/docmgmt-mcp/internal/cache"
	"github.com/docuvault/docmgmt-mcp/internal/catalog"
	"github.com/docuvault/docmgmt-mcp/internal/config"
	"github.com/docuvault/docmgmt-mcp/internal/export"
	"github.com/docuvault/docmgmt-mcp/internal/logging"
	"github.com/docuvault/docmgmt-mcp/internal/mcp"
	"github.com/docuvault/docmgmt-mcp/internal/mcp/tools"
	"github.com/docuvault/docmgmt-mcp/internal/query"
	"github.com/docuvault/docmgmt-mcp/internal/resultset"
	"github.com/docuvault/docmgmt-mcp/internal/search"
	"github.com/docuvault/docmgmt-mcp/internal/session"
	"github.com/docuvault/docmgmt-mcp/internal/upload"
	"github.com/docuvault/docmgmt-mcp/pkg/client"
)

// Server is the document management MCP server.
// It wraps the internal implementation and provides extension points.
type Server struct {
	internal   *mcp.Server
	sessions   *session.Store
	deps       *Deps
	logCleanup func() error
}

// NewServer creates a new MCP server with builtin document management tools.
//
// The client parameter is required and provides access to the Document
// Management API. Use functional options to configure logging, add custom
// tools, etc.
func NewServer(c *client.Client, opts ...Option) (*Server, error) {
	if c == nil {
		return nil, fmt.Errorf("client is required")
	}

	// Build configuration from options
	cfg := &serverConfig{
		config: config.Load(), // Load defaults from environment
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Setup logging
	logCfg := logging.Config{
		Level:      cfg.config.LogLevel,
		FilePath:   cfg.config.LogFile,
		MaxSizeMB:  cfg.config.LogMaxSizeMB,
		MaxBackups: cfg.config.LogMaxBackups,
		MaxAgeDays: cfg.config.LogMaxAgeDays,
		Compress:   cfg.config.LogCompress,
	}
	if cfg.logLevel != "" {
		logCfg.Level = cfg.logLevel
	}
	if cfg.logFile != "" {
		logCfg.FilePath = cfg.logFile
	}
	logCleanup, err := logging.Setup(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	// Create infrastructure
	sessions := session.NewStore(cfg.config.StateDir)
	if err := sessions.Restore(); err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	files, err := cache.NewFileCache(cfg.config.FileCacheMaxItems)
	if err != nil {
		return nil, fmt.Errorf("failed to create file cache: %w", err)
	}

	results := resultset.NewStore()

	// Create workflows
	searchWorkflow := search.New(c, sessions, results, cfg.config)
	exporter := export.New(c, files, cfg.config)
	uploadWorkflow := upload.New(c, sessions)
	tagCatalog := catalog.NewTagCatalog(c)
	queryEngine := query.NewEngine()

	// Create deps for internal tools and custom tools
	toolDeps := &tools.Deps{
		Client:    c,
		Config:    cfg.config,
		Sessions:  sessions,
		Tags:      tagCatalog,
		Results:   results,
		Files:     files,
		Search:    searchWorkflow,
		Exporter:  exporter,
		Upload:    uploadWorkflow,
		Query:     queryEngine,
	}

	// Create public deps (same values, different type for public API)
	deps := &Deps{
		Client:   c,
		Config:   cfg.config,
		Sessions: sessions,
		Tags:     tagCatalog,
		Results:  results,
		Files:    files,
		Search:   searchWorkflow,
		Exporter: exporter,
		Upload:   uploadWorkflow,
		Query:    queryEngine,
	}

	// Build internal server options
	var internalOpts []mcp.ServerOption
	if !cfg.disableBuiltinTools {
		internalOpts = append(internalOpts, mcp.WithBuiltinTools())
	}
	if !cfg.disableBuiltinPrompts {
		internalOpts = append(internalOpts, mcp.WithBuiltinPrompts())
	}

	// Add custom extension registration callbacks
	for _, fn := range cfg.toolRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}
	for _, fn := range cfg.promptRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}
	for _, fn := range cfg.resourceRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}

	// Add deferred tool registrations (tools that need Deps access)
	for _, fn := range cfg.deferredToolRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(func(srv *sdkmcp.Server) {
			fn(srv, deps)
		}))
	}

	// Create internal server
	internal, err := mcp.NewServer(toolDeps, internalOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	return &Server{
		internal:   internal,
		sessions:   sessions,
		deps:       deps,
		logCleanup: logCleanup,
	}, nil
}

// Run starts the MCP server with stdio transport.
// The server runs until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.internal.Run(ctx)
}

// Close cleans up server resources.
func (s *Server) Close() error {
	if s.logCleanup != nil {
		return s.logCleanup()
	}
	return nil
}

// Deps returns the dependencies for building custom tools.
func (s *Server) Deps() *Deps {
	return s.deps
}
