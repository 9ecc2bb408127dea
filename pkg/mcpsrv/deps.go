package mcpsrv

import (
	"github.com/docuvault/docmgmt-mcp/internal/cache"
	"github.com/docuvault/docmgmt-mcp/internal/catalog"
	"github.com/docuvault/docmgmt-mcp/internal/config"
	"github.com/docuvault/docmgmt-mcp/internal/export"
	"github.com/docuvault/docmgmt-mcp/internal/query"
	"github.com/docuvault/docmgmt-mcp/internal/resultset"
	"github.com/docuvault/docmgmt-mcp/internal/search"
	"github.com/docuvault/docmgmt-mcp/internal/session"
	"github.com/docuvault/docmgmt-mcp/internal/upload"
	"github.com/docuvault/docmgmt-mcp/pkg/client"
)

// Deps contains all dependencies available to custom tools.
// This gives custom tools access to the same infrastructure as builtin tools.
type Deps struct {
	Client   *client.Client
	Config   *config.Config
	Sessions *session.Store
	Tags     *catalog.TagCatalog
	Results  *resultset.Store
	Files    *cache.FileCache
	Search   *search.Workflow
	Exporter *export.Exporter
	Upload   *upload.Workflow
	Query    *query.Engine
}
