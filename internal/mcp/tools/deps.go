package tools

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

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Client    *client.Client
	Config    *config.Config
	Sessions  *session.Store
	Tags      *catalog.TagCatalog
	Results   *resultset.Store
	Files     *cache.FileCache
	Search    *search.Workflow
	Exporter  *export.Exporter
	Upload    *upload.Workflow
	Query     *query.Engine
}

// ResolveDoc returns the document at index in the current result snapshot.
// Indices are zero-based positions in the last search response.
func (d *Deps) ResolveDoc(index int) (client.DocumentRecord, error) {
	doc, err := d.Results.Doc(index)
	if err != nil {
		return client.DocumentRecord{}, &CodedError{Code: ErrCodeNotFound, Message: err.Error(), Cause: err}
	}
	return doc, nil
}
