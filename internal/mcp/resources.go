package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docuvault/docmgmt-mcp/internal/catalog"
	"github.com/docuvault/docmgmt-mcp/internal/mcp/tools"
)

// Resource URI scheme: docmgmt://
// Supported URIs:
//   docmgmt://results
//   docmgmt://document/{index}
//   docmgmt://taxonomy

const mimeJSON = "application/json"

// registerResources registers resource templates and handlers.
func (s *Server) registerResources() {
	s.mcpServer.AddResource(&sdkmcp.Resource{
		URI:         "docmgmt://results",
		Name:        "Search Results",
		Description: "The full current search snapshot: all records of the last search with their file URLs.",
		MIMEType:    mimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.7,
		},
	}, s.handleResourceResults)

	s.mcpServer.AddResource(&sdkmcp.Resource{
		URI:         "docmgmt://taxonomy",
		Name:        "Category Taxonomy",
		Description: "The fixed major/minor category taxonomy used by search and upload.",
		MIMEType:    mimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.5,
		},
	}, s.handleResourceTaxonomy)

	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: "docmgmt://document/{index}",
		Name:        "Document Record",
		Description: "One record of the current search snapshot, by zero-based index.",
		MIMEType:    mimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.6,
		},
	}, s.handleResourceDocument)
}

// Resource handlers

func (s *Server) handleResourceResults(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	snap, ok := s.deps.Results.Current()
	if !ok {
		return nil, sdkmcp.ResourceNotFoundError(req.Params.URI)
	}

	content := map[string]any{
		"documents":      snap.Docs,
		"searched_at_ms": snap.SearchedAt.UnixMilli(),
	}
	if snap.Err != nil {
		content["search_error"] = snap.Err.Error()
	}
	return toResourceResult(req.Params.URI, content)
}

func (s *Server) handleResourceTaxonomy(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	taxonomy := make(map[string][]string)
	for _, major := range catalog.MajorHeads() {
		taxonomy[major] = catalog.MinorOptions(major)
	}
	return toResourceResult(req.Params.URI, taxonomy)
}

func (s *Server) handleResourceDocument(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	rest, ok := strings.CutPrefix(req.Params.URI, "docmgmt://document/")
	if !ok {
		return nil, tools.ErrInvalidInput(fmt.Sprintf("invalid document URI: %s", req.Params.URI))
	}
	index, err := strconv.Atoi(rest)
	if err != nil {
		return nil, tools.ErrInvalidInput(fmt.Sprintf("invalid document index %q", rest))
	}

	doc, err := s.deps.Results.Doc(index)
	if err != nil {
		return nil, sdkmcp.ResourceNotFoundError(req.Params.URI)
	}
	return toResourceResult(req.Params.URI, doc)
}

// toResourceResult serializes content to a ReadResourceResult.
func toResourceResult(uri string, content any) (*sdkmcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing resource: %w", err)
	}

	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: mimeJSON,
				Text:     string(data),
			},
		},
	}, nil
}
