package tools

import (
	"context"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docuvault/docmgmt-mcp/internal/preview"
	"github.com/docuvault/docmgmt-mcp/internal/search"
	"github.com/docuvault/docmgmt-mcp/pkg/client"
)

// SearchDocumentsInput is the input for docmgmt_search_documents.
type SearchDocumentsInput struct {
	Query     string `json:"query,omitempty" jsonschema:"Free text search value, passed through verbatim"`
	MajorHead string `json:"major_head,omitempty" jsonschema:"Category: Personal or Professional. Empty means no category filter"`
	MinorHead string `json:"minor_head,omitempty" jsonschema:"Sub-category under major_head (e.g. John, Accounts). Requires major_head"`
	Tag       string `json:"tag,omitempty" jsonschema:"Tag name to filter by"`
	FromDate  string `json:"from_date,omitempty" jsonschema:"Lower bound on document date"`
	ToDate    string `json:"to_date,omitempty" jsonschema:"Upper bound on document date"`
}

// SearchDocumentsOutput is the output for docmgmt_search_documents.
type SearchDocumentsOutput struct {
	Results      []DocumentInfo `json:"results,omitzero"`
	Count        int            `json:"count"`
	SearchedAtMs int64          `json:"searched_at_ms"`
	Hint         string         `json:"hint,omitempty"`
}

// DocumentInfo is one search result row. Index is the handle the preview,
// download and export tools take.
type DocumentInfo struct {
	Index           int    `json:"index"`
	FileName        string `json:"file_name"`
	FileType        string `json:"file_type,omitempty"`
	Preview         string `json:"preview"`
	UploadedBy      string `json:"uploaded_by,omitempty"`
	DocumentRemarks string `json:"document_remarks,omitempty"`
	HasFile         bool   `json:"has_file"`
}

// ToolSearchDocuments runs a document search and replaces the working
// result set with the response.
func ToolSearchDocuments(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchDocumentsInput) (*sdkmcp.CallToolResult, SearchDocumentsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchDocumentsInput) (*sdkmcp.CallToolResult, SearchDocumentsOutput, error) {
		snap, err := d.Search.Search(ctx, search.Filter{
			Query:     input.Query,
			MajorHead: input.MajorHead,
			MinorHead: input.MinorHead,
			Tag:       input.Tag,
			FromDate:  input.FromDate,
			ToDate:    input.ToDate,
		})
		if err != nil {
			return nil, SearchDocumentsOutput{}, WrapDocMgmtError(err)
		}

		output := SearchDocumentsOutput{
			Results:      make([]DocumentInfo, len(snap.Docs)),
			Count:        len(snap.Docs),
			SearchedAtMs: snap.SearchedAt.UnixMilli(),
		}
		for i, doc := range snap.Docs {
			output.Results[i] = toDocumentInfo(i, doc)
		}
		if len(snap.Docs) == 0 {
			output.Hint = "no documents matched; broaden the filters or clear the category"
		} else {
			output.Hint = "pass index to docmgmt_preview_document or docmgmt_download_document, or export all with docmgmt_export_documents"
		}
		return nil, output, nil
	}
}

func toDocumentInfo(index int, doc client.DocumentRecord) DocumentInfo {
	return DocumentInfo{
		Index:           index,
		FileName:        doc.FileName,
		FileType:        doc.FileType,
		Preview:         string(preview.Classify(doc)),
		UploadedBy:      doc.UploadedBy,
		DocumentRemarks: doc.DocumentRemarks,
		HasFile:         doc.FileURL != "",
	}
}

// searchedAtMs converts a snapshot time for output, zero-safe.
func searchedAtMs(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
