package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// DownloadDocumentInput is the input for docmgmt_download_document.
type DownloadDocumentInput struct {
	Index int `json:"index" jsonschema:"Zero-based index into the last search results"`
}

// DownloadDocumentOutput is the output for docmgmt_download_document.
type DownloadDocumentOutput struct {
	SavedTo string `json:"saved_to"`
}

// ExportDocumentsInput is the input for docmgmt_export_documents.
type ExportDocumentsInput struct{}

// ExportDocumentsOutput is the output for docmgmt_export_documents.
type ExportDocumentsOutput struct {
	ArchivePath string   `json:"archive_path"`
	Archived    []string `json:"archived,omitzero"`
	Failed      []string `json:"failed,omitzero"`
	Hint        string   `json:"hint,omitempty"`
}

// ToolDownloadDocument downloads a single result to the save directory.
func ToolDownloadDocument(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input DownloadDocumentInput) (*sdkmcp.CallToolResult, DownloadDocumentOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input DownloadDocumentInput) (*sdkmcp.CallToolResult, DownloadDocumentOutput, error) {
		doc, err := d.ResolveDoc(input.Index)
		if err != nil {
			return nil, DownloadDocumentOutput{}, err
		}
		if doc.FileURL == "" {
			return nil, DownloadDocumentOutput{}, ErrInvalidInput("document has no file URL")
		}

		dest, err := d.Exporter.Download(ctx, doc)
		if err != nil {
			return nil, DownloadDocumentOutput{}, WrapDocMgmtError(err)
		}
		return nil, DownloadDocumentOutput{SavedTo: dest}, nil
	}
}

// ToolExportDocuments downloads every current result into one ZIP archive.
// Files whose fetch fails are listed under failed and omitted from the
// archive; the export itself still succeeds.
func ToolExportDocuments(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ExportDocumentsInput) (*sdkmcp.CallToolResult, ExportDocumentsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ExportDocumentsInput) (*sdkmcp.CallToolResult, ExportDocumentsOutput, error) {
		snap, ok := d.Results.Current()
		if !ok {
			return nil, ExportDocumentsOutput{}, ErrInvalidInput("no search has run yet; call docmgmt_search_documents first")
		}

		result, err := d.Exporter.ExportAll(ctx, snap.Docs)
		if err != nil {
			return nil, ExportDocumentsOutput{}, WrapDocMgmtError(err)
		}

		output := ExportDocumentsOutput{
			ArchivePath: result.ArchivePath,
			Archived:    result.Archived,
			Failed:      result.Failed,
		}
		if len(result.Failed) > 0 {
			output.Hint = "some files could not be fetched and were left out of the archive"
		}
		return nil, output, nil
	}
}
