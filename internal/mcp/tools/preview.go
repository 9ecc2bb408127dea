package tools

import (
	"context"
	"encoding/base64"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docuvault/docmgmt-mcp/internal/preview"
)

// PreviewDocumentInput is the input for docmgmt_preview_document.
type PreviewDocumentInput struct {
	Index         int  `json:"index" jsonschema:"Zero-based index into the last search results"`
	IncludeInline bool `json:"include_inline,omitempty" jsonschema:"Fetch and return inline base64 content for image documents. Default: false"`
}

// PreviewDocumentOutput is the output for docmgmt_preview_document.
type PreviewDocumentOutput struct {
	FileName    string `json:"file_name"`
	Kind        string `json:"kind"`
	Inline      bool   `json:"inline"`
	ContentB64  string `json:"content_b64,omitempty"`
	ContentSize int    `json:"content_size,omitempty"`
	Hint        string `json:"hint,omitempty"`
}

// ToolPreviewDocument classifies a result for preview. Images can be
// returned inline; PDFs and everything else are download-only.
func ToolPreviewDocument(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input PreviewDocumentInput) (*sdkmcp.CallToolResult, PreviewDocumentOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input PreviewDocumentInput) (*sdkmcp.CallToolResult, PreviewDocumentOutput, error) {
		doc, err := d.ResolveDoc(input.Index)
		if err != nil {
			return nil, PreviewDocumentOutput{}, err
		}

		kind := preview.Classify(doc)
		output := PreviewDocumentOutput{
			FileName: doc.FileName,
			Kind:     string(kind),
			Inline:   preview.Inline(doc),
		}

		switch kind {
		case preview.Image:
			output.Hint = "image; set include_inline=true for base64 content, or use docmgmt_download_document"
		case preview.PDF:
			output.Hint = "PDF; use docmgmt_download_document to save it locally"
		default:
			output.Hint = "no inline preview for this type; use docmgmt_download_document"
		}

		if input.IncludeInline && output.Inline {
			if doc.FileURL == "" {
				return nil, PreviewDocumentOutput{}, ErrInvalidInput("document has no file URL")
			}
			f, err := d.Exporter.Fetch(ctx, doc.FileURL)
			if err != nil {
				return nil, PreviewDocumentOutput{}, WrapDocMgmtError(err)
			}
			output.ContentB64 = base64.StdEncoding.EncodeToString(f.Data)
			output.ContentSize = len(f.Data)
			output.Hint = ""
		}

		return nil, output, nil
	}
}
