package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docuvault/docmgmt-mcp/internal/upload"
)

// UploadDocumentInput is the input for docmgmt_upload_document.
type UploadDocumentInput struct {
	FilePath     string   `json:"file_path" jsonschema:"Path of the local file to upload. Only images and PDFs are accepted"`
	MajorHead    string   `json:"major_head,omitempty" jsonschema:"Category: Personal or Professional"`
	MinorHead    string   `json:"minor_head,omitempty" jsonschema:"Sub-category under major_head"`
	DocumentDate string   `json:"document_date,omitempty" jsonschema:"Document date in YYYY-MM-DD"`
	Remarks      string   `json:"remarks,omitempty" jsonschema:"Free-text remarks stored with the document"`
	Tags         []string `json:"tags,omitempty" jsonschema:"Tag labels; unknown labels are created as new tags"`
}

// UploadDocumentOutput is the output for docmgmt_upload_document.
type UploadDocumentOutput struct {
	FileName string `json:"file_name"`
	Uploaded bool   `json:"uploaded"`
}

// ToolUploadDocument uploads a local file with its metadata.
func ToolUploadDocument(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input UploadDocumentInput) (*sdkmcp.CallToolResult, UploadDocumentOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input UploadDocumentInput) (*sdkmcp.CallToolResult, UploadDocumentOutput, error) {
		fileName, err := d.Upload.Upload(ctx, &upload.Request{
			FilePath:     input.FilePath,
			MajorHead:    input.MajorHead,
			MinorHead:    input.MinorHead,
			DocumentDate: input.DocumentDate,
			Remarks:      input.Remarks,
			Tags:         input.Tags,
		})
		if err != nil {
			return nil, UploadDocumentOutput{}, WrapDocMgmtError(err)
		}

		return nil, UploadDocumentOutput{FileName: fileName, Uploaded: true}, nil
	}
}
