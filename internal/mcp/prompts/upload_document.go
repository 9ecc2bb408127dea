package prompts

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleUploadDocument serves the upload workflow guide.
func HandleUploadDocument() func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		var sb strings.Builder

		sb.WriteString("# Uploading a Document\n\n")

		if path := req.Params.Arguments["file_path"]; path != "" {
			sb.WriteString("File to upload: `" + path + "`\n\n")
		}

		sb.WriteString("## Before uploading\n")
		sb.WriteString("- A session is required; check with `docmgmt_session`\n")
		sb.WriteString("- Only images and PDFs are accepted; the file's real content is sniffed, the extension is not trusted\n")

		sb.WriteString("\n## Choosing metadata\n")
		sb.WriteString("- `major_head` is `Personal` or `Professional`; `minor_head` must be one of its options (`docmgmt_list_categories`)\n")
		sb.WriteString("- `document_date` is `YYYY-MM-DD`\n")
		sb.WriteString("- `tags` takes labels; check `docmgmt_list_tags` for existing ones, unknown labels become new tags\n")
		sb.WriteString("- Duplicate tag labels are dropped automatically\n")

		sb.WriteString("\n## Example\n")
		sb.WriteString("```\n")
		sb.WriteString("docmgmt_upload_document(\n")
		sb.WriteString("  file_path: \"/home/me/scans/invoice-march.pdf\",\n")
		sb.WriteString("  major_head: \"Professional\",\n")
		sb.WriteString("  minor_head: \"Accounts\",\n")
		sb.WriteString("  document_date: \"2024-03-31\",\n")
		sb.WriteString("  remarks: \"March supplier invoice\",\n")
		sb.WriteString("  tags: [\"invoice\", \"2024\"]\n")
		sb.WriteString(")\n")
		sb.WriteString("```\n")

		sb.WriteString("\nAfter uploading, a fresh `docmgmt_search_documents` will include the new document.\n")

		return &sdkmcp.GetPromptResult{
			Description: "Guide for the document upload workflow",
			Messages: []*sdkmcp.PromptMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: sb.String()},
				},
			},
		}, nil
	}
}
