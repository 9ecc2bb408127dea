// Package prompts provides guided workflows for the document management
// tools.
package prompts

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all prompts with the MCP server.
func Register(srv *sdkmcp.Server) {
	// Prompt 1: Find and fetch documents
	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "find_documents",
		Description: "RECOMMENDED: Guided workflow for finding and downloading documents. Covers login, filters, previews, downloads and bulk export.",
		Arguments: []*sdkmcp.PromptArgument{
			{
				Name:        "looking_for",
				Description: "What you are trying to find (e.g. 'last year's invoices', 'HR contracts')",
				Required:    false,
			},
		},
	}, HandleFindDocuments())

	// Prompt 2: Upload a document
	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "upload_document",
		Description: "Guided workflow for uploading a document with the right category, date and tags.",
		Arguments: []*sdkmcp.PromptArgument{
			{
				Name:        "file_path",
				Description: "Path of the local file to upload",
				Required:    false,
			},
		},
	}, HandleUploadDocument())
}
