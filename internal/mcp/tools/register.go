package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	// Tool 1: docmgmt_send_otp
	AddTool(srv, &sdkmcp.Tool{
		Name:        "docmgmt_send_otp",
		Description: "Request a one-time password for a 10-digit mobile number. First step of the login flow; follow up with docmgmt_verify_otp.",
	}, ToolSendOTP(d))

	// Tool 2: docmgmt_verify_otp
	AddTool(srv, &sdkmcp.Tool{
		Name:        "docmgmt_verify_otp",
		Description: "Verify a received OTP and establish the session. The session is persisted and restored on restart; check it with docmgmt_session.",
	}, ToolVerifyOTP(d))

	// Tool 3: docmgmt_session
	AddTool(srv, &sdkmcp.Tool{
		Name:        "docmgmt_session",
		Description: "Show the current authentication state: whether a session exists and for which user.",
	}, ToolSession(d))

	// Tool 4: docmgmt_logout
	AddTool(srv, &sdkmcp.Tool{
		Name:        "docmgmt_logout",
		Description: "Log out: clear the in-memory session and its persisted record.",
	}, ToolLogout(d))

	// Tool 5: docmgmt_list_categories
	AddTool(srv, &sdkmcp.Tool{
		Name:        "docmgmt_list_categories",
		Description: "List the category taxonomy. Without major_head returns the major heads (Personal, Professional); with one returns its minor options. Changing major_head invalidates any minor_head chosen under the previous one.",
	}, ToolListCategories(d))

	// Tool 6: docmgmt_list_tags
	AddTool(srv, &sdkmcp.Tool{
		Name:        "docmgmt_list_tags",
		Description: "List the server's tag catalog. Loaded once per session; tags can be used in docmgmt_search_documents and docmgmt_upload_document. Requires login.",
	}, ToolListTags(d))

	// Tool 7: docmgmt_search_documents
	AddTool(srv, &sdkmcp.Tool{
		Name:        "docmgmt_search_documents",
		Description: "Search documents by free text, category (major_head/minor_head), tag, and date range. Replaces the working result set; result indices feed docmgmt_preview_document, docmgmt_download_document, docmgmt_export_documents and docmgmt_query_results. One search at a time.",
	}, ToolSearchDocuments(d))

	// Tool 8: docmgmt_preview_document
	AddTool(srv, &sdkmcp.Tool{
		Name:        "docmgmt_preview_document",
		Description: "Classify a search result for preview (image, pdf, external). Images can be returned inline as base64 with include_inline=true; everything else is download-only.",
	}, ToolPreviewDocument(d))

	// Tool 9: docmgmt_download_document
	AddTool(srv, &sdkmcp.Tool{
		Name:        "docmgmt_download_document",
		Description: "Download one search result to the local save directory and return the saved path.",
	}, ToolDownloadDocument(d))

	// Tool 10: docmgmt_export_documents
	AddTool(srv, &sdkmcp.Tool{
		Name:        "docmgmt_export_documents",
		Description: "Download all current search results and pack them into a single ZIP archive. Best effort: files that fail to fetch are listed under failed and omitted.",
	}, ToolExportDocuments(d))

	// Tool 11: docmgmt_upload_document
	AddTool(srv, &sdkmcp.Tool{
		Name:        "docmgmt_upload_document",
		Description: "Upload a local image or PDF with category, date, remarks and tags. The file's real content type is sniffed; other types are rejected before any request is sent. Requires login.",
	}, ToolUploadDocument(d))

	// Tool 12: docmgmt_query_results
	AddTool(srv, &sdkmcp.Tool{
		Name:        "docmgmt_query_results",
		Description: "Run a JQ expression over the last search results, e.g. '.[] | select(.uploaded_by == \"nathan\") | .file_name'. Use for filtering and projecting without re-searching.",
	}, ToolQueryResults(d))
}
