package prompts

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleFindDocuments serves the search-and-download workflow guide.
func HandleFindDocuments() func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		var sb strings.Builder

		sb.WriteString("# Finding and Downloading Documents\n\n")

		if goal := req.Params.Arguments["looking_for"]; goal != "" {
			sb.WriteString("Goal: " + goal + "\n\n")
		}

		sb.WriteString("## 1. Log in (once)\n")
		sb.WriteString("- `docmgmt_session` tells you whether a session already exists\n")
		sb.WriteString("- If not: `docmgmt_send_otp(mobile_number)` then `docmgmt_verify_otp(mobile_number, otp)`\n")
		sb.WriteString("- The session survives restarts; `docmgmt_logout` ends it\n")

		sb.WriteString("\n## 2. Build the search\n")
		sb.WriteString("| Goal | Parameter | Example |\n")
		sb.WriteString("|------|-----------|--------|\n")
		sb.WriteString("| Free-text match | `query` | `query: \"invoice march\"` |\n")
		sb.WriteString("| Restrict to a category | `major_head` + `minor_head` | `major_head: \"Professional\", minor_head: \"Accounts\"` |\n")
		sb.WriteString("| Restrict to a tag | `tag` | `tag: \"2024\"` |\n")
		sb.WriteString("| Date window | `from_date` / `to_date` | `from_date: \"2024-01-01\"` |\n")
		sb.WriteString("\n**Key rules**:\n")
		sb.WriteString("- `docmgmt_list_categories` shows the valid major/minor heads; minor options depend on the major head\n")
		sb.WriteString("- `docmgmt_list_tags` shows the tag catalog (requires login)\n")
		sb.WriteString("- Each search replaces the previous result set; one search runs at a time\n")

		sb.WriteString("\n## 3. Work the results\n")
		sb.WriteString("- Results carry a zero-based `index`; that index is the handle for all follow-up tools\n")
		sb.WriteString("- `docmgmt_preview_document(index)` classifies the file; images support `include_inline: true`\n")
		sb.WriteString("- `docmgmt_download_document(index)` saves one file and returns the path\n")
		sb.WriteString("- `docmgmt_export_documents()` zips every result; failed fetches are listed, not fatal\n")
		sb.WriteString("- `docmgmt_query_results(expression)` runs JQ over the records, e.g. `.[] | select(.file_type == \"pdf\") | .file_name`\n")

		sb.WriteString("\n## JQ Quick Reference\n")
		sb.WriteString("- `.[].file_name` - all file names\n")
		sb.WriteString("- `.[] | select(.uploaded_by == \"nathan\")` - filter by uploader\n")
		sb.WriteString("- `map(.file_type) | unique` - distinct file types\n")

		return &sdkmcp.GetPromptResult{
			Description: "Guide for the search, preview and download workflow",
			Messages: []*sdkmcp.PromptMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: sb.String()},
				},
			},
		}, nil
	}
}
