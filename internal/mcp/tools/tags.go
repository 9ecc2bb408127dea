package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docuvault/docmgmt-mcp/internal/catalog"
)

// ListTagsInput is the input for docmgmt_list_tags.
type ListTagsInput struct{}

// ListTagsOutput is the output for docmgmt_list_tags.
type ListTagsOutput struct {
	Tags []TagInfo `json:"tags,omitzero"`
	Hint string    `json:"hint,omitempty"`
}

// TagInfo is one catalog tag.
type TagInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ToolListTags lists the server's tag catalog. The catalog is loaded once
// per session and served from memory afterwards.
func ToolListTags(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListTagsInput) (*sdkmcp.CallToolResult, ListTagsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListTagsInput) (*sdkmcp.CallToolResult, ListTagsOutput, error) {
		token := d.Sessions.Token()
		if token == "" {
			return nil, ListTagsOutput{}, ErrUnauthenticated()
		}

		tags, err := d.Tags.Tags(ctx, token)
		if err != nil {
			return nil, ListTagsOutput{}, WrapDocMgmtError(err)
		}

		output := ListTagsOutput{Tags: make([]TagInfo, len(tags))}
		for i, tag := range tags {
			output.Tags[i] = TagInfo{ID: tag.ID, Label: tag.Label}
		}
		if len(tags) == 0 {
			output.Hint = "no catalog tags; ad-hoc tag labels can still be used in search and upload"
		}
		return nil, output, nil
	}
}

// ListCategoriesInput is the input for docmgmt_list_categories.
type ListCategoriesInput struct {
	MajorHead string `json:"major_head,omitempty" jsonschema:"Major head to list minor options for; empty lists the major heads"`
}

// ListCategoriesOutput is the output for docmgmt_list_categories.
type ListCategoriesOutput struct {
	MajorHeads   []string `json:"major_heads,omitzero"`
	MinorOptions []string `json:"minor_options,omitzero"`
}

// ToolListCategories exposes the fixed two-level category taxonomy.
func ToolListCategories(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListCategoriesInput) (*sdkmcp.CallToolResult, ListCategoriesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListCategoriesInput) (*sdkmcp.CallToolResult, ListCategoriesOutput, error) {
		if input.MajorHead == "" {
			return nil, ListCategoriesOutput{MajorHeads: catalog.MajorHeads()}, nil
		}
		if !catalog.ValidMajor(input.MajorHead) {
			return nil, ListCategoriesOutput{}, ErrNotFound("major head", input.MajorHead)
		}
		return nil, ListCategoriesOutput{MinorOptions: catalog.MinorOptions(input.MajorHead)}, nil
	}
}

// ErrUnauthenticated creates an unauthenticated error.
func ErrUnauthenticated() error {
	return &CodedError{
		Code:    ErrCodeUnauthenticated,
		Message: "not logged in, verify an OTP first",
	}
}
