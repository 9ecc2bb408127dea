package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// QueryResultsInput is the input for docmgmt_query_results.
type QueryResultsInput struct {
	Expression  string `json:"expression" jsonschema:"JQ expression evaluated against the result records array, e.g. '.[] | select(.file_type == \"pdf\") | .file_name'"`
	Deduplicate bool   `json:"deduplicate,omitempty" jsonschema:"Remove duplicate values. Default: false"`
	MaxResults  int    `json:"max_results,omitempty" jsonschema:"Cap on returned values (0 = no cap)"`
}

// QueryResultsOutput is the output for docmgmt_query_results.
type QueryResultsOutput struct {
	Values       []any    `json:"values,omitzero"`
	Errors       []string `json:"errors,omitzero"`
	RawCount     int      `json:"raw_count"`
	SearchedAtMs int64    `json:"searched_at_ms"`
}

// ToolQueryResults runs a JQ expression over the last search snapshot.
func ToolQueryResults(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input QueryResultsInput) (*sdkmcp.CallToolResult, QueryResultsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input QueryResultsInput) (*sdkmcp.CallToolResult, QueryResultsOutput, error) {
		if input.Expression == "" {
			return nil, QueryResultsOutput{}, ErrInvalidInput("expression is required")
		}

		snap, ok := d.Results.Current()
		if !ok {
			return nil, QueryResultsOutput{}, ErrInvalidInput("no search has run yet; call docmgmt_search_documents first")
		}

		result, err := d.Query.Query(snap.Docs, input.Expression, input.Deduplicate, input.MaxResults)
		if err != nil {
			return nil, QueryResultsOutput{}, ErrInvalidInput(err.Error())
		}

		return nil, QueryResultsOutput{
			Values:       result.Values,
			Errors:       result.Errors,
			RawCount:     result.RawCount,
			SearchedAtMs: searchedAtMs(snap.SearchedAt),
		}, nil
	}
}
