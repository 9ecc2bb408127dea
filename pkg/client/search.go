package client

import (
	"context"
	"encoding/json"
	"fmt"
)

// SearchDocuments submits a filter query and returns the matching records
// in server response order. The query must be fully populated; use the
// search workflow to build one from user-entered filter fields.
//
// A status:false envelope or a non-array data payload is an error, so a
// failed search is distinguishable from a legitimate empty match.
func (c *Client) SearchDocuments(ctx context.Context, token string, q *SearchQuery) ([]DocumentRecord, error) {
	headers := map[string]string{"token": token}

	data, err := c.post(ctx, "/searchDocumentEntry", headers, q)
	if err != nil {
		return nil, fmt.Errorf("searching documents: %w", err)
	}

	var docs []DocumentRecord
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decoding documents: %w", err)
	}
	return docs, nil
}
