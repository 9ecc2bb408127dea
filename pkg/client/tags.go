package client

import (
	"context"
	"encoding/json"
	"fmt"
)

// DocumentTags retrieves the tag catalog, optionally filtered by a search
// term. An empty term returns the full catalog.
func (c *Client) DocumentTags(ctx context.Context, token, term string) ([]TagOption, error) {
	headers := map[string]string{"token": token}
	body := map[string]string{"term": term}

	data, err := c.post(ctx, "/documentTags", headers, body)
	if err != nil {
		return nil, fmt.Errorf("fetching document tags: %w", err)
	}

	var tags []TagOption
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil, fmt.Errorf("decoding tags: %w", err)
	}
	return tags, nil
}
