package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"
)

// FetchFile retrieves the raw bytes of a stored document by its file URL.
// The second return value is the server-suggested filename from the
// Content-Disposition header, or "" when the server does not supply one.
func (c *Client) FetchFile(ctx context.Context, fileURL string) ([]byte, string, error) {
	if fileURL == "" {
		return nil, "", fmt.Errorf("file URL is empty")
	}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, "", &APIError{StatusCode: resp.StatusCode, Message: "file fetch failed"}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading file body: %w", err)
	}

	slog.Debug("file fetched",
		slog.String("url", fileURL),
		slog.Int("bytes", len(data)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return data, dispositionFilename(resp.Header.Get("Content-Disposition")), nil
}

// dispositionFilename extracts the filename parameter from a
// Content-Disposition header value, if any.
func dispositionFilename(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
