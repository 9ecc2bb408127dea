package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"
)

// SaveDocument uploads a file with its metadata as a multipart request.
// The file travels in a "file" part and the metadata as a JSON string in a
// "data" part; token and user_id are sent as request headers.
//
// Returns ErrSessionRequired without issuing the request when token or
// userID is empty.
func (c *Client) SaveDocument(ctx context.Context, token, userID, fileName string, file io.Reader, meta *DocumentMeta) error {
	if token == "" || userID == "" {
		return ErrSessionRequired
	}

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return fmt.Errorf("creating file part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copying file: %w", err)
	}
	if err := w.WriteField("data", string(metaJSON)); err != nil {
		return fmt.Errorf("writing data part: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing multipart body: %w", err)
	}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/saveDocumentEntry", &buf)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("token", token)
	req.Header.Set("user_id", userID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	slog.Debug("upload request completed",
		slog.String("file_name", fileName),
		slog.Int("status", resp.StatusCode),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	if resp.StatusCode >= 400 {
		return c.parseError(resp)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if !env.Status {
		return &APIError{StatusCode: resp.StatusCode, Message: env.errorMessage()}
	}
	return nil
}
