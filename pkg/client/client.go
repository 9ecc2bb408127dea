package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the default base URL for the Document Management API.
const DefaultBaseURL = "https://apis.allsoft.co/api/documentManagement"

// Client is a Document Management API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a new Document Management API client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the uniform response shape the API wraps every payload in.
// On failure the server message may arrive in either "message" or "data".
type envelope struct {
	Status  bool            `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// post performs a JSON POST request and returns the raw data payload of a
// successful envelope. A non-2xx response, a status:false envelope, or a
// transport failure all surface as errors; no retries are attempted.
func (c *Client) post(ctx context.Context, path string, headers map[string]string, body any) (json.RawMessage, error) {
	start := time.Now()

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("HTTP request failed",
			slog.String("method", "POST"),
			slog.String("path", path),
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := c.parseError(resp)
		slog.Debug("HTTP request returned error",
			slog.String("method", "POST"),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil, apiErr
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	slog.Debug("HTTP request completed",
		slog.String("method", "POST"),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Bool("envelope_status", env.Status),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	if !env.Status {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.errorMessage()}
	}

	return env.Data, nil
}

// errorMessage extracts the server-supplied failure text from a status:false
// envelope. The API is inconsistent: OTP endpoints put the text in "data",
// everything else in "message".
func (e *envelope) errorMessage() string {
	if e.Message != "" {
		return e.Message
	}
	var s string
	if json.Unmarshal(e.Data, &s) == nil && s != "" {
		return s
	}
	return "request rejected by server"
}

// parseError extracts an APIError from an error response.
func (c *Client) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var env envelope
	if json.Unmarshal(body, &env) == nil && (env.Message != "" || len(env.Data) > 0) {
		return &APIError{StatusCode: resp.StatusCode, Message: env.errorMessage()}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: string(body)}
}
