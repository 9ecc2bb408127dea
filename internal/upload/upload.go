// Package upload implements the document upload workflow: local file
// inspection, metadata assembly and validation, and the multipart save
// request against the Document Management API.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/docuvault/docmgmt-mcp/internal/catalog"
	"github.com/docuvault/docmgmt-mcp/internal/session"
	"github.com/docuvault/docmgmt-mcp/pkg/client"
)

var (
	// ErrNotAuthenticated is returned when no session is available.
	ErrNotAuthenticated = errors.New("not authenticated, verify an OTP first")

	// ErrNoFile is returned when the request names no file to upload.
	ErrNoFile = errors.New("no file selected for upload")

	// ErrUnsupportedType is returned when the file content is neither a
	// PDF nor a supported image format.
	ErrUnsupportedType = errors.New("only image and PDF files can be uploaded")
)

// allowedContentTypes lists the sniffed MIME types the server accepts.
var allowedContentTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
}

// Request describes a single document upload. DocumentDate is in ISO
// format (2006-01-02) and converted to the server's wire format before
// sending. Tags carries plain labels; duplicates are dropped.
type Request struct {
	FilePath     string
	MajorHead    string
	MinorHead    string
	DocumentDate string
	Remarks      string
	Tags         []string
}

// Workflow drives document uploads for the active session.
type Workflow struct {
	client   *client.Client
	sessions *session.Store
}

func New(c *client.Client, sessions *session.Store) *Workflow {
	return &Workflow{client: c, sessions: sessions}
}

// Upload validates the request, sniffs the file content type, and sends
// the document to the server. It returns the uploaded file's name.
func (w *Workflow) Upload(ctx context.Context, req *Request) (string, error) {
	sess, ok := w.sessions.Current()
	if !ok {
		return "", ErrNotAuthenticated
	}
	if req.FilePath == "" {
		return "", ErrNoFile
	}
	if !catalog.ValidMajor(req.MajorHead) {
		return "", fmt.Errorf("unknown major head %q", req.MajorHead)
	}
	if !catalog.ValidMinor(req.MajorHead, req.MinorHead) {
		return "", fmt.Errorf("minor head %q is not valid under major head %q", req.MinorHead, req.MajorHead)
	}

	data, err := os.ReadFile(req.FilePath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", req.FilePath, err)
	}
	contentType := http.DetectContentType(data)
	if !allowedContentTypes[contentType] {
		return "", fmt.Errorf("%w: detected %s", ErrUnsupportedType, contentType)
	}

	wireDate, err := FormatDocumentDate(req.DocumentDate)
	if err != nil {
		return "", err
	}

	var tags catalog.TagSet
	for _, label := range req.Tags {
		tags.AddAdHoc(label)
	}

	meta := &client.DocumentMeta{
		MajorHead:       req.MajorHead,
		MinorHead:       req.MinorHead,
		DocumentDate:    wireDate,
		DocumentRemarks: req.Remarks,
		Tags:            tags.Refs(),
		UserID:          sess.UserID,
	}
	encoded, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("encoding metadata: %w", err)
	}
	if err := validateMeta(encoded); err != nil {
		return "", err
	}

	fileName := filepath.Base(req.FilePath)
	start := time.Now()
	err = w.client.SaveDocument(ctx, sess.Token, sess.UserID, fileName, bytes.NewReader(data), meta)
	if err != nil {
		return "", err
	}
	slog.Info("document uploaded",
		slog.String("file_name", fileName),
		slog.String("content_type", contentType),
		slog.Int("tag_count", tags.Len()),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	return fileName, nil
}

// FormatDocumentDate converts an ISO date (2006-01-02) to the server's
// DD-MM-YYYY wire format. An empty date stays empty.
func FormatDocumentDate(iso string) (string, error) {
	if iso == "" {
		return "", nil
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return "", fmt.Errorf("invalid document date %q, expected YYYY-MM-DD", iso)
	}
	return t.Format("02-01-2006"), nil
}
