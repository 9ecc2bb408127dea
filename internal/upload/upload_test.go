package upload

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuvault/docmgmt-mcp/internal/session"
	"github.com/docuvault/docmgmt-mcp/pkg/client"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func authedStore(t *testing.T) *session.Store {
	t.Helper()
	st := session.NewStore(t.TempDir())
	require.NoError(t, st.Set(session.Session{
		MobileNumber: "9999999999",
		Token:        "tok-1",
		UserID:       "u-42",
		UserName:     "nathan",
	}))
	return st
}

func TestUploadSendsMultipartWithMetadata(t *testing.T) {
	var gotMeta client.DocumentMeta
	var gotFile []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		assert.Equal(t, "tok-1", r.Header.Get("token"))
		assert.Equal(t, "u-42", r.Header.Get("user_id"))

		require.NoError(t, json.Unmarshal([]byte(r.FormValue("data")), &gotMeta))

		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		gotFile, err = io.ReadAll(f)
		require.NoError(t, err)

		w.Write([]byte(`{"status": true, "data": "ok"}`))
	}))
	defer srv.Close()

	w := New(client.New(client.WithBaseURL(srv.URL)), authedStore(t))
	name, err := w.Upload(context.Background(), &Request{
		FilePath:     writeTempFile(t, "scan.png", pngBytes),
		MajorHead:    "Personal",
		MinorHead:    "John",
		DocumentDate: "2024-03-09",
		Remarks:      "passport scan",
		Tags:         []string{"travel", "travel", "id"},
	})
	require.NoError(t, err)
	assert.Equal(t, "scan.png", name)
	assert.Equal(t, pngBytes, gotFile)

	assert.Equal(t, "Personal", gotMeta.MajorHead)
	assert.Equal(t, "John", gotMeta.MinorHead)
	assert.Equal(t, "09-03-2024", gotMeta.DocumentDate)
	assert.Equal(t, "u-42", gotMeta.UserID)
	assert.Equal(t, []client.TagRef{{TagName: "travel"}, {TagName: "id"}}, gotMeta.Tags)
}

func TestUploadRejectsUnsupportedFileType(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{"status": true}`))
	}))
	defer srv.Close()

	w := New(client.New(client.WithBaseURL(srv.URL)), authedStore(t))
	_, err := w.Upload(context.Background(), &Request{
		FilePath: writeTempFile(t, "notes.txt", []byte("plain text, not a document")),
	})
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Zero(t, requests.Load(), "rejected file must not reach the server")
}

func TestUploadRequiresSession(t *testing.T) {
	w := New(client.New(), session.NewStore(t.TempDir()))
	_, err := w.Upload(context.Background(), &Request{FilePath: "irrelevant.pdf"})
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestUploadRequiresFile(t *testing.T) {
	w := New(client.New(), authedStore(t))
	_, err := w.Upload(context.Background(), &Request{})
	require.ErrorIs(t, err, ErrNoFile)
}

func TestUploadRejectsInvalidTaxonomy(t *testing.T) {
	w := New(client.New(), authedStore(t))
	path := writeTempFile(t, "doc.pdf", []byte("%PDF-1.4 minimal"))

	_, err := w.Upload(context.Background(), &Request{FilePath: path, MajorHead: "Misc"})
	assert.ErrorContains(t, err, "unknown major head")

	_, err = w.Upload(context.Background(), &Request{FilePath: path, MajorHead: "Personal", MinorHead: "HR"})
	assert.ErrorContains(t, err, "not valid under major head")
}

func TestUploadRejectsMalformedDate(t *testing.T) {
	w := New(client.New(), authedStore(t))
	_, err := w.Upload(context.Background(), &Request{
		FilePath:     writeTempFile(t, "doc.pdf", []byte("%PDF-1.4 minimal")),
		DocumentDate: "09-03-2024",
	})
	assert.ErrorContains(t, err, "expected YYYY-MM-DD")
}

func TestFormatDocumentDate(t *testing.T) {
	got, err := FormatDocumentDate("2025-12-01")
	require.NoError(t, err)
	assert.Equal(t, "01-12-2025", got)

	got, err = FormatDocumentDate("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestValidateMetaFlagsViolations(t *testing.T) {
	err := validateMeta([]byte(`{
		"major_head": "Misc",
		"minor_head": "",
		"document_date": "2024-03-09",
		"document_remarks": "",
		"tags": [],
		"user_id": ""
	}`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "metadata validation failed")
}
