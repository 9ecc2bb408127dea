package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchFile_ReturnsBytesAndSuggestedName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="report.pdf"`)
		_, _ = w.Write([]byte("file-bytes"))
	}))
	defer srv.Close()

	c := New()
	data, name, err := c.FetchFile(context.Background(), srv.URL+"/path/report.pdf?sig=abc")
	require.NoError(t, err)
	assert.Equal(t, "file-bytes", string(data))
	assert.Equal(t, "report.pdf", name)
}

func TestFetchFile_NoDisposition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()

	c := New()
	_, name, err := c.FetchFile(context.Background(), srv.URL+"/f")
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestFetchFile_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := New()
	_, _, err := c.FetchFile(context.Background(), srv.URL+"/missing")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestFetchFile_EmptyURL(t *testing.T) {
	c := New()
	_, _, err := c.FetchFile(context.Background(), "")
	assert.Error(t, err)
}
