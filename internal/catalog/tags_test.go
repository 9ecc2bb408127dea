package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuvault/docmgmt-mcp/pkg/client"
)

func newTagServer(t *testing.T, calls *atomic.Int64, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestTagCatalog_LoadsOncePerToken(t *testing.T) {
	var calls atomic.Int64
	srv := newTagServer(t, &calls, `{"status":true,"data":[{"id":"1","label":"invoice"}]}`)
	defer srv.Close()

	tc := NewTagCatalog(client.New(client.WithBaseURL(srv.URL)))
	ctx := context.Background()

	for range 3 {
		tags, err := tc.Tags(ctx, "t1")
		require.NoError(t, err)
		require.Len(t, tags, 1)
		assert.Equal(t, "invoice", tags[0].Label)
	}
	assert.Equal(t, int64(1), calls.Load(), "same token must not refetch")
}

func TestTagCatalog_TokenChangeRefetches(t *testing.T) {
	var calls atomic.Int64
	srv := newTagServer(t, &calls, `{"status":true,"data":[]}`)
	defer srv.Close()

	tc := NewTagCatalog(client.New(client.WithBaseURL(srv.URL)))
	ctx := context.Background()

	_, err := tc.Tags(ctx, "t1")
	require.NoError(t, err)
	_, err = tc.Tags(ctx, "t2")
	require.NoError(t, err)

	assert.Equal(t, int64(2), calls.Load())
}

func TestTagCatalog_FailsClosed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	tc := NewTagCatalog(client.New(client.WithBaseURL(srv.URL)))
	tags, err := tc.Tags(context.Background(), "t1")
	assert.Error(t, err)
	assert.Empty(t, tags, "transport error yields an empty snapshot")

	// The empty snapshot is recorded: no refetch within the same token.
	srv.Close()
	tags, err = tc.Tags(context.Background(), "t1")
	assert.NoError(t, err)
	assert.Empty(t, tags)
}

func TestTagSet_DeduplicatesByLabel(t *testing.T) {
	var ts TagSet
	assert.True(t, ts.Add(client.TagOption{ID: "1", Label: "invoice"}))
	assert.False(t, ts.Add(client.TagOption{ID: "2", Label: "invoice"}), "same label, different id")
	assert.True(t, ts.Add(client.TagOption{ID: "3", Label: "contract"}))

	assert.Equal(t, []string{"invoice", "contract"}, ts.Labels())
}

func TestTagSet_AdHoc(t *testing.T) {
	var ts TagSet
	require.True(t, ts.Add(client.TagOption{ID: "7", Label: "invoice"}))

	assert.False(t, ts.AddAdHoc("invoice"), "ad-hoc tag matching a selected label is a no-op")
	assert.False(t, ts.AddAdHoc("   "))
	assert.True(t, ts.AddAdHoc("  urgent "))

	// Ad-hoc tags go to the server as plain names, like catalog tags.
	assert.Equal(t, []client.TagRef{{TagName: "invoice"}, {TagName: "urgent"}}, ts.Refs())
	assert.Equal(t, 2, ts.Len())
}
