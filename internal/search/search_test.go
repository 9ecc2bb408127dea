package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuvault/docmgmt-mcp/internal/config"
	"github.com/docuvault/docmgmt-mcp/internal/resultset"
	"github.com/docuvault/docmgmt-mcp/internal/session"
	"github.com/docuvault/docmgmt-mcp/pkg/client"
)

// --- helpers ---

type testFixture struct {
	flow     *Workflow
	results  *resultset.Store
	sessions *session.Store
}

func newFixture(t *testing.T, baseURL string) *testFixture {
	t.Helper()

	sessions := session.NewStore(t.TempDir())
	require.NoError(t, sessions.Set(session.Session{
		MobileNumber: "9999999999", Token: "t1", UserID: "u1", UserName: "Jane",
	}))

	results := resultset.NewStore()
	cfg := &config.Config{SearchPageLength: 10}
	return &testFixture{
		flow:     New(client.New(client.WithBaseURL(baseURL)), sessions, results, cfg),
		results:  results,
		sessions: sessions,
	}
}

// --- BuildQuery ---

func TestBuildQuery_TagWrapping(t *testing.T) {
	f := newFixture(t, "http://unused")

	q, err := f.flow.BuildQuery(Filter{Tag: "invoice"})
	require.NoError(t, err)
	assert.Equal(t, []client.TagRef{{TagName: "invoice"}}, q.Tags)

	q, err = f.flow.BuildQuery(Filter{})
	require.NoError(t, err)
	assert.NotNil(t, q.Tags)
	assert.Empty(t, q.Tags, "no tag means an empty list, not null")
}

func TestBuildQuery_RawQueryValue(t *testing.T) {
	f := newFixture(t, "http://unused")

	q, err := f.flow.BuildQuery(Filter{Query: "  payroll 2025 "})
	require.NoError(t, err)
	assert.Equal(t, "  payroll 2025 ", q.Search.Value, "no implicit trimming")
}

func TestBuildQuery_UniformShape(t *testing.T) {
	f := newFixture(t, "http://unused")

	q, err := f.flow.BuildQuery(Filter{MajorHead: "Professional", MinorHead: "IT"})
	require.NoError(t, err)

	payload, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"major_head": "Professional",
		"minor_head": "IT",
		"from_date": "",
		"to_date": "",
		"tags": [],
		"uploaded_by": "",
		"start": 0,
		"length": 10,
		"filterId": "",
		"search": {"value": ""}
	}`, string(payload))
}

func TestBuildQuery_RejectsMismatchedHeads(t *testing.T) {
	f := newFixture(t, "http://unused")

	_, err := f.flow.BuildQuery(Filter{MajorHead: "Personal", MinorHead: "HR"})
	assert.Error(t, err)

	_, err = f.flow.BuildQuery(Filter{MinorHead: "Tom"})
	assert.Error(t, err, "minor head without a major head")

	_, err = f.flow.BuildQuery(Filter{MajorHead: "Secret"})
	assert.Error(t, err)
}

// --- Search ---

func TestSearch_ReplacesSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"data":[{"file_name":"a.pdf"},{"file_name":"b.png"}]}`))
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)
	snap, err := f.flow.Search(context.Background(), Filter{Query: "a"})
	require.NoError(t, err)
	require.Len(t, snap.Docs, 2)
	assert.Equal(t, "a.pdf", snap.Docs[0].FileName)

	cur, ok := f.results.Current()
	require.True(t, ok)
	assert.Equal(t, snap, cur)
}

func TestSearch_FailureRecordsEmptySnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":false,"data":[]}`))
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)

	// Seed a prior successful snapshot so we can observe the replacement.
	f.results.Replace([]client.DocumentRecord{{FileName: "stale.pdf"}})

	_, err := f.flow.Search(context.Background(), Filter{})
	require.Error(t, err)

	snap, ok := f.results.Current()
	require.True(t, ok, "a failed search still replaces the snapshot")
	assert.Empty(t, snap.Docs)
	assert.Error(t, snap.Err, "failure is recorded, distinguishable from zero matches")
}

func TestSearch_RequiresSession(t *testing.T) {
	f := newFixture(t, "http://unused")
	require.NoError(t, f.sessions.Clear())

	_, err := f.flow.Search(context.Background(), Filter{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, ok := f.results.Current()
	assert.False(t, ok, "no snapshot recorded without a session")
}

func TestSearch_RejectsReentrantTrigger(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var startedOnce sync.Once
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startedOnce.Do(func() { close(started) })
		<-release
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"data":[]}`))
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := f.flow.Search(context.Background(), Filter{})
		assert.NoError(t, err)
	}()

	<-started
	assert.True(t, f.flow.Busy())
	_, err := f.flow.Search(context.Background(), Filter{})
	assert.ErrorIs(t, err, ErrSearchInProgress)

	close(release)
	wg.Wait()
	assert.False(t, f.flow.Busy())

	// Settled: a new trigger is accepted again.
	_, err = f.flow.Search(context.Background(), Filter{})
	assert.NoError(t, err)
}
