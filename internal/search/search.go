// Package search implements the document search workflow: building the
// filter payload from buffered user-entered fields, submitting it, and
// replacing the shared result snapshot with the response.
package search

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/docuvault/docmgmt-mcp/internal/catalog"
	"github.com/docuvault/docmgmt-mcp/internal/config"
	"github.com/docuvault/docmgmt-mcp/internal/resultset"
	"github.com/docuvault/docmgmt-mcp/internal/session"
	"github.com/docuvault/docmgmt-mcp/pkg/client"
)

// Workflow errors.
var (
	// ErrNotAuthenticated means no valid session exists; no request is made.
	ErrNotAuthenticated = errors.New("not logged in")
	// ErrSearchInProgress means a prior search has not settled yet. Searches
	// are serial: the trigger is disabled while one is in flight.
	ErrSearchInProgress = errors.New("a search is already in progress")
)

// Filter carries the user-entered search fields. Fields are buffered here
// and only committed to a request when the workflow is explicitly
// triggered, never per keystroke.
type Filter struct {
	Query     string // free text, passed through without trimming
	MajorHead string
	MinorHead string
	Tag       string // single tag; wrapped as a one-element list when set
	FromDate  string
	ToDate    string
}

// Workflow runs searches against the Document Management API. One request
// at a time: a busy flag rejects re-entrant triggers until the prior
// request settles.
type Workflow struct {
	client   *client.Client
	sessions *session.Store
	results  *resultset.Store
	cfg      *config.Config

	busy atomic.Bool
}

// New creates a search workflow.
func New(c *client.Client, sessions *session.Store, results *resultset.Store, cfg *config.Config) *Workflow {
	return &Workflow{client: c, sessions: sessions, results: results, cfg: cfg}
}

// BuildQuery normalizes a filter into the complete wire payload. Unused
// fields are present as empty strings so the server always receives a
// uniformly shaped object; the tag becomes [] or exactly one {tag_name};
// pagination is pinned to the first page.
func (w *Workflow) BuildQuery(f Filter) (*client.SearchQuery, error) {
	var sel catalog.Selection
	if err := sel.SetMajorHead(f.MajorHead); err != nil {
		return nil, err
	}
	if err := sel.SetMinorHead(f.MinorHead); err != nil {
		return nil, err
	}
	major, minor := sel.Heads()

	tags := []client.TagRef{}
	if f.Tag != "" {
		tags = append(tags, client.TagRef{TagName: f.Tag})
	}

	return &client.SearchQuery{
		MajorHead:  major,
		MinorHead:  minor,
		FromDate:   f.FromDate,
		ToDate:     f.ToDate,
		Tags:       tags,
		UploadedBy: "",
		Start:      0,
		Length:     w.cfg.SearchPageLength,
		FilterID:   "",
		Search:     client.SearchTerm{Value: f.Query},
	}, nil
}

// Search submits the filter and replaces the result snapshot with the
// response. On failure the snapshot is still replaced (empty, with the
// error recorded) so stale results never outlive a failed search, and the
// error is returned so callers can report it distinctly from a zero-match.
func (w *Workflow) Search(ctx context.Context, f Filter) (*resultset.Snapshot, error) {
	sess, ok := w.sessions.Current()
	if !ok || !sess.Valid() {
		return nil, ErrNotAuthenticated
	}

	q, err := w.BuildQuery(f)
	if err != nil {
		return nil, err
	}

	if !w.busy.CompareAndSwap(false, true) {
		return nil, ErrSearchInProgress
	}
	defer w.busy.Store(false)

	start := time.Now()
	docs, err := w.client.SearchDocuments(ctx, sess.Token, q)
	if err != nil {
		slog.Warn("search failed",
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return w.results.ReplaceFailed(err), err
	}

	slog.Info("search completed",
		slog.Int("results", len(docs)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return w.results.Replace(docs), nil
}

// Busy reports whether a search is currently in flight.
func (w *Workflow) Busy() bool {
	return w.busy.Load()
}
