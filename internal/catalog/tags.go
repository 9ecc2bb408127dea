package catalog

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/docuvault/docmgmt-mcp/pkg/client"
)

// TagCatalog is an immutable snapshot of the server's tag catalog, loaded
// once per token. Further lookups with the same token reuse the snapshot;
// a transport failure is recorded as an empty snapshot (fail closed) so the
// workflow never crashes on a broken catalog endpoint.
type TagCatalog struct {
	client *client.Client
	group  singleflight.Group

	mu     sync.Mutex
	token  string
	tags   []client.TagOption
	loaded bool
}

// NewTagCatalog creates a tag catalog backed by the given API client.
func NewTagCatalog(c *client.Client) *TagCatalog {
	return &TagCatalog{client: c}
}

// Tags returns the catalog snapshot for the given token, fetching it on
// first use. Concurrent first loads are deduplicated; a token change (new
// login) invalidates the snapshot.
func (tc *TagCatalog) Tags(ctx context.Context, token string) ([]client.TagOption, error) {
	tc.mu.Lock()
	if tc.loaded && tc.token == token {
		snap := tc.tags
		tc.mu.Unlock()
		return snap, nil
	}
	tc.mu.Unlock()

	v, err, _ := tc.group.Do(token, func() (any, error) {
		tags, err := tc.client.DocumentTags(ctx, token, "")
		if err != nil {
			slog.Warn("tag catalog load failed, recording empty snapshot",
				slog.String("error", err.Error()),
			)
			tags = nil
		}

		tc.mu.Lock()
		tc.token = token
		tc.tags = tags
		tc.loaded = true
		tc.mu.Unlock()

		return tags, err
	})

	tags, _ := v.([]client.TagOption)
	return tags, err
}

// TagSet is an ordered, label-deduplicated set of selected tags. Tags may
// come from the catalog or be ad-hoc text entered by the user; ad-hoc tags
// are keyed by their own label and travel to the server as plain names.
type TagSet struct {
	tags []client.TagOption
}

// Add selects a catalog tag. Adding a tag whose label matches an already
// selected tag is a no-op; returns whether the set changed.
func (ts *TagSet) Add(tag client.TagOption) bool {
	for _, t := range ts.tags {
		if t.Label == tag.Label {
			return false
		}
	}
	ts.tags = append(ts.tags, tag)
	return true
}

// AddAdHoc selects a free-text tag not present in the catalog. The label is
// trimmed and used as its own id. Empty labels and label duplicates are
// no-ops.
func (ts *TagSet) AddAdHoc(label string) bool {
	label = strings.TrimSpace(label)
	if label == "" {
		return false
	}
	return ts.Add(client.TagOption{ID: label, Label: label})
}

// Labels returns the selected tag labels in insertion order.
func (ts *TagSet) Labels() []string {
	labels := make([]string, len(ts.tags))
	for i, t := range ts.tags {
		labels[i] = t.Label
	}
	return labels
}

// Refs returns the selected tags in wire shape. Catalog and ad-hoc tags
// alike are sent as plain tag names, never catalog ids.
func (ts *TagSet) Refs() []client.TagRef {
	refs := make([]client.TagRef, len(ts.tags))
	for i, t := range ts.tags {
		refs[i] = client.TagRef{TagName: t.Label}
	}
	return refs
}

// Len returns the number of selected tags.
func (ts *TagSet) Len() int {
	return len(ts.tags)
}
