// Package resultset holds the in-memory snapshot of the last document
// search. The snapshot is replaced wholesale on every search and shared by
// the preview, download, export and query tools.
package resultset

import (
	"fmt"
	"sync"
	"time"

	"github.com/docuvault/docmgmt-mcp/pkg/client"
)

// Snapshot is one search response: the records in server order, when it was
// taken, and the failure, if the search did not succeed. A failed search
// still replaces the previous snapshot (with no records), but remains
// distinguishable from a legitimate zero-match response.
type Snapshot struct {
	Docs       []client.DocumentRecord
	SearchedAt time.Time
	Err        error
}

// Store holds the current snapshot. The zero state, before any search has
// run, is distinct from an empty result.
type Store struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewStore creates an empty result store.
func NewStore() *Store {
	return &Store{}
}

// Replace installs a successful search response as the current snapshot.
func (s *Store) Replace(docs []client.DocumentRecord) *Snapshot {
	snap := &Snapshot{Docs: docs, SearchedAt: time.Now()}
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return snap
}

// ReplaceFailed installs an empty snapshot carrying the search failure.
func (s *Store) ReplaceFailed(err error) *Snapshot {
	snap := &Snapshot{SearchedAt: time.Now(), Err: err}
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return snap
}

// Current returns the current snapshot, or false when no search has run yet.
func (s *Store) Current() (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, false
	}
	return s.snap, true
}

// Doc returns the record at the given zero-based position in the current
// snapshot.
func (s *Store) Doc(index int) (client.DocumentRecord, error) {
	snap, ok := s.Current()
	if !ok {
		return client.DocumentRecord{}, fmt.Errorf("no search has run yet")
	}
	if index < 0 || index >= len(snap.Docs) {
		return client.DocumentRecord{}, fmt.Errorf("result index %d out of range (have %d results)", index, len(snap.Docs))
	}
	return snap.Docs[index], nil
}

// Len returns the number of records in the current snapshot.
func (s *Store) Len() int {
	snap, ok := s.Current()
	if !ok {
		return 0
	}
	return len(snap.Docs)
}
