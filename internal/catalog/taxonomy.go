// Package catalog provides the two-level document category taxonomy and the
// server-backed tag catalog.
package catalog

import (
	"fmt"
	"sync"

	"github.com/docuvault/docmgmt-mcp/pkg/client"
)

// minorHeads is the fixed major→minor lookup table. Minor options are a
// pure function of the major head; no network call is involved.
var minorHeads = map[string][]string{
	client.MajorPersonal:     {"John", "Tom", "Emily"},
	client.MajorProfessional: {"Accounts", "HR", "IT", "Finance"},
}

// MajorHeads returns the valid major category heads.
func MajorHeads() []string {
	return []string{client.MajorPersonal, client.MajorProfessional}
}

// MinorOptions returns the minor heads valid under the given major head.
// An empty or unknown major head has no minor options.
func MinorOptions(majorHead string) []string {
	opts, ok := minorHeads[majorHead]
	if !ok {
		return nil
	}
	out := make([]string, len(opts))
	copy(out, opts)
	return out
}

// ValidMajor reports whether majorHead is selectable. The empty string is
// valid and means "no category filter".
func ValidMajor(majorHead string) bool {
	if majorHead == "" {
		return true
	}
	_, ok := minorHeads[majorHead]
	return ok
}

// ValidMinor reports whether minorHead is selectable under majorHead. A
// minor head is only meaningful when a major head is chosen; the empty
// minor head is always valid.
func ValidMinor(majorHead, minorHead string) bool {
	if minorHead == "" {
		return true
	}
	for _, opt := range minorHeads[majorHead] {
		if opt == minorHead {
			return true
		}
	}
	return false
}

// Selection holds a cascading major/minor category choice. Changing the
// major head clears any previously chosen minor head, since minor options
// are recomputed from the major head.
type Selection struct {
	mu        sync.Mutex
	majorHead string
	minorHead string
}

// SetMajorHead selects a major head. Selecting a different major head
// resets the minor head.
func (s *Selection) SetMajorHead(majorHead string) error {
	if !ValidMajor(majorHead) {
		return fmt.Errorf("unknown major head %q", majorHead)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if majorHead != s.majorHead {
		s.minorHead = ""
	}
	s.majorHead = majorHead
	return nil
}

// SetMinorHead selects a minor head under the current major head.
func (s *Selection) SetMinorHead(minorHead string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !ValidMinor(s.majorHead, minorHead) {
		return fmt.Errorf("minor head %q is not valid under major head %q", minorHead, s.majorHead)
	}
	s.minorHead = minorHead
	return nil
}

// Heads returns the current major and minor selection.
func (s *Selection) Heads() (major, minor string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.majorHead, s.minorHead
}
