// Package session holds the authenticated identity for the process
// lifetime. The record has an explicit lifecycle: Restore on startup, Set on
// verified login, Clear on logout. It is passed to workflows through their
// dependencies, never looked up ambiently.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// authFileName is the fixed key the session record is persisted under,
// mirroring the original client's "auth" storage entry.
const authFileName = "auth.json"

// Session is the authenticated identity established by OTP verification.
type Session struct {
	MobileNumber string `json:"mobile_number"`
	Token        string `json:"token"`
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
}

// Valid reports whether the session can authorize search or upload
// requests: both token and user id must be present.
func (s Session) Valid() bool {
	return s.Token != "" && s.UserID != ""
}

// Store is a thread-safe holder for the current session, persisted as a
// single JSON record under the state directory.
type Store struct {
	mu      sync.RWMutex
	path    string
	current *Session
}

// NewStore creates a session store persisting under stateDir.
func NewStore(stateDir string) *Store {
	return &Store{path: filepath.Join(stateDir, authFileName)}
}

// Restore loads a previously persisted session, if any. A missing record is
// not an error; a corrupt one is discarded with a warning so a stale file
// can never wedge the login flow.
func (st *Store) Restore() error {
	st.mu.Lock()
	defer st.mu.Unlock()

	data, err := os.ReadFile(st.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading session record: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil || !s.Valid() {
		slog.Warn("discarding unusable session record", slog.String("path", st.path))
		_ = os.Remove(st.path)
		return nil
	}

	st.current = &s
	slog.Info("session restored", slog.String("user_id", s.UserID), slog.String("user_name", s.UserName))
	return nil
}

// Set installs a new session and persists it.
func (st *Store) Set(s Session) error {
	if !s.Valid() {
		return fmt.Errorf("refusing to store session without token and user_id")
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0700); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0600); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	st.current = &s
	slog.Info("session established", slog.String("user_id", s.UserID), slog.String("user_name", s.UserName))
	return nil
}

// Clear tears the session down and removes the persisted record.
func (st *Store) Clear() error {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.current = nil
	if err := os.Remove(st.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing session record: %w", err)
	}
	slog.Info("session cleared")
	return nil
}

// Current returns a copy of the active session, if one exists.
func (st *Store) Current() (Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if st.current == nil {
		return Session{}, false
	}
	return *st.current, true
}

// Token returns the active token, or "" when logged out. Convenience for
// the load-once tag catalog, which is keyed by token identity.
func (st *Store) Token() string {
	s, ok := st.Current()
	if !ok {
		return ""
	}
	return s.Token
}
