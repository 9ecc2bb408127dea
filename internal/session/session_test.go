package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetPersistsAndRestores(t *testing.T) {
	dir := t.TempDir()

	st := NewStore(dir)
	s := Session{MobileNumber: "9999999999", Token: "t1", UserID: "u1", UserName: "Jane"}
	require.NoError(t, st.Set(s))

	got, ok := st.Current()
	require.True(t, ok)
	assert.Equal(t, s, got)

	// A fresh store over the same dir restores the record.
	st2 := NewStore(dir)
	require.NoError(t, st2.Restore())
	got, ok = st2.Current()
	require.True(t, ok)
	assert.Equal(t, s, got)
}

func TestStore_RestoreWithoutRecord(t *testing.T) {
	st := NewStore(t.TempDir())
	require.NoError(t, st.Restore())

	_, ok := st.Current()
	assert.False(t, ok)
}

func TestStore_RestoreDiscardsCorruptRecord(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "auth.json"), []byte("{not json"), 0600))

	st := NewStore(dir)
	require.NoError(t, st.Restore())

	_, ok := st.Current()
	assert.False(t, ok)
	_, err := os.Stat(filepath.Join(dir, "auth.json"))
	assert.True(t, os.IsNotExist(err), "corrupt record should be removed")
}

func TestStore_RestoreDiscardsIncompleteRecord(t *testing.T) {
	dir := t.TempDir()
	// token present but no user_id: cannot authorize requests
	require.NoError(t, os.WriteFile(filepath.Join(dir, "auth.json"), []byte(`{"token":"t1"}`), 0600))

	st := NewStore(dir)
	require.NoError(t, st.Restore())

	_, ok := st.Current()
	assert.False(t, ok)
}

func TestStore_Clear(t *testing.T) {
	dir := t.TempDir()
	st := NewStore(dir)
	require.NoError(t, st.Set(Session{Token: "t1", UserID: "u1"}))
	require.NoError(t, st.Clear())

	_, ok := st.Current()
	assert.False(t, ok)
	assert.Empty(t, st.Token())

	// Clearing twice is fine.
	require.NoError(t, st.Clear())
}

func TestStore_SetRejectsIncompleteSession(t *testing.T) {
	st := NewStore(t.TempDir())
	assert.Error(t, st.Set(Session{Token: "t1"}))
	assert.Error(t, st.Set(Session{UserID: "u1"}))
}

func TestSessionValid(t *testing.T) {
	assert.True(t, Session{Token: "t", UserID: "u"}.Valid())
	assert.False(t, Session{Token: "t"}.Valid())
	assert.False(t, Session{UserID: "u"}.Valid())
	assert.False(t, Session{}.Valid())
}
