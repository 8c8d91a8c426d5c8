package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db)
}

func TestOpenRunsMigrations(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	// The state table exists and is usable right after Open.
	require.NoError(t, s.Set(ctx, "k", "v"))
}

func TestOpenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "state.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, NewStore(db).Set(ctx, "k", "v"))
	require.NoError(t, db.Close())

	// Reopening an already-migrated database keeps the data.
	db, err = Open(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	v, ok, err := NewStore(db).Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestGetAbsentKey(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetUpserts(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Set(ctx, KeyToken, "first"))
	require.NoError(t, s.Set(ctx, KeyToken, "second"))

	v, ok, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Set(ctx, KeyToken, "tok"))
	require.NoError(t, s.Delete(ctx, KeyToken))
	require.NoError(t, s.Delete(ctx, KeyToken))

	_, ok, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClearRemovesEverything(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Set(ctx, KeyToken, "tok"))
	require.NoError(t, s.Set(ctx, KeyUser, `{"id":1}`))
	require.NoError(t, s.Clear(ctx))

	for _, key := range []string{KeyToken, KeyUser} {
		_, ok, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, "key %s survived clear", key)
	}
}

func TestSaveCredentialsWritesBothKeys(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.SaveCredentials(ctx, "tok-1", `{"id":1}`))

	token, ok, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok-1", token)

	user, ok, err := s.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"id":1}`, user)

	// Overwriting existing credentials replaces both entries.
	require.NoError(t, s.SaveCredentials(ctx, "tok-2", `{"id":2}`))
	token, _, err = s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
}
