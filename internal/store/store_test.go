package store

import (
	"context"
	"crypto/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStoreRoundTrip(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	// Absent key reads as nil, nil
	got, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Set then Get
	require.NoError(t, s.Set(ctx, "session", []byte(`{"a":1}`)))
	got, err = s.Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)

	// Overwrite is atomic per key
	require.NoError(t, s.Set(ctx, "session", []byte(`{"a":2}`)))
	got, err = s.Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2}`), got)

	// Remove, including double remove
	require.NoError(t, s.Remove(ctx, "session"))
	got, err = s.Get(ctx, "session")
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, s.Remove(ctx, "session"))
}

func TestMemoryStore(t *testing.T) {
	testStoreRoundTrip(t, NewMemoryStore())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	val := []byte("original")
	require.NoError(t, s.Set(ctx, "k", val))
	val[0] = 'X'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	testStoreRoundTrip(t, s)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "content", []byte("kept")))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, "content")
	require.NoError(t, err)
	assert.Equal(t, []byte("kept"), got)
}

func TestEncryptedStore(t *testing.T) {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	enc, err := NewEncryptedStore(NewMemoryStore(), key)
	require.NoError(t, err)

	testStoreRoundTrip(t, enc)
}

func TestEncryptedStoreCiphertextOpaque(t *testing.T) {
	ctx := context.Background()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	inner := NewMemoryStore()
	enc, err := NewEncryptedStore(inner, key)
	require.NoError(t, err)

	plaintext := []byte(`{"username":"admin"}`)
	require.NoError(t, enc.Set(ctx, "session", plaintext))

	sealed, err := inner.Get(ctx, "session")
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "admin", "stored value must not leak plaintext")

	got, err := enc.Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestEncryptedStoreRejectsMovedRecord(t *testing.T) {
	ctx := context.Background()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	inner := NewMemoryStore()
	enc, err := NewEncryptedStore(inner, key)
	require.NoError(t, err)

	require.NoError(t, enc.Set(ctx, "session", []byte("secret")))

	// Move the sealed value to a different key behind the wrapper's back
	sealed, err := inner.Get(ctx, "session")
	require.NoError(t, err)
	require.NoError(t, inner.Set(ctx, "content", sealed))

	_, err = enc.Get(ctx, "content")
	assert.Error(t, err, "record bound to another key must fail authentication")
}

func TestEncryptedStoreKeySize(t *testing.T) {
	_, err := NewEncryptedStore(NewMemoryStore(), []byte("short"))
	assert.Error(t, err)
}
