package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/capwire/store"
)

type blobStore interface {
	WriteBlob(key string, payload []byte) error
	ReadBlob(key string) ([]byte, error)
}

// backends instantiates every implementation against the same contract.
func backends(t *testing.T) map[string]blobStore {
	t.Helper()

	fsStore, err := store.NewFS(filepath.Join(t.TempDir(), "blobs"))
	require.NoError(t, err)

	dbStore, err := store.OpenSQLite(filepath.Join(t.TempDir(), "blobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbStore.Close() })

	return map[string]blobStore{
		"memory": store.NewMemory(),
		"fs":     fsStore,
		"sqlite": dbStore,
	}
}

func TestBackends_RoundTrip(t *testing.T) {
	t.Parallel()

	for name, s := range backends(t) {
		s := s
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			require.NoError(t, s.WriteBlob("alice", []byte(`{"name":"Alice"}`)))
			got, err := s.ReadBlob("alice")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"name":"Alice"}`), got)
		})
	}
}

func TestBackends_LastWriteWins(t *testing.T) {
	t.Parallel()

	for name, s := range backends(t) {
		s := s
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			require.NoError(t, s.WriteBlob("k", []byte("one")))
			require.NoError(t, s.WriteBlob("k", []byte("two")))
			got, err := s.ReadBlob("k")
			require.NoError(t, err)
			assert.Equal(t, []byte("two"), got)
		})
	}
}

func TestBackends_MissingKeyIsNotFound(t *testing.T) {
	t.Parallel()

	for name, s := range backends(t) {
		s := s
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := s.ReadBlob("nobody")
			require.Error(t, err)
			assert.True(t, store.IsNotFound(err))

			var se *store.Error
			require.ErrorAs(t, err, &se)
			assert.Equal(t, "read", se.Op)
			assert.Equal(t, "nobody", se.Key)
		})
	}
}

func TestBackends_AwkwardKeysRoundTrip(t *testing.T) {
	t.Parallel()

	keys := []string{"a/b/c", "..", "space key", "ünïcode", ""}
	for name, s := range backends(t) {
		s := s
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for _, key := range keys {
				require.NoError(t, s.WriteBlob(key, []byte("v:"+key)), "key %q", key)
				got, err := s.ReadBlob(key)
				require.NoError(t, err, "key %q", key)
				assert.Equal(t, []byte("v:"+key), got, "key %q", key)
			}
		})
	}
}

func TestMemory_CopiesPayloads(t *testing.T) {
	t.Parallel()

	s := store.NewMemory()
	in := []byte("original")
	require.NoError(t, s.WriteBlob("k", in))

	// Mutating the written slice must not reach the store.
	in[0] = 'X'
	got, err := s.ReadBlob("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)

	// Mutating a read copy must not reach later reads.
	got[0] = 'Y'
	again, err := s.ReadBlob("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}

func TestFS_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "blobs")
	first, err := store.NewFS(root)
	require.NoError(t, err)
	require.NoError(t, first.WriteBlob("alice", []byte("hello")))

	second, err := store.NewFS(root)
	require.NoError(t, err)
	got, err := second.ReadBlob("alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestFS_RootIsAFile(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := store.NewFS(file)
	require.Error(t, err)
	var se *store.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, store.KindCorrupt, se.Kind)
	assert.Equal(t, "open", se.Op)
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "blobs.db")
	first, err := store.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.WriteBlob("alice", []byte("hello")))
	require.NoError(t, first.Close())

	second, err := store.OpenSQLite(path)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	got, err := second.ReadBlob("alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}
