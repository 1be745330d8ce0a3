package auth

import (
	"os"
	"path/filepath"
	"testing"

	"socialcal/shared"
	"socialcal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStores(t *testing.T) {
	stores := map[string]func(t *testing.T) types.SessionStore{
		"file": func(t *testing.T) types.SessionStore {
			return NewFileStore(filepath.Join(t.TempDir(), "auth.json"))
		},
		"memory": func(t *testing.T) types.SessionStore {
			return NewMemoryStore(nil)
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			store := newStore(t)

			session, err := store.Load()
			require.NoError(t, err)
			assert.Nil(t, session, "empty store means unauthenticated")

			require.NoError(t, store.Save(&shared.Session{Token: "tok-1", UserName: "Ada"}))

			session, err = store.Load()
			require.NoError(t, err)
			require.NotNil(t, session)
			assert.Equal(t, "tok-1", session.Token)
			assert.Equal(t, "Ada", session.DisplayName())

			require.NoError(t, store.Clear())
			session, err = store.Load()
			require.NoError(t, err)
			assert.Nil(t, session)

			// clearing twice is fine
			require.NoError(t, store.Clear())

			assert.Error(t, store.Save(&shared.Session{UserName: "no token"}))
		})
	}
}

func TestFileStorePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save(&shared.Session{Token: "secret", UserName: "Ada", Email: "ada@example.com"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := NewFileStore(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error unmarshalling auth.json")
}
