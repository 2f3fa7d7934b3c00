package walletstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hweb3/go-accounts/common/fileutils"
	"github.com/hweb3/go-accounts/wallet/walleterrors"
)

type store interface {
	Available() bool
	Put(name string, data []byte) error
	Get(name string) ([]byte, error)
	Delete(name string) error
	List() ([]string, error)
}

func exercise(t *testing.T, s store) {
	require.True(t, s.Available())

	_, err := s.Get("web3js_wallet")
	assert.Equal(t, walleterrors.ErrNotFind, err)

	require.NoError(t, s.Put("web3js_wallet", []byte(`[]`)))
	require.NoError(t, s.Put("other", []byte(`[1]`)))
	require.NoError(t, s.Put("web3js_wallet", []byte(`[2]`)))

	data, err := s.Get("web3js_wallet")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[2]`), data)

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"other", "web3js_wallet"}, names)

	require.NoError(t, s.Delete("other"))
	require.NoError(t, s.Delete("other"))
	_, err = s.Get("other")
	assert.Equal(t, walleterrors.ErrNotFind, err)
}

func TestFileStore(t *testing.T) {
	dir := fileutils.CreateTempDir()
	defer os.RemoveAll(dir)

	fs := NewFileStore(filepath.Join(dir, "wallets"))
	exercise(t, fs)

	info, err := os.Stat(filepath.Join(fs.Dir(), "web3js_wallet"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	for _, bad := range []string{"", "../escape", ".hidden", "a/b"} {
		assert.Error(t, fs.Put(bad, nil), bad)
	}
}

func TestFileStoreUnavailable(t *testing.T) {
	assert.False(t, NewFileStore("").Available())

	dir := fileutils.CreateTempDir()
	defer os.RemoveAll(dir)
	blocker := filepath.Join(dir, "file")
	require.NoError(t, fileutils.WriteFileAtomic(blocker, []byte("x")))
	assert.False(t, NewFileStore(filepath.Join(blocker, "sub")).Available())
}

func TestFileStoreListMissingDir(t *testing.T) {
	names, err := NewFileStore(filepath.Join(os.TempDir(), "does-not-exist-walletstore")).List()
	assert.NoError(t, err)
	assert.Empty(t, names)
}

func TestLevelDBStore(t *testing.T) {
	dir := fileutils.CreateTempDir()
	defer os.RemoveAll(dir)

	s, err := NewLevelDBStore(filepath.Join(dir, "db"))
	require.NoError(t, err)
	exercise(t, s)
	require.NoError(t, s.Close())
	assert.False(t, s.Available())

	// data survives reopening
	s, err = NewLevelDBStore(filepath.Join(dir, "db"))
	require.NoError(t, err)
	defer s.Close()
	data, err := s.Get("web3js_wallet")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[2]`), data)
}

func TestMemLevelDBStore(t *testing.T) {
	s, err := NewMemLevelDBStore()
	require.NoError(t, err)
	defer s.Close()
	exercise(t, s)
}
