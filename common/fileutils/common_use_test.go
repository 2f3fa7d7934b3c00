package fileutils

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := CreateTempDir()
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "nested", "key")
	require.NoError(t, WriteFileAtomic(file, []byte("one")))
	require.NoError(t, WriteFileAtomic(file, []byte("two")))

	b, err := ioutil.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "two", string(b))

	entries, err := ioutil.ReadDir(filepath.Dir(file))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestIsWritableDir(t *testing.T) {
	dir := CreateTempDir()
	defer os.RemoveAll(dir)

	assert.True(t, IsWritableDir(filepath.Join(dir, "sub")))
	entries, _ := ioutil.ReadDir(filepath.Join(dir, "sub"))
	assert.Len(t, entries, 0)
}
