package keystore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hweb3/go-accounts/common/types"
)

func TestKeyFileName(t *testing.T) {
	addr, err := types.HexToAddress("0x2c7536e3605d9c16a7a3d7b1898e529396a65c23")
	require.NoError(t, err)
	assert.Equal(t, "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23", KeyFileName(addr))

	full := FullKeyFileName("/keys", addr)
	assert.Equal(t, filepath.Join("/keys", "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"), full)

	back, err := AddressFromKeyPath(full)
	require.NoError(t, err)
	assert.Equal(t, addr, back)

	_, err = AddressFromKeyPath("/keys/notes.txt")
	assert.Error(t, err)
}
