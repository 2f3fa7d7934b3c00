package keystore

import (
	"path/filepath"

	"github.com/hweb3/go-accounts/common/types"
)

// KeyFileName is the name a keystore for keyAddr is stored under.
func KeyFileName(keyAddr types.Address) string {
	return keyAddr.Hex()
}

func FullKeyFileName(keysDirPath string, keyAddr types.Address) string {
	return filepath.Join(keysDirPath, KeyFileName(keyAddr))
}

// AddressFromKeyPath recovers the address a keystore file was named after; the
// record itself carries no address.
func AddressFromKeyPath(keyfile string) (types.Address, error) {
	_, filename := filepath.Split(keyfile)
	return types.HexToAddress(filename)
}
