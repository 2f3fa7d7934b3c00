package crypto

import "golang.org/x/crypto/sha3"

// Hash256 is the legacy Keccak-256 used for addresses, MACs and message digests.
func Hash256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, item := range data {
		d.Write(item)
	}
	return d.Sum(nil)
}
