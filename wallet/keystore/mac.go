package keystore

import (
	"crypto/subtle"
	"encoding/hex"

	vcrypto "github.com/hweb3/go-accounts/crypto"
	"github.com/hweb3/go-accounts/wallet/walleterrors"
)

// computeMAC is keccak256(derivedKey[16:32] || cipherText).
func computeMAC(derivedKey, cipherText []byte) []byte {
	return vcrypto.Hash256(derivedKey[16:32], cipherText)
}

// verifyMAC compares in constant time. A mismatch is reported as an integrity
// error that does not tell a wrong password from tampered data.
func verifyMAC(derivedKey, cipherText []byte, storedMAC string) error {
	want, err := hex.DecodeString(storedMAC)
	if err != nil {
		return walleterrors.Codec("invalid mac", err)
	}
	if subtle.ConstantTimeCompare(computeMAC(derivedKey, cipherText), want) != 1 {
		return walleterrors.Integrity()
	}
	return nil
}
